// Package mock provides a mock carrier implementation for testing.
package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/tournevent/fedex/pkg/shipper"
)

// Client is a mock carrier for testing.
type Client struct {
	name string
}

// New creates a new mock carrier.
func New(name string) *Client {
	return &Client{name: name}
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return c.name
}

// GetQuote returns mock shipping quotes.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) (*shipper.QuoteResponse, error) {
	now := time.Now()
	standardDelivery := now.Add(5 * 24 * time.Hour)
	expressDelivery := now.Add(2 * 24 * time.Hour)

	return &shipper.QuoteResponse{
		Success: true,
		Estimates: []shipper.RateEstimate{
			{
				Origin:      req.Origin,
				Destination: req.Destination,
				Carrier:     c.name,
				ServiceCode: "STANDARD",
				ServiceName: fmt.Sprintf("%s Standard", c.name),
				TotalPrice:  shipper.Money{Amount: 15.82, Currency: "USD"},
				Packages:    req.Packages,
				DeliveryMin: &standardDelivery,
				DeliveryMax: &standardDelivery,
			},
			{
				Origin:      req.Origin,
				Destination: req.Destination,
				Carrier:     c.name,
				ServiceCode: "EXPRESS",
				ServiceName: fmt.Sprintf("%s Express", c.name),
				TotalPrice:  shipper.Money{Amount: 29.95, Currency: "USD"},
				Packages:    req.Packages,
				DeliveryMin: &expressDelivery,
				DeliveryMax: &expressDelivery,
			},
		},
	}, nil
}

// CreateShipment creates a mock shipment with a placeholder label.
func (c *Client) CreateShipment(ctx context.Context, req *shipper.ShipmentRequest) (*shipper.LabelResult, error) {
	trackingNumber := fmt.Sprintf("%d", 100000000000+time.Now().UnixNano()%900000000000)

	return &shipper.LabelResult{
		Success:        true,
		TrackingNumber: trackingNumber,
		Label:          []byte("%PDF-1.4 mock label data"),
	}, nil
}

// Track returns mock tracking details for an in-transit shipment.
func (c *Client) Track(ctx context.Context, req *shipper.TrackRequest) (*shipper.TrackingResult, error) {
	now := time.Now()
	shipTime := now.Add(-48 * time.Hour)

	return &shipper.TrackingResult{
		Success:           true,
		TrackingNumber:    req.TrackingNumber,
		Status:            shipper.StatusInTransit,
		StatusCode:        "IT",
		StatusDescription: "In transit",
		ShipTime:          &shipTime,
		Origin:            &shipper.Location{City: "Memphis", ProvinceCode: "TN", CountryCode: "US"},
		Destination:       &shipper.Location{City: "Seattle", ProvinceCode: "WA", CountryCode: "US"},
		Events: []shipper.ShipmentEvent{
			{
				Description: "Picked up",
				Time:        now.Add(-48 * time.Hour),
				Location:    shipper.Location{City: "Memphis", ProvinceCode: "TN", CountryCode: "US"},
				TypeCode:    "PU",
			},
			{
				Description: "In transit",
				Time:        now.Add(-24 * time.Hour),
				Location:    shipper.Location{City: "Nashville", ProvinceCode: "TN", CountryCode: "US"},
				TypeCode:    "IT",
			},
		},
	}, nil
}

// CancelShipment cancels a mock shipment.
func (c *Client) CancelShipment(ctx context.Context, req *shipper.CancelRequest) (*shipper.CancelResult, error) {
	return &shipper.CancelResult{
		Success: true,
		Message: fmt.Sprintf("shipment %s cancelled", req.TrackingNumber),
	}, nil
}

var _ shipper.Carrier = (*Client)(nil)
