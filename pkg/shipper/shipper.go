// Package shipper provides an abstraction layer for shipping carriers.
package shipper

import (
	"context"
)

// Carrier defines the interface that all shipping carrier adapters implement.
type Carrier interface {
	// Name returns the carrier identifier (e.g., "fedex").
	Name() string

	// GetQuote returns shipping rate quotes for a shipment.
	GetQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)

	// CreateShipment books a single-package shipment and returns its label.
	CreateShipment(ctx context.Context, req *ShipmentRequest) (*LabelResult, error)

	// Track returns the normalized tracking state of a shipment.
	Track(ctx context.Context, req *TrackRequest) (*TrackingResult, error)

	// CancelShipment cancels an existing shipment.
	CancelShipment(ctx context.Context, req *CancelRequest) (*CancelResult, error)
}
