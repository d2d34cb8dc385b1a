// Package fedex provides integration with the FedEx shipping APIs. Rating
// and shipment creation go through the JSON REST endpoints; tracking and
// cancellation go through the XML gateway.
package fedex

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"time"

	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const carrierName = "fedex"

// MaxAddressFieldLength is the longest value FedEx accepts for a single
// address field, per the carrier developer guide.
const MaxAddressFieldLength = 35

// Config holds FedEx configuration. BaseURL and GatewayURL override the
// endpoint selection made by Test; leave them empty to use the standard
// hosts.
type Config struct {
	Account     string
	AccessToken string
	BaseURL     string
	GatewayURL  string
	Test        bool
	UseMock     bool
}

// Client is the FedEx shipper client.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new FedEx client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL:     cfg.BaseURL,
			GatewayURL:  cfg.GatewayURL,
			AccessToken: cfg.AccessToken,
			Test:        cfg.Test,
			Timeout:     30 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new FedEx client with a custom API client.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the carrier name.
func (c *Client) Name() string {
	return carrierName
}

// GetQuote returns shipping quotes from FedEx.
func (c *Client) GetQuote(ctx context.Context, req *shipper.QuoteRequest) (*shipper.QuoteResponse, error) {
	c.logger.Info("Getting FedEx quotes",
		zap.String("origin_country", req.Origin.CountryCode),
		zap.String("destination_country", req.Destination.CountryCode),
		zap.Int("package_count", len(req.Packages)),
	)

	body, err := json.Marshal(buildRateRequest(req, c.config.Account))
	if err != nil {
		return nil, shipper.NewCarrierError(carrierName, "RATE_ENCODE", "failed to encode rate request").WithCause(err)
	}

	respBody, err := c.apiClient.GetRates(ctx, body)
	if err != nil {
		c.logger.Error("FedEx rate API error", zap.Error(err))
		return nil, err
	}

	return c.parseRateResponse(req, respBody)
}

// CreateShipment creates a shipment with FedEx and returns the label.
// Only single-package shipments are supported on this endpoint.
func (c *Client) CreateShipment(ctx context.Context, req *shipper.ShipmentRequest) (*shipper.LabelResult, error) {
	if len(req.Packages) > 1 {
		return nil, shipper.ErrMultiplePackages
	}

	c.logger.Info("Creating FedEx shipment",
		zap.String("origin_country", req.Origin.CountryCode),
		zap.String("destination_country", req.Destination.CountryCode),
		zap.String("service", req.Options.ServiceCode),
	)

	body, err := json.Marshal(buildShipmentRequest(req, c.config.Account))
	if err != nil {
		return nil, shipper.NewCarrierError(carrierName, "SHIP_ENCODE", "failed to encode shipment request").WithCause(err)
	}

	respBody, err := c.apiClient.CreateShipment(ctx, body)
	if err != nil {
		c.logger.Error("FedEx shipment API error", zap.Error(err))
		return nil, err
	}

	result, err := parseShipResponse(respBody)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		c.logger.Warn("FedEx rejected shipment", zap.String("message", result.Message))
	}
	return result, nil
}

// Track returns normalized tracking details for a shipment.
func (c *Client) Track(ctx context.Context, req *shipper.TrackRequest) (*shipper.TrackingResult, error) {
	c.logger.Info("Tracking FedEx shipment",
		zap.String("tracking_number", req.TrackingNumber),
	)

	body, err := xml.Marshal(buildTrackRequest(req))
	if err != nil {
		return nil, shipper.NewCarrierError(carrierName, "TRACK_ENCODE", "failed to encode tracking request").WithCause(err)
	}

	respBody, err := c.apiClient.Track(ctx, body)
	if err != nil {
		c.logger.Error("FedEx tracking API error", zap.Error(err))
		return nil, err
	}

	return parseTrackResponse(respBody)
}

// CancelShipment cancels a previously created shipment.
func (c *Client) CancelShipment(ctx context.Context, req *shipper.CancelRequest) (*shipper.CancelResult, error) {
	c.logger.Info("Cancelling FedEx shipment",
		zap.String("tracking_number", req.TrackingNumber),
	)

	body, err := xml.Marshal(buildCancelRequest(req))
	if err != nil {
		return nil, shipper.NewCarrierError(carrierName, "CANCEL_ENCODE", "failed to encode cancellation request").WithCause(err)
	}

	respBody, err := c.apiClient.CancelShipment(ctx, body)
	if err != nil {
		c.logger.Error("FedEx cancellation API error", zap.Error(err))
		return nil, err
	}

	return parseCancelResponse(respBody)
}
