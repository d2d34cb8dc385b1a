package fedex

import (
	"context"
)

// API hosts. Rate and shipment operations use the REST JSON API; tracking and
// cancellation still go through the XML gateway.
const (
	liveHost    = "https://apis.fedex.com"
	sandboxHost = "https://apis-sandbox.fedex.com"

	liveGateway    = "https://ws.fedex.com/xml"
	sandboxGateway = "https://wsbeta.fedex.com/xml"

	ratePath = "/rate/v1/rates/quotes"
	shipPath = "/ship/v1/shipments"
)

// APIClient is the transport collaborator: it delivers an already-built wire
// payload and returns the raw response bytes. Request building and response
// parsing stay in this package; the transport owns connections, auth, and
// timeout policy. The abstraction allows mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// GetRates posts a JSON rate request and returns the raw JSON reply.
	GetRates(ctx context.Context, body []byte) ([]byte, error)

	// CreateShipment posts a JSON shipment request and returns the raw XML reply.
	CreateShipment(ctx context.Context, body []byte) ([]byte, error)

	// Track posts an XML track request and returns the raw XML reply.
	Track(ctx context.Context, body []byte) ([]byte, error)

	// CancelShipment posts an XML delete-shipment request and returns the raw
	// XML reply.
	CancelShipment(ctx context.Context, body []byte) ([]byte, error)
}

// APIError represents a transport-level error from the FedEx API.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
