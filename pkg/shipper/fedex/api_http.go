package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPAPIClient is the production implementation of APIClient. JSON requests
// go to the REST host with bearer auth, XML requests to the legacy gateway.
type HTTPAPIClient struct {
	baseURL     string
	gatewayURL  string
	accessToken string
	httpClient  *http.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL     string
	GatewayURL  string
	AccessToken string
	Test        bool
	Timeout     time.Duration
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
// Empty URLs fall back to the standard live or sandbox hosts depending on
// the Test flag.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Test {
			baseURL = sandboxHost
		} else {
			baseURL = liveHost
		}
	}
	gatewayURL := cfg.GatewayURL
	if gatewayURL == "" {
		if cfg.Test {
			gatewayURL = sandboxGateway
		} else {
			gatewayURL = liveGateway
		}
	}

	return &HTTPAPIClient{
		baseURL:     baseURL,
		gatewayURL:  gatewayURL,
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRates posts a JSON rate request and returns the raw response body.
func (c *HTTPAPIClient) GetRates(ctx context.Context, body []byte) ([]byte, error) {
	return c.postJSON(ctx, ratePath, body)
}

// CreateShipment posts a JSON shipment request and returns the raw response
// body.
func (c *HTTPAPIClient) CreateShipment(ctx context.Context, body []byte) ([]byte, error) {
	return c.postJSON(ctx, shipPath, body)
}

// Track posts an XML tracking request to the gateway.
func (c *HTTPAPIClient) Track(ctx context.Context, body []byte) ([]byte, error) {
	return c.postXML(ctx, body)
}

// CancelShipment posts an XML delete-shipment request to the gateway.
func (c *HTTPAPIClient) CancelShipment(ctx context.Context, body []byte) ([]byte, error) {
	return c.postXML(ctx, body)
}

func (c *HTTPAPIClient) postJSON(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseJSONError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// postXML sends the request to the gateway. The gateway reports most errors
// inside a 200 reply with a FAILURE severity, so the body is returned as-is
// for the parsers to judge; only transport-level failures error here.
func (c *HTTPAPIClient) postXML(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: string(respBody),
		}
	}
	return respBody, nil
}

// jsonErrorBody is the error envelope the REST endpoints return on non-200
// statuses.
type jsonErrorBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func parseJSONError(statusCode int, body []byte) error {
	var envelope jsonErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return &APIError{
			Code:    envelope.Errors[0].Code,
			Message: envelope.Errors[0].Message,
		}
	}
	return &APIError{
		Code:    fmt.Sprintf("HTTP_%d", statusCode),
		Message: string(body),
	}
}

var _ APIClient = (*HTTPAPIClient)(nil)
