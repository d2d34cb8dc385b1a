package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/fedex/internal/server"
	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/tournevent/fedex/pkg/shipper/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var testHandler http.Handler

func init() {
	// Metrics register against the global Prometheus registry, so the server
	// is built once and shared across tests.
	logger := otelzap.New(zap.NewNop())
	registry := shipper.NewRegistry()
	registry.Register(mock.New("fedex"))

	testHandler = server.New(server.Config{Port: 8080}, registry, logger).Handler()
}

func TestServer_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "POST")
}

func TestServer_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Quotes(t *testing.T) {
	body := `{
		"origin": {"city": "Memphis", "postalCode": "38103", "countryCode": "US"},
		"destination": {"city": "Seattle", "postalCode": "98101", "countryCode": "US"},
		"packages": [{"weightGrams": 2000, "lengthCm": 30, "widthCm": 20, "heightCm": 10}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp struct {
		Results []struct {
			Success   bool `json:"success"`
			Estimates []struct {
				Carrier     string `json:"carrier"`
				ServiceName string `json:"serviceName"`
			} `json:"estimates"`
		} `json:"results"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Errors)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)
	assert.NotEmpty(t, resp.Results[0].Estimates)
	assert.Equal(t, "fedex", resp.Results[0].Estimates[0].Carrier)
}

func TestServer_Quotes_UnknownCarrier(t *testing.T) {
	body := `{
		"origin": {"countryCode": "US"},
		"destination": {"countryCode": "US"},
		"packages": [{"weightGrams": 1000}],
		"carriers": ["nonexistent"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []any    `json:"results"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Results)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "nonexistent")
}

func TestServer_Shipments(t *testing.T) {
	body := `{
		"origin": {"city": "Memphis", "countryCode": "US"},
		"destination": {"city": "Seattle", "countryCode": "US"},
		"packages": [{"weightGrams": 2000, "lengthCm": 30, "widthCm": 20, "heightCm": 10}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success        bool   `json:"success"`
		TrackingNumber string `json:"trackingNumber"`
		Label          []byte `json:"label"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.TrackingNumber)
	assert.NotEmpty(t, resp.Label)
}

func TestServer_Shipments_UnknownCarrier(t *testing.T) {
	body := `{"carrier": "nonexistent", "packages": [{"weightGrams": 1000}]}`
	req := httptest.NewRequest(http.MethodPost, "/shipments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Track(t *testing.T) {
	body := `{"trackingNumber": "123456789012"}`
	req := httptest.NewRequest(http.MethodPost, "/track", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success        bool   `json:"success"`
		TrackingNumber string `json:"trackingNumber"`
		Status         string `json:"status"`
		Events         []any  `json:"events"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "123456789012", resp.TrackingNumber)
	assert.NotEmpty(t, resp.Status)
	assert.NotEmpty(t, resp.Events)
}

func TestServer_Track_MissingTrackingNumber(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/track", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Cancel(t *testing.T) {
	body := `{"trackingNumber": "123456789012"}`
	req := httptest.NewRequest(http.MethodPost, "/shipments/cancel", strings.NewReader(body))
	rec := httptest.NewRecorder()

	testHandler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
}
