// Package server exposes the carrier registry over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/fedex/internal/telemetry"
	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const defaultCarrier = "fedex"

// Server is the HTTP server for the carrier adapter.
type Server struct {
	port     int
	registry *shipper.Registry
	logger   *otelzap.Logger
	metrics  *telemetry.Metrics
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance.
func New(cfg Config, registry *shipper.Registry, logger *otelzap.Logger) *Server {
	return &Server{
		port:     cfg.Port,
		registry: registry,
		logger:   logger,
		metrics:  telemetry.NewMetrics(),
	}
}

// Handler returns the route table for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", s.handleHealth)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/quotes", s.withRequestID(s.handleQuotes))
	mux.HandleFunc("/shipments", s.withRequestID(s.handleShipments))
	mux.HandleFunc("/shipments/cancel", s.withRequestID(s.handleCancel))
	mux.HandleFunc("/track", s.withRequestID(s.handleTrack))

	return mux
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// withRequestID tags each API request with an id for log correlation.
// All API operations are POST with JSON bodies.
func (s *Server) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)
		w.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
			return
		}

		s.logger.Info("API request",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
		)
		next(w, r)
	}
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req quotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	quoteReq := req.toShipper()
	results, errs := s.registry.GetQuotesFromCarriers(r.Context(), quoteReq, req.Carriers)

	resp := quotesResponse{Results: make([]quoteResult, 0, len(results))}
	for _, result := range results {
		resp.Results = append(resp.Results, toQuoteResult(result))
	}
	for _, err := range errs {
		resp.Errors = append(resp.Errors, err.Error())
		s.metrics.RecordError(defaultCarrier, "quote")
	}

	s.metrics.RecordRequest("quotes", defaultCarrier, statusLabel(len(errs) == 0), time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShipments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req shipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	carrier, err := s.carrier(req.Carrier)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	result, err := carrier.CreateShipment(r.Context(), req.toShipper())
	if err != nil {
		s.metrics.RecordError(carrier.Name(), "shipment")
		s.metrics.RecordRequest("shipments", carrier.Name(), "error", time.Since(start).Seconds())
		writeCarrierError(w, err)
		return
	}

	s.metrics.RecordRequest("shipments", carrier.Name(), statusLabel(result.Success), time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, toShipmentResult(result))
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.TrackingNumber == "" {
		writeError(w, http.StatusBadRequest, "trackingNumber is required")
		return
	}

	carrier, err := s.carrier(req.Carrier)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	result, err := carrier.Track(r.Context(), req.toShipper())
	if err != nil {
		s.metrics.RecordError(carrier.Name(), "track")
		s.metrics.RecordRequest("track", carrier.Name(), "error", time.Since(start).Seconds())
		writeCarrierError(w, err)
		return
	}

	s.metrics.RecordRequest("track", carrier.Name(), "success", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, toTrackResult(result))
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.TrackingNumber == "" {
		writeError(w, http.StatusBadRequest, "trackingNumber is required")
		return
	}

	carrier, err := s.carrier(req.Carrier)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	result, err := carrier.CancelShipment(r.Context(), &shipper.CancelRequest{
		TrackingNumber: req.TrackingNumber,
		Reason:         req.Reason,
	})
	if err != nil {
		s.metrics.RecordError(carrier.Name(), "cancel")
		s.metrics.RecordRequest("cancel", carrier.Name(), "error", time.Since(start).Seconds())
		writeCarrierError(w, err)
		return
	}

	s.metrics.RecordRequest("cancel", carrier.Name(), "success", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, cancelResult{Success: result.Success, Message: result.Message})
}

func (s *Server) carrier(name string) (shipper.Carrier, error) {
	if name == "" {
		name = defaultCarrier
	}
	return s.registry.Get(name)
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeCarrierError maps domain errors to HTTP statuses. Anything the caller
// can fix is a 4xx; carrier-side trouble is a 502.
func writeCarrierError(w http.ResponseWriter, err error) {
	var ambiguous *shipper.AmbiguousTrackingError
	switch {
	case errors.Is(err, shipper.ErrMultiplePackages):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shipper.ErrShipmentNotFound), errors.Is(err, shipper.ErrNoTrackingDetails):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &ambiguous):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}
