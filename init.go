package main

import (
	"context"

	"github.com/tournevent/fedex/internal/config"
	"github.com/tournevent/fedex/internal/telemetry"
	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/tournevent/fedex/pkg/shipper/fedex"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(cfg *config.Config) (*otelzap.Logger, error) {
	return telemetry.NewLogger(cfg.LogLevel, cfg.ServiceName)
}

func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
}

func initShipperRegistry(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *shipper.Registry {
	registry := shipper.NewRegistry()

	if cfg.FedExEnabled {
		fx := fedex.New(fedex.Config{
			Account:     cfg.FedExAccount,
			AccessToken: cfg.FedExAccessToken,
			BaseURL:     cfg.FedExBaseURL,
			GatewayURL:  cfg.FedExGatewayURL,
			Test:        cfg.FedExTest,
			UseMock:     cfg.FedExUseMock,
		}, logger, tracer)
		registry.Register(fx)
	}

	return registry
}
