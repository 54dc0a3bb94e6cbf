// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package trace builds the tracer handed to the RPC requester. Spans are
// exported to a zipkin collector when tracing is enabled.
package trace

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	DefaultEndpoint = "http://localhost:9411/api/v2/spans"
	DefaultAppName  = "nearsdk"

	exportTimeout = 10 * time.Second
	// Longer than [exportTimeout] so in-flight exports finish first.
	shutdownTimeout = 15 * time.Second
)

type Config struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Zipkin collector URL. Defaults to [DefaultEndpoint].
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`

	// Fraction of requests to sample: >= 1 samples all, <= 0 samples none.
	SampleRate float64 `json:"sampleRate" mapstructure:"sampleRate"`

	AppName string `json:"appName" mapstructure:"appName"`
	Version string `json:"version" mapstructure:"version"`
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a no-op tracer unless [config] enables tracing.
func New(config Config) (trace.Tracer, error) {
	if config.AppName == "" {
		config.AppName = DefaultAppName
	}
	if !config.Enabled {
		return Noop(config.AppName), nil
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}

	exporter, err := zipkin.New(config.Endpoint)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			attribute.String("version", config.Version),
			semconv.ServiceNameKey.String(config.AppName),
		)),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.SampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(config.AppName),
		tp:     tp,
	}, nil
}
