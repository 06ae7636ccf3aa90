// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry sets up optional OpenTelemetry tracing for photobackup.
//
// Tracing is off unless an OTLP endpoint is configured; in that case spans
// are exported over gRPC. When off, the global no-op tracer stays in place so
// [StartSpan] is always safe to call.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
)

const (
	instrumentationName = "github.com/MKhiriev/photo-backup"
	serviceName         = "photobackup"
)

// Telemetry owns the tracer provider installed by [Init].
type Telemetry struct {
	provider *sdktrace.TracerProvider
}

// Init installs an OTLP exporting tracer provider when cfg.OTLPEndpoint is
// set. With an empty endpoint it returns a Telemetry whose Shutdown is a
// no-op.
func Init(ctx context.Context, cfg config.Telemetry, version string, log *logger.Logger) (*Telemetry, error) {
	if cfg.OTLPEndpoint == "" {
		log.Debug().Msg("tracing disabled")
		return &Telemetry{}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating trace exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("tracing enabled")

	return &Telemetry{provider: tp}, nil
}

// Shutdown flushes pending spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

// StartSpan starts a span named name on the global tracer.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
