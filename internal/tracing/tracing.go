// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package tracing configures the OpenTelemetry tracer provider for a single CLI invocation.
//
// Every invocation gets a real trace id, which is forwarded to Azure Resource Manager as the
// x-ms-correlation-request-id header. Spans are only written out when a trace log file is requested.
package tracing

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/azure/acactl"

// System owns the tracer provider and the optional trace log file.
type System struct {
	provider *sdktrace.TracerProvider
	file     *os.File
}

// Initialize creates the tracer provider and installs it as the global provider.
// When traceLogFile is non-empty, finished spans are written to it as JSON.
func Initialize(traceLogFile string) (*System, error) {
	options := []sdktrace.TracerProviderOption{}

	var file *os.File
	if traceLogFile != "" {
		f, err := os.Create(traceLogFile)
		if err != nil {
			return nil, fmt.Errorf("creating trace log file: %w", err)
		}

		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f), stdouttrace.WithPrettyPrint())
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}

		file = f
		options = append(options, sdktrace.WithSyncer(exporter))
	}

	provider := sdktrace.NewTracerProvider(options...)
	otel.SetTracerProvider(provider)

	return &System{
		provider: provider,
		file:     file,
	}, nil
}

// Shutdown flushes pending spans and closes the trace log file.
func (s *System) Shutdown(ctx context.Context) error {
	err := s.provider.Shutdown(ctx)

	if s.file != nil {
		if closeErr := s.file.Close(); closeErr != nil {
			log.Printf("failed closing trace log file: %v", closeErr)
		}
	}

	return err
}

// Start starts a span using the global tracer provider.
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// TraceId returns the trace id of the span stored in ctx, or an empty string.
func TraceId(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return ""
	}

	return spanCtx.TraceID().String()
}
