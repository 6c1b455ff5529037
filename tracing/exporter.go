package tracing

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
)

type exporterFactory func(ctx context.Context, endpoint string, w io.Writer) (trace.SpanExporter, error)

var exporters = map[string]exporterFactory{
	"otlp":   newExporter,
	"stdout": newStdoutExporter,
	"none":   newNoopExporter,
	"":       newNoopExporter,
}

func newExporter(ctx context.Context, endpoint string, _ io.Writer) (trace.SpanExporter, error) {
	client := otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	return otlptrace.New(ctx, client)
}

func newStdoutExporter(ctx context.Context, endpoint string, w io.Writer) (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
}

func newNoopExporter(ctx context.Context, endpoint string, _ io.Writer) (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(io.Discard))
}

func lookupExporter(name string) (exporterFactory, error) {
	factory, ok := exporters[name]
	if !ok {
		return nil, errors.Errorf("unknown trace exporter %q", name)
	}
	return factory, nil
}
