package tracing

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/mathieupost/pulstruct/config"
)

// NewProvider builds a tracer provider for the configured exporter. The
// returned shutdown flushes pending spans.
func NewProvider(cfg config.Tracing) (*trace.TracerProvider, func(), error) {
	return newProvider(cfg, os.Stderr)
}

func newProvider(cfg config.Tracing, w io.Writer) (*trace.TracerProvider, func(), error) {
	ctx := context.Background()
	factory, err := lookupExporter(cfg.Exporter)
	if err != nil {
		return nil, nil, err
	}
	exp, err := factory(ctx, cfg.Endpoint, w)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating trace exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exp),
		trace.WithResource(newResource(cfg.Service)),
	)

	shutdown := func() {
		tp.Shutdown(ctx)
	}

	return tp, shutdown, nil
}
