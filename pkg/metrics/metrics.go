// Package metrics sets up the OpenTelemetry meter and tracer providers of a run
// and exposes their instruments through a dedicated Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
// Attempts that run into the default 30s fetch timeout fall in the upper buckets.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

// Exporter owns the meter and tracer providers and the registry they are
// exported to.
type Exporter struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
	tracer   *sdktrace.TracerProvider
}

// New creates an Exporter with a fresh registry that also carries the Go
// runtime and process collectors.
func New() (*Exporter, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	spans, err := newSpanRecorder(provider)
	if err != nil {
		return nil, err
	}

	return &Exporter{
		registry: registry,
		provider: provider,
		tracer:   sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
	}, nil
}

// MeterProvider returns the provider instruments should be created from.
func (e *Exporter) MeterProvider() metric.MeterProvider {
	return e.provider
}

// TracerProvider returns the provider spans should be created from. Finished
// spans are recorded in the vdp_span_duration_seconds histogram.
func (e *Exporter) TracerProvider() trace.TracerProvider {
	return e.tracer
}

// Registry returns the registry backing the exporter.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{Registry: e.registry})
}

// WriteTextfile writes the current state of the registry to path, in the
// format read by the node exporter textfile collector.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the tracer and meter providers.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if err := e.tracer.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown tracer provider: %w", err)
	}
	if err := e.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
