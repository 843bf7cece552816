package metrics

import (
	"context"
	"fmt"

	"vdpscanner/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const instrumentationName = "vdpscanner/pkg/metrics"

// spanRecorder surfaces finished spans as a latency histogram on the
// exporter's registry and as debug log entries.
type spanRecorder struct {
	duration metric.Float64Histogram
}

var _ sdktrace.SpanProcessor = (*spanRecorder)(nil)

func newSpanRecorder(mp metric.MeterProvider) (*spanRecorder, error) {
	duration, err := mp.Meter(instrumentationName).Float64Histogram("vdp.span.duration",
		metric.WithDescription("Duration of finished trace spans."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create span duration histogram: %w", err)
	}

	return &spanRecorder{duration: duration}, nil
}

func (r *spanRecorder) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (r *spanRecorder) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime())
	status := s.Status().Code.String()

	ctx := context.Background()
	r.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("span", s.Name()),
		attribute.String("status", status)))

	if !logger.IsDebug(ctx) {
		return
	}

	fields := []zap.Field{
		zap.String("span", s.Name()),
		zap.String("traceID", s.SpanContext().TraceID().String()),
		zap.Duration("duration", elapsed),
		zap.String("status", status),
	}
	for _, kv := range s.Attributes() {
		fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
	}
	logger.Debug(ctx, "span finished", fields...)
}

func (r *spanRecorder) Shutdown(context.Context) error   { return nil }
func (r *spanRecorder) ForceFlush(context.Context) error { return nil }
