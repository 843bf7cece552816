// Package vdp decides whether a domain publishes a Vulnerability Disclosure
// Policy at the well-known path, falling back across TLS and network failures.
package vdp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/fetcher"
	"vdpscanner/pkg/logger"
	"vdpscanner/pkg/metrics"
	"vdpscanner/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "vdpscanner/internal/vdp"

// Options configure a Checker.
type Options struct {
	// MeterProvider receives the checker instruments. The global provider is
	// used when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider receives a span per domain check with a child span per
	// fetch attempt. The global provider is used when nil.
	TracerProvider trace.TracerProvider
}

// Checker runs the fallback chain for a single domain. It holds no per-domain
// state and is safe for concurrent use as long as the fetch client is.
type Checker struct {
	client fetcher.Client
	tracer trace.Tracer

	attempts metric.Int64Counter
	duration metric.Float64Histogram
	checked  metric.Int64Counter
}

// CheckDomain checks name for a VDP. It never fails: every failure either
// moves on to the next stage of the chain or ends it with the zero outcome.
func (c *Checker) CheckDomain(ctx context.Context, name string) domain.CheckOutcome {
	ctx, span := c.tracer.Start(ctx, "vdp.check", trace.WithAttributes(attribute.String("domain", name)))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("domain", name))
	target := url.URL{Scheme: "https", Host: name, Path: domain.VDPPath}

	id := stageHTTPSVerified
	for {
		st := stages[id]
		target.Scheme = st.scheme

		res, err := c.attempt(ctx, st, target.String())
		if err == nil {
			outcome := toOutcome(res)
			c.checked.Add(ctx, 1, metric.WithAttributes(attribute.Bool("present", outcome.VDPPresent)))
			span.SetAttributes(attribute.Bool("vdp.present", outcome.VDPPresent))

			return outcome
		}

		next, ok := st.next[serrors.KindOf(err)]
		if !ok {
			logger.Warn(ctx, "unable to retrieve hash")
			logger.Debug(ctx, "fetch failure",
				zap.String("stage", st.name),
				zap.String("kind", kindName(err)),
				zap.Error(err))
			c.checked.Add(ctx, 1, metric.WithAttributes(attribute.Bool("present", false)))
			span.SetStatus(codes.Error, "unable to retrieve hash")

			return domain.CheckOutcome{}
		}

		logger.Debug(ctx, "fetch attempt failed",
			zap.String("stage", st.name),
			zap.String("kind", kindName(err)),
			zap.Error(err))
		logger.Info(ctx, stages[next].fallback)
		id = next
	}
}

func (c *Checker) attempt(ctx context.Context, st stage, URL string) (fetcher.Result, error) {
	ctx, span := c.tracer.Start(ctx, "vdp.fetch", trace.WithAttributes(
		attribute.String("stage", st.name),
		attribute.String("url.full", URL)))
	defer span.End()

	start := time.Now()
	res, err := c.client.Fetch(ctx, URL, st.verifyTLS)

	result := "ok"
	if err != nil {
		result = kindName(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	} else {
		span.SetAttributes(attribute.Int("http.response.status_code", res.Status))
	}
	attrs := metric.WithAttributes(attribute.String("stage", st.name), attribute.String("result", result))
	c.attempts.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return res, err //nolint: wrapcheck
}

// toOutcome maps a successful fetch to an outcome. Only an exact 200 counts as
// a published policy and only then is the hash kept.
func toOutcome(res fetcher.Result) domain.CheckOutcome {
	if res.Status == http.StatusOK {
		return domain.CheckOutcome{
			VisitedURL: res.FinalURL,
			IsRedirect: res.IsRedirect,
			VDPPresent: true,
			Hash:       res.Hash,
		}
	}

	return domain.CheckOutcome{
		VisitedURL: res.FinalURL,
		IsRedirect: res.IsRedirect,
	}
}

// kindName names the failure kind of err. Errors without a kind are "other"
// failures and reported as INTERNAL.
func kindName(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}

// New creates a Checker that fetches through client.
func New(client fetcher.Client, opts Options) (*Checker, error) {
	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	attempts, err := meter.Int64Counter("vdp.fetch.attempts",
		metric.WithDescription("Number of fetch attempts by fallback stage and result."))
	if err != nil {
		return nil, fmt.Errorf("could not create attempts counter: %w", err)
	}
	duration, err := meter.Float64Histogram("vdp.fetch.duration",
		metric.WithDescription("Duration of fetch attempts."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	checked, err := meter.Int64Counter("vdp.domains.checked",
		metric.WithDescription("Number of domains checked by VDP presence."))
	if err != nil {
		return nil, fmt.Errorf("could not create checked counter: %w", err)
	}

	return &Checker{
		client:   client,
		tracer:   tp.Tracer(instrumentationName),
		attempts: attempts,
		duration: duration,
		checked:  checked,
	}, nil
}
