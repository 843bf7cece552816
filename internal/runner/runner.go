// Package runner drives a scan over a domain listing. Domains are checked in
// ascending name order and handed to the Recorder in that same order, whether
// checks run one at a time or in a bounded worker pool.
package runner

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Runner checks every record of a listing and records the outcomes.
type Runner struct {
	Checker  DomainChecker
	Recorder Recorder
	// Concurrency is the maximum number of domains checked at once. Values
	// below 2 check domains sequentially.
	Concurrency int
	// RateLimit caps the number of domain checks started per second. Zero
	// disables the limit.
	RateLimit float64
}

// Summary describes a finished run.
type Summary struct {
	RunID     uuid.UUID
	Started   time.Time
	Finished  time.Time
	Domains   int
	Published int
}

// Duration returns how long the run took.
func (s Summary) Duration() time.Duration {
	return s.Finished.Sub(s.Started)
}

// Run sorts records by domain name, checks each one and records its outcome.
// Every record is recorded even when its check fails. Cancelling ctx makes the
// remaining checks fail fast; their empty outcomes are still recorded.
func (r *Runner) Run(ctx context.Context, records []domain.DomainRecord) Summary {
	summary := Summary{
		RunID:   uuid.New(),
		Started: time.Now().UTC(),
		Domains: len(records),
	}
	ctx = logger.WithFields(ctx, zap.Stringer("runID", summary.RunID))

	sorted := SortRecords(records)
	logger.Info(ctx, "starting run",
		zap.Int("domains", len(sorted)),
		zap.Int("concurrency", max(r.Concurrency, 1)))

	record := func(rec domain.DomainRecord, outcome domain.CheckOutcome) {
		r.Recorder.Record(rec, outcome)
		if outcome.VDPPresent {
			summary.Published++
		}
	}

	if r.Concurrency < 2 {
		limiter := r.limiter()
		for i, rec := range sorted {
			r.wait(ctx, limiter)
			record(rec, r.check(ctx, i, len(sorted), rec))
		}
	} else {
		r.runPool(ctx, sorted, record)
	}

	summary.Finished = time.Now().UTC()
	logger.Info(ctx, "run finished",
		zap.Int("domains", summary.Domains),
		zap.Int("published", summary.Published),
		zap.Duration("duration", summary.Duration()))

	return summary
}

// runPool checks records in a bounded set of goroutines. The calling goroutine
// is the only writer: it waits for each index in turn and records it.
func (r *Runner) runPool(ctx context.Context, sorted []domain.DomainRecord,
	record func(domain.DomainRecord, domain.CheckOutcome)) {
	limiter := r.limiter()
	outcomes := make([]domain.CheckOutcome, len(sorted))
	ready := make([]chan struct{}, len(sorted))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		for i, rec := range sorted {
			sem <- struct{}{}
			r.wait(ctx, limiter)

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				outcomes[i] = r.check(ctx, i, len(sorted), rec)
				close(ready[i])
			}()
		}
	}()

	for i, rec := range sorted {
		<-ready[i]
		record(rec, outcomes[i])
	}

	wg.Wait()
}

func (r *Runner) check(ctx context.Context, i, total int, rec domain.DomainRecord) domain.CheckOutcome {
	logger.Info(ctx, "processing domain",
		zap.String("domain", rec.Domain),
		zap.Int("index", i+1),
		zap.Int("total", total))

	return r.Checker.CheckDomain(ctx, rec.Domain)
}

func (r *Runner) limiter() *rate.Limiter {
	if r.RateLimit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(r.RateLimit), 1)
}

func (r *Runner) wait(ctx context.Context, limiter *rate.Limiter) {
	if limiter == nil {
		return
	}

	// a cancelled context is not an error here; the check itself fails fast.
	_ = limiter.Wait(ctx)
}

// SortRecords returns a copy of records ordered by domain name. Records sharing
// a name keep their input order.
func SortRecords(records []domain.DomainRecord) []domain.DomainRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.DomainRecord) int {
		return strings.Compare(a.Domain, b.Domain)
	})

	return sorted
}
