//go:generate mockgen -package mockrunner -source=interface.go -destination=mock/mockrunner.go *
package runner

import (
	"context"

	"vdpscanner/pkg/domain"
)

// DomainChecker determines the VDP outcome of a single domain. It never fails:
// an unreachable domain yields the zero outcome.
type DomainChecker interface {
	CheckDomain(ctx context.Context, name string) domain.CheckOutcome
}

// Recorder accumulates checked domains. Calls are made from a single goroutine
// in sorted domain order.
type Recorder interface {
	Record(record domain.DomainRecord, outcome domain.CheckOutcome)
}
