// Package source provides the domain listings a run is performed over: a local
// DotGov CSV file, the remote DotGov listing, or the postgres domain store.
package source

import (
	"context"

	"vdpscanner/pkg/domain"
)

// GitHubCSVURL is the listing of current federal domains published by CISA.
const GitHubCSVURL = "https://raw.githubusercontent.com/cisagov/dotgov-data/main/current-federal.csv"

// Provider supplies the domain records of a run.
type Provider interface {
	// Domains returns every record of the listing. An error means the listing
	// is unavailable and the run cannot proceed.
	Domains(ctx context.Context) ([]domain.DomainRecord, error)
}
