package storage

import (
	"context"

	"vdpscanner/pkg/domain"
)

// DomainStorage keeps the list of domains to be scanned.
type DomainStorage interface {
	// UpsertDomains inserts the given records, replacing agency, organization
	// and security contact of rows that already exist for the same domain name.
	// It returns the number of affected rows.
	UpsertDomains(ctx context.Context, records ...domain.DomainRecord) (int64, error)
	// Domains returns every stored record ordered by domain name.
	Domains(ctx context.Context) ([]domain.DomainRecord, error)
	// DeleteDomains removes the given domain names and returns how many rows
	// were deleted. Unknown names are ignored.
	DeleteDomains(ctx context.Context, names ...string) (int64, error)
}
