package postgres

import (
	"context"
	"fmt"

	"vdpscanner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	domainsTable = "domains"
)

// UpsertDomains inserts records keyed by domain name. Existing rows get their
// agency, organization and security contact replaced and updated_at bumped.
// When the same domain appears more than once in records, the last one wins.
func (p *PgSQL) UpsertDomains(ctx context.Context, records ...domain.DomainRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	// postgres rejects ON CONFLICT DO UPDATE touching the same row twice
	// within one statement.
	deduped := make([]domain.DomainRecord, 0, len(records))
	seen := make(map[string]int, len(records))
	for _, record := range records {
		if i, ok := seen[record.Domain]; ok {
			deduped[i] = record

			continue
		}
		seen[record.Domain] = len(deduped)
		deduped = append(deduped, record)
	}

	res, err := p.Builder.Insert(domainsTable).
		Rows(domainRecordsToPg(deduped)).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{
			"agency":           goqu.L("EXCLUDED.agency"),
			"organization":     goqu.L("EXCLUDED.organization"),
			"security_contact": goqu.L("EXCLUDED.security_contact"),
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert domains into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

// Domains returns all stored domain records ordered by domain name.
func (p *PgSQL) Domains(ctx context.Context) ([]domain.DomainRecord, error) {
	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Select(&PgDomain{}).
		Order(goqu.I("domain").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not select domains from pg: %w", err)
	}

	return pgDomainsToDomain(rows), nil
}

// DeleteDomains removes the given domain names.
func (p *PgSQL) DeleteDomains(ctx context.Context, names ...string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	res, err := p.Builder.Delete(domainsTable).
		Where(goqu.I("domain").In(names)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete domains from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}
