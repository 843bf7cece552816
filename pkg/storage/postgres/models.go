package postgres

import (
	"database/sql"
	"time"

	"vdpscanner/pkg/domain"
)

// PgDomain is a row of the domains table.
type PgDomain struct {
	Domain          string         `db:"domain"`
	Agency          string         `db:"agency"`
	Organization    sql.NullString `db:"organization"`
	SecurityContact sql.NullString `db:"security_contact"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() domain.DomainRecord {
	return domain.DomainRecord{
		Domain:          p.Domain,
		Agency:          p.Agency,
		Organization:    p.Organization.String,
		SecurityContact: p.SecurityContact.String,
	}
}

func (p *PgDomain) FromDomain(record domain.DomainRecord) {
	*p = PgDomain{
		Domain: record.Domain,
		Agency: record.Agency,
		Organization: sql.NullString{
			String: record.Organization,
			Valid:  record.Organization != "",
		},
		SecurityContact: sql.NullString{
			String: record.SecurityContact,
			Valid:  record.SecurityContact != "",
		},
	}
}

func domainRecordsToPg(records []domain.DomainRecord) []PgDomain {
	out := make([]PgDomain, len(records))
	for i := range out {
		out[i].FromDomain(records[i])
	}

	return out
}

func pgDomainsToDomain(rows []PgDomain) []domain.DomainRecord {
	out := make([]domain.DomainRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
