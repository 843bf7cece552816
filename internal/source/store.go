package source

import (
	"context"
	"fmt"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/storage"
)

// Store reads the domain listing previously imported into the database.
type Store struct {
	Storage storage.DomainStorage
}

// Domains returns the stored records ordered by domain name.
func (s Store) Domains(ctx context.Context) ([]domain.DomainRecord, error) {
	records, err := s.Storage.Domains(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load domains from storage: %w", err)
	}

	return records, nil
}

var _ Provider = Store{}
