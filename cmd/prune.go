package main

import (
	"context"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/storage"
)

// staleDomains returns the stored domain names absent from records.
func staleDomains(ctx context.Context, strg storage.DomainStorage, records []domain.DomainRecord) ([]string, error) {
	stored, err := strg.Domains(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	keep := make(map[string]struct{}, len(records))
	for _, record := range records {
		keep[record.Domain] = struct{}{}
	}

	var stale []string
	for _, record := range stored {
		if _, ok := keep[record.Domain]; !ok {
			stale = append(stale, record.Domain)
		}
	}

	return stale, nil
}
