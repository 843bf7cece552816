package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/serrors"
)

// Local reads the domain listing from a CSV file.
type Local struct {
	Path string
}

// Domains parses the file at Path. A missing file is reported as
// serrors.ErrNotFound.
func (l Local) Domains(_ context.Context) ([]domain.DomainRecord, error) {
	f, err := os.Open(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "domain listing %s not found", l.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open domain listing: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", l.Path, err)
	}

	return records, nil
}

var _ Provider = Local{}
