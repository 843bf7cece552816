package source

import (
	"context"
	"fmt"
	"net/http"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/serrors"
)

// Remote downloads the domain listing over HTTP.
type Remote struct {
	HTTPClient *http.Client
	URL        string
}

// Domains downloads and parses the listing. A listing that cannot be
// downloaded is reported as serrors.ErrUnavailable.
func (r Remote) Domains(ctx context.Context) ([]domain.DomainRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	client := r.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not download domain listing")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUnavailable, "domain listing returned status %d", resp.StatusCode)
	}

	records, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", r.URL, err)
	}

	return records, nil
}

var _ Provider = Remote{}
