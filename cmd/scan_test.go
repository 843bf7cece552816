package main

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vdpscanner/internal/config"
	"vdpscanner/pkg/domain"

	"github.com/stretchr/testify/require"
)

type staticProvider []domain.DomainRecord

func (s staticProvider) Domains(context.Context) ([]domain.DomainRecord, error) {
	return s, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	cfg.Fetch.Timeout = 2 * time.Second
	cfg.Output.Directory = t.TempDir()
	cfg.Output.AgencyCSV = "agency.csv"
	cfg.Output.DomainCSV = "domain.csv"

	return cfg
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestRunScan(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != domain.VDPPath {
			http.NotFound(w, r)

			return
		}
		_, _ = w.Write([]byte("hello"))
	}))
	t.Cleanup(srv.Close)

	srvURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	closed := httptest.NewServer(http.NotFoundHandler())
	closedHost := closed.Listener.Addr().String()
	closed.Close()

	cfg := testConfig(t)
	cfg.Metrics.TextfilePath = filepath.Join(cfg.Output.Directory, "vdp.prom")
	cfg.Output.Workbook = "vdp.xlsx"

	err = runScan(context.Background(), cfg, staticProvider{
		{Domain: srvURL.Host, Agency: "Agency A", Organization: "Agency A", SecurityContact: "sec@a.gov"},
		{Domain: closedHost, Agency: "Agency B", SecurityContact: "(blank)"},
	})
	require.NoError(t, err)

	// both hosts are 127.0.0.1 so the row order depends on the ports.
	agencies := readRows(t, filepath.Join(cfg.Output.Directory, "agency.csv"))
	require.Equal(t, domain.AgencyHeader, agencies[0])
	require.ElementsMatch(t, [][]string{
		{"Agency A", "1", "1", "1", "1", "1"},
		{"Agency B", "1", "0", "0", "0", "0"},
	}, agencies[1:])

	domains := readRows(t, filepath.Join(cfg.Output.Directory, "domain.csv"))
	require.Len(t, domains, 3)
	byDomain := map[string][]string{}
	for _, row := range domains[1:] {
		byDomain[row[0]] = row
	}

	published := byDomain[srvURL.Host]
	require.Equal(t, "https://"+srvURL.Host+domain.VDPPath, published[4])
	require.Equal(t, "True", published[6])
	// sha256("hello")
	require.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", published[7])
	require.Equal(t, []string{closedHost, "Agency B", "", "(blank)", "", "False", "False", ""}, byDomain[closedHost])

	require.FileExists(t, filepath.Join(cfg.Output.Directory, "vdp.xlsx"))

	prom, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	require.Contains(t, string(prom), "vdp_domains_checked_total")
	require.Contains(t, string(prom), `span="vdp.check"`)
}

func TestRunScan_EmptyListingWritesHeaders(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, runScan(context.Background(), cfg, staticProvider{}))
	require.Equal(t, [][]string{domain.AgencyHeader}, readRows(t, filepath.Join(cfg.Output.Directory, "agency.csv")))
	require.Equal(t, [][]string{domain.DomainHeader}, readRows(t, filepath.Join(cfg.Output.Directory, "domain.csv")))
}

func TestInputPath(t *testing.T) {
	cfg := &config.Config{}
	cfg.Source.InputDirectory = "host_mount"
	require.Equal(t, filepath.Join("host_mount", "list.csv"), inputPath(cfg, "list.csv"))
	require.Equal(t, "/abs/list.csv", inputPath(cfg, "/abs/list.csv"))

	cfg.Source.InputDirectory = ""
	require.Equal(t, "list.csv", inputPath(cfg, "list.csv"))
}

func TestNewReportWriter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Directory = "out"
	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	w := newReportWriter(cfg, started)
	require.Equal(t, "out", w.Directory)
	require.Equal(t, "agency_results_2024-01-02.csv", w.AgencyCSV)
	require.Equal(t, "domain_results_2024-01-02.csv", w.DomainCSV)

	cfg.Output.AgencyCSV = "a.csv"
	cfg.Output.DomainCSV = "d.csv"
	w = newReportWriter(cfg, started)
	require.Equal(t, "a.csv", w.AgencyCSV)
	require.Equal(t, "d.csv", w.DomainCSV)
}
