// Package report persists the two result tables of a run: the agency summary
// and the per-domain results. Both are written as CSV files with fixed headers;
// an optional workbook carries the same rows in two sheets.
package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/logger"

	"go.uber.org/zap"
)

// DefaultDirectory is where reports are written when no directory is set.
const DefaultDirectory = "host_mount"

// Tables exposes the read-only projections produced by a run.
type Tables interface {
	AgencyTallies() []domain.AgencyTally
	DomainResults() []domain.DomainResult
}

// Writer writes run reports to Directory. File names that are absolute paths
// are used as-is.
type Writer struct {
	Directory string
	AgencyCSV string
	DomainCSV string
	// Workbook, when set, is the name of an additional xlsx report.
	Workbook string
}

// AgencyFileName returns the default agency report name for the UTC date of t.
func AgencyFileName(t time.Time) string {
	return "agency_results_" + t.UTC().Format(time.DateOnly) + ".csv"
}

// DomainFileName returns the default domain report name for the UTC date of t.
func DomainFileName(t time.Time) string {
	return "domain_results_" + t.UTC().Format(time.DateOnly) + ".csv"
}

// NewWriter returns a Writer using the default directory and the dated
// default file names for now.
func NewWriter(now time.Time) *Writer {
	return &Writer{
		Directory: DefaultDirectory,
		AgencyCSV: AgencyFileName(now),
		DomainCSV: DomainFileName(now),
	}
}

// Write persists the agency table, then the domain table, then the workbook
// if one is configured. It returns the paths written.
func (w *Writer) Write(ctx context.Context, tables Tables) ([]string, error) {
	if w.AgencyCSV == "" || w.DomainCSV == "" {
		return nil, errors.New("report file names must not be empty")
	}
	if err := os.MkdirAll(w.dir(), 0o755); err != nil { //nolint: gosec
		return nil, fmt.Errorf("could not create report directory: %w", err)
	}

	agencies := tables.AgencyTallies()
	agencyRows := make([][]string, 0, len(agencies))
	for _, tally := range agencies {
		agencyRows = append(agencyRows, tally.Row())
	}

	results := tables.DomainResults()
	domainRows := make([][]string, 0, len(results))
	for _, result := range results {
		domainRows = append(domainRows, result.Row())
	}

	written := make([]string, 0, 3)

	path := w.path(w.AgencyCSV)
	if err := writeCSV(path, domain.AgencyHeader, agencyRows); err != nil {
		return written, fmt.Errorf("could not write agency report: %w", err)
	}
	logger.Info(ctx, "agency report written", zap.String("path", path), zap.Int("rows", len(agencyRows)))
	written = append(written, path)

	path = w.path(w.DomainCSV)
	if err := writeCSV(path, domain.DomainHeader, domainRows); err != nil {
		return written, fmt.Errorf("could not write domain report: %w", err)
	}
	logger.Info(ctx, "domain report written", zap.String("path", path), zap.Int("rows", len(domainRows)))
	written = append(written, path)

	if w.Workbook != "" {
		path = w.path(w.Workbook)
		if err := writeWorkbook(path, agencies, results); err != nil {
			return written, fmt.Errorf("could not write workbook report: %w", err)
		}
		logger.Info(ctx, "workbook report written", zap.String("path", path))
		written = append(written, path)
	}

	return written, nil
}

func (w *Writer) dir() string {
	if w.Directory == "" {
		return "."
	}

	return w.Directory
}

func (w *Writer) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(w.dir(), name)
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	file, err := os.Create(path) //nolint: gosec
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	writer.UseCRLF = true

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("could not write rows: %w", err)
	}

	return nil
}
