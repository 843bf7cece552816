package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"vdpscanner/pkg/domain"
	"vdpscanner/pkg/serrors"
)

// Column names of a GSA formatted domain listing.
const (
	ColumnDomain          = "Domain Name"
	ColumnAgency          = "Agency"
	ColumnOrganization    = "Organization"
	ColumnSecurityContact = "Security Contact Email"
)

// ParseCSV reads a DotGov domain listing. Columns are located by header name so
// additional columns and any column order are accepted. Trailing whitespace is
// stripped from every line and rows without a domain name are skipped.
func ParseCSV(r io.Reader) ([]domain.DomainRecord, error) {
	var lines strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines.WriteString(strings.TrimRightFunc(scanner.Text(), isSpace))
		lines.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read domain listing: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(lines.String()))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, serrors.With(serrors.ErrBadRequest, "domain listing is empty")
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read header")
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var records []domain.DomainRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read domain listing")
		}

		record := domain.DomainRecord{
			Domain:          field(row, idx[ColumnDomain]),
			Agency:          field(row, idx[ColumnAgency]),
			Organization:    field(row, idx[ColumnOrganization]),
			SecurityContact: field(row, idx[ColumnSecurityContact]),
		}
		if record.Domain == "" {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		// a UTF-8 byte order mark may precede the first column name
		name = strings.TrimPrefix(name, "\ufeff")
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}

	for _, required := range []string{ColumnDomain, ColumnAgency, ColumnOrganization, ColumnSecurityContact} {
		if _, ok := idx[required]; !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "domain listing has no %q column", required)
		}
	}

	return idx, nil
}

// field returns the i-th cell of row, or "" for short rows.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
}
