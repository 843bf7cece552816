package report

import (
	"fmt"

	"vdpscanner/pkg/domain"

	"github.com/xuri/excelize/v2"
)

const (
	agencySheet = "Agencies"
	domainSheet = "Domains"
)

// writeWorkbook writes both tables into one xlsx file. Counters are stored as
// numbers and flags as booleans so the sheets can be filtered and summed.
func writeWorkbook(path string, agencies []domain.AgencyTally, results []domain.DomainResult) error {
	f := excelize.NewFile()
	defer f.Close() //nolint: errcheck

	if err := f.SetSheetName(f.GetSheetName(0), agencySheet); err != nil {
		return fmt.Errorf("could not rename sheet: %w", err)
	}
	if _, err := f.NewSheet(domainSheet); err != nil {
		return fmt.Errorf("could not create sheet: %w", err)
	}

	agencyRows := make([][]any, 0, len(agencies))
	for _, t := range agencies {
		agencyRows = append(agencyRows, []any{
			t.Agency,
			t.TotalDomains,
			t.SecurityContactListed,
			t.OrganizationListed,
			t.OrganizationMatchesAgency,
			t.VDPPublished,
		})
	}
	if err := writeSheet(f, agencySheet, domain.AgencyHeader, agencyRows); err != nil {
		return err
	}

	domainRows := make([][]any, 0, len(results))
	for _, r := range results {
		domainRows = append(domainRows, []any{
			r.Domain,
			r.Agency,
			r.Organization,
			r.SecurityContact,
			r.VisitedURL,
			r.IsRedirect,
			r.VDPPresent,
			r.Hash,
		})
	}
	if err := writeSheet(f, domainSheet, domain.DomainHeader, domainRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("could not write %s header: %w", sheet, err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("could not compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("could not write %s row %d: %w", sheet, i+1, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("could not freeze %s header: %w", sheet, err)
	}

	return nil
}
