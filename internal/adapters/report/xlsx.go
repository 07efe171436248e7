// Package report renders progress reports as Excel workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// Sheet names, in workbook order
const (
	SheetTopics     = "Topics"
	SheetSections   = "Sections"
	SheetDifficulty = "Difficulty"
)

// XLSX implements ports.ReportWriter with excelize
type XLSX struct{}

// Ensure XLSX implements ReportWriter
var _ ports.ReportWriter = (*XLSX)(nil)

// NewXLSX creates an xlsx report writer
func NewXLSX() *XLSX {
	return &XLSX{}
}

// WriteReport writes the workbook to path
func (x *XLSX) WriteReport(path string, c domain.Catalog) error {
	f, err := Build(c)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Build assembles the report workbook
func Build(c domain.Catalog) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetTopics); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetSections, SheetDifficulty} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	steps := []func(*excelize.File, domain.Catalog, int) error{
		writeTopics,
		writeSections,
		writeDifficulty,
	}
	for _, step := range steps {
		if err := step(f, c, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("building report: %w", err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, header int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, header)
}

func writeTopics(f *excelize.File, c domain.Catalog, header int) error {
	rows := [][]any{{"Section", "Topic", "Difficulty", "Estimate", "Estimated Hours", "Completed", "Minutes Spent", "Notes"}}
	for _, ref := range c.Refs() {
		t := ref.Topic
		rows = append(rows, []any{
			ref.SectionTitle,
			t.Title,
			string(t.Difficulty),
			t.TimeEstimate,
			domain.EstimateHours(t.TimeEstimate),
			t.Completed,
			t.ActualTimeSpent,
			t.Notes,
		})
	}
	return writeRows(f, SheetTopics, header, rows)
}

func writeSections(f *excelize.File, c domain.Catalog, header int) error {
	rows := [][]any{{"Section", "Completed", "Total", "Progress %"}}
	for _, s := range domain.SectionStats(c) {
		rows = append(rows, []any{s.Title, s.Completed, s.Total, s.Percentage})
	}
	done, total := domain.CountTopics(c)
	rows = append(rows, []any{"Overall", done, total, domain.Percent(done, total)})
	return writeRows(f, SheetSections, header, rows)
}

func writeDifficulty(f *excelize.File, c domain.Catalog, header int) error {
	rows := [][]any{{"Difficulty", "Completed", "Total", "Progress %"}}
	for _, s := range domain.DifficultyStats(c) {
		rows = append(rows, []any{string(s.Bucket), s.Completed, s.Total, s.Percentage})
	}
	return writeRows(f, SheetDifficulty, header, rows)
}
