package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/domain"
)

const sheetName = "List"

// Caption returns the header label with its sort marker, e.g. "Title ▲1".
func Caption(h changelist.BoundHeader) string {
	prio, ok := h.Priority()
	if !ok {
		return h.Label
	}
	marker := "▲"
	if h.IsDescending() {
		marker = "▼"
	}
	return h.Label + " " + marker + strconv.Itoa(prio)
}

// WriteXLSX writes one header row followed by one row per record, reading
// each cell from the header's column.
func WriteXLSX(w io.Writer, headers []changelist.BoundHeader, records []domain.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, Caption(h)); err != nil {
			return fmt.Errorf("failed to write header %s: %w", h.Name, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, bold); err != nil {
			return fmt.Errorf("failed to style header %s: %w", h.Name, err)
		}
	}

	for row, rec := range records {
		for col, h := range headers {
			v, ok := rec.Value(h.ColumnName)
			if !ok || v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if s, isStringer := v.(fmt.Stringer); isStringer {
				v = s.String()
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
