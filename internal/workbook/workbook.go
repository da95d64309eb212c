// Package workbook wraps xlsx parsing into a dual-view cell reader: every
// cell exposes both its cached computed value and its raw formula text.
package workbook

import (
	"fmt"
	"os"
	"strings"

	"github.com/tealeg/xlsx"
)

// Workbook is a read-only view over an .xlsx file.
type Workbook struct {
	file *xlsx.File
}

// Open loads the workbook at path.
// The file must exist; a missing file is reported before parsing is attempted
// so the caller can distinguish configuration errors from corrupt workbooks.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook not found: %s", path)
	}

	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	return &Workbook{file: file}, nil
}

// SheetNames returns the worksheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, 0, len(wb.file.Sheets))
	for _, sheet := range wb.file.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}

// Sheet returns the worksheet with the given name.
// The error lists the available sheet names when the lookup fails.
func (wb *Workbook) Sheet(name string) (*Sheet, error) {
	sheet, ok := wb.file.Sheet[name]
	if !ok {
		return nil, fmt.Errorf("worksheet %q not found. Available: [%s]",
			name, strings.Join(wb.SheetNames(), ", "))
	}
	return &Sheet{ws: sheet}, nil
}

// Sheet is a read-only view over one worksheet.
type Sheet struct {
	ws *xlsx.Sheet
}

// newSheet wraps a raw xlsx sheet. Used by tests that build sheets in memory.
func newSheet(ws *xlsx.Sheet) *Sheet {
	return &Sheet{ws: ws}
}

// MaxRow returns the number of rows in the sheet.
func (s *Sheet) MaxRow() int {
	return len(s.ws.Rows)
}

// Cell returns the cell at the 1-based row and column.
// Locations outside the stored grid yield an empty CellData; the underlying
// sheet is never grown by a read.
func (s *Sheet) Cell(row, col int) CellData {
	if row < 1 || col < 1 || row > len(s.ws.Rows) {
		return CellData{}
	}
	r := s.ws.Rows[row-1]
	if r == nil || col > len(r.Cells) {
		return CellData{}
	}
	return fromCell(r.Cells[col-1])
}
