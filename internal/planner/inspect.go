package planner

import (
	"strings"

	"shareplan/internal/workbook"
)

// refMarker is the broken-reference marker Excel leaves behind after a
// referenced cell is deleted. Matched case-insensitively against both the
// cached value and the formula text.
const refMarker = "#REF"

// refRecorder accumulates reference errors for one block, deduplicated by
// cell address. A fresh recorder is created per block and discarded after
// the block is assembled.
type refRecorder struct {
	seen map[string]bool
	errs []RefError
}

func newRefRecorder() *refRecorder {
	return &refRecorder{
		seen: make(map[string]bool),
		errs: []RefError{},
	}
}

// record stores one reference error unless the address was already seen.
func (r *refRecorder) record(addr string, cell workbook.CellData) {
	if r.seen[addr] {
		return
	}
	r.seen[addr] = true

	var value *string
	if cell.Kind != workbook.KindEmpty {
		raw := cell.Raw
		value = &raw
	}
	r.errs = append(r.errs, RefError{
		Cell:    addr,
		Value:   value,
		Formula: formulaPtr(cell.Formula),
	})
}

// inspectCell is the shared leaf read: it returns a cell's cached value and
// normalized formula text, and as a side effect records the cell into rec
// when it shows a broken reference. A cell is flagged when its text value
// contains the marker, its formula contains the marker, or the cell itself
// is error-typed.
func inspectCell(sheet Sheet, row, col int, rec *refRecorder) (workbook.CellData, string) {
	cell := sheet.Cell(row, col)
	formula := cell.Formula

	hasRefError := cell.Kind == workbook.KindError
	if cell.Kind == workbook.KindText && strings.Contains(strings.ToUpper(cell.Raw), refMarker) {
		hasRefError = true
	}
	if formula != "" && strings.Contains(strings.ToUpper(formula), refMarker) {
		hasRefError = true
	}

	if hasRefError {
		rec.record(workbook.CellRef(row, col), cell)
	}
	return cell, formula
}
