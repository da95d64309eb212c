package planner

import (
	"strconv"
	"time"

	"shareplan/internal/workbook"
)

// gridSheet is an in-memory Sheet for tests. Rows and columns are 1-based,
// matching the worksheet view.
type gridSheet struct {
	cells  map[[2]int]workbook.CellData
	maxRow int
}

func newGrid() *gridSheet {
	return &gridSheet{cells: make(map[[2]int]workbook.CellData)}
}

func (g *gridSheet) MaxRow() int { return g.maxRow }

func (g *gridSheet) Cell(row, col int) workbook.CellData {
	return g.cells[[2]int{row, col}]
}

func (g *gridSheet) set(row, col int, cell workbook.CellData) {
	g.cells[[2]int{row, col}] = cell
	if row > g.maxRow {
		g.maxRow = row
	}
}

func (g *gridSheet) setDate(row, col, year int, month time.Month, day int) {
	g.set(row, col, workbook.CellData{
		Kind: workbook.KindDate,
		Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	})
}

func (g *gridSheet) setText(row, col int, text string) {
	g.set(row, col, workbook.CellData{Kind: workbook.KindText, Raw: text})
}

func (g *gridSheet) setNumber(row, col int, n float64) {
	g.set(row, col, workbook.CellData{
		Kind:   workbook.KindNumber,
		Raw:    strconv.FormatFloat(n, 'g', -1, 64),
		Number: n,
	})
}

func (g *gridSheet) setNumberFormula(row, col int, n float64, formula string) {
	g.set(row, col, workbook.CellData{
		Kind:    workbook.KindNumber,
		Raw:     strconv.FormatFloat(n, 'g', -1, 64),
		Number:  n,
		Formula: formula,
	})
}

func (g *gridSheet) setError(row, col int, literal string) {
	g.set(row, col, workbook.CellData{Kind: workbook.KindError, Raw: literal, Formula: literal})
}

// buildMonthFixture lays out one canonical month block starting at row 1:
//
//	row 1: A = 2024-03-01, F = "Balance"          (block start)
//	row 2: statuses                                (start+1)
//	row 3: fixed factor at B; due-date window      (start+2)
//	row 4: inflow total at A; due-date window      (start+3)
//	row 5: legend: D=Savings E=Accounts F=Rent G=Utilities
//	row 6: account "Joint"; G carries a #REF! formula
//	row 7: blank name (skipped)
//	row 8: account "Personal"
func buildMonthFixture() *gridSheet {
	g := newGrid()

	g.setDate(1, colMonthStart, 2024, time.March, 1)
	g.setText(1, colHeaderFlag, "Balance")

	// Statuses: Savings blank (defaults), Rent padded, Utilities plain.
	g.setText(2, 6, " Paid ")
	g.setText(2, 7, "Scheduled")

	g.setNumberFormula(3, colFixedFactor, 0.5, "=B1*0.5")
	g.setNumber(4, colInflowTotal, 5000)

	// Due dates inside the start+2..start+5 window. Savings (column D)
	// stores its date in the adjacent column E.
	g.setDate(3, 5, 2024, time.March, 5)
	g.setDate(4, 6, 2024, time.March, 10)

	// Legend row.
	g.setText(5, 4, "Savings")
	g.setText(5, 5, "Accounts")
	g.setText(5, 6, "Rent")
	g.setText(5, 7, "Utilities")

	// Account rows.
	g.setText(6, colAccountName, "Joint")
	g.setNumber(6, colRemainingCash, 1200.5)
	g.setText(6, colFixedBalance, "123.45")
	g.setNumberFormula(6, colSavingsTransfer, 300, "=A6*0.25")
	g.setText(6, 6, "N/A")
	g.setNumberFormula(6, 7, 45.5, "=#REF!*2")

	g.setNumber(7, 6, 999) // no name in column E: row is skipped

	g.setText(8, colAccountName, "Personal")
	g.setNumber(8, colRemainingCash, 80)

	return g
}
