// Package planner parses the repeating month blocks of the planning
// worksheet into export records.
//
// A block begins at a row whose column A holds a date and whose column F
// holds text. The rows that follow sit at fixed offsets from that start row:
// the status row (+1), the fixed-factor and inflow cells (+2, +3), the
// legend row naming the bucket columns (+4), and a variable-length run of
// account rows (+5 onward, until the next block or the end of the sheet).
// This layout is a convention of one specific worksheet and is preserved
// exactly; do not generalize the offsets.
package planner

import "shareplan/internal/workbook"

// Sheet is the cell grid the parser reads. workbook.Sheet satisfies it; the
// tests use an in-memory grid.
type Sheet interface {
	MaxRow() int
	Cell(row, col int) workbook.CellData
}

// Worksheet layout. Columns are 1-based (A = 1).
const (
	colMonthStart      = 1 // column A: first-of-month date marking a block start
	colHeaderFlag      = 6 // column F: section header text, present only on start rows
	colAccountName     = 5 // account rows: account name; excluded from allocations
	colRemainingCash   = 1
	colFixedBalance    = 2
	colSavingsTransfer = 4
	colSavingsBucket   = 4 // Savings bucket; its due date sits one column right
	colFixedFactor     = 2
	colInflowTotal     = 1

	bucketColFirst = 4  // column D
	bucketColLast  = 13 // column M

	statusRowOffset      = 1
	fixedFactorRowOffset = 2
	inflowRowOffset      = 3
	legendRowOffset      = 4
	accountRowOffset     = 5

	// Due dates are searched in rows start+2 through start+5.
	dueDateFromOffset = 2
	dueDateToOffset   = 5
)

// defaultStatus is assigned to buckets whose status cell is blank.
const defaultStatus = "Pending"

// isoDate is the layout for every calendar date in the export.
const isoDate = "2006-01-02"

// Month is one parsed month block, immutable after ParseBlock returns it.
// Field order matches the seed file layout consumed downstream.
type Month struct {
	MonthStart         string              `json:"month_start"`
	FixedFactor        *float64            `json:"fixed_factor"`
	InflowTotal        *float64            `json:"inflow_total"`
	InflowFormula      *string             `json:"inflow_formula"`
	FixedFactorFormula *string             `json:"fixed_factor_formula"`
	StatusByBucket     map[string]string   `json:"status_by_bucket"`
	DueDates           map[string]*string  `json:"due_dates"`
	BucketOrder        []string            `json:"bucket_order"`
	Accounts           []Account           `json:"accounts"`
	SourceRows         RowSpan             `json:"source_rows"`
	RefErrors          []RefError          `json:"ref_errors"`
}

// RowSpan records the sheet rows a block was read from.
type RowSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Account is one account row within a month block.
// BucketAllocations and BucketFormulas share a key set: the month's bucket
// order minus the bucket at the account-name column.
type Account struct {
	Name              string              `json:"name"`
	RemainingCash     *float64            `json:"remaining_cash"`
	FixedBalance      *float64            `json:"fixed_balance"`
	SavingsTransfer   *float64            `json:"savings_transfer"`
	BucketAllocations map[string]*float64 `json:"bucket_allocations"`
	Formulas          map[string]*string  `json:"formulas"`
	BucketFormulas    map[string]*string  `json:"bucket_formulas"`
}

// RefError is one cell flagged as holding a broken reference.
type RefError struct {
	Cell    string  `json:"cell"`
	Value   *string `json:"value"`
	Formula *string `json:"formula"`
}

// formulaPtr returns nil for absent formulas so they serialize as null.
func formulaPtr(formula string) *string {
	if formula == "" {
		return nil
	}
	return &formula
}
