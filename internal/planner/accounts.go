package planner

import (
	"strconv"
	"strings"

	"shareplan/internal/workbook"
)

// extractAccounts reads the account rows of a block, starting at start+5 and
// stopping at the end of the sheet or the start of the next block. Rows
// whose name column is blank are skipped but do not terminate the block.
// Returns the accounts in row order plus the last account row consumed, so
// the caller can record the block's row span.
func extractAccounts(sheet Sheet, startRow int, buckets []bucketColumn, rec *refRecorder) ([]Account, int) {
	accounts := []Account{}
	maxRow := sheet.MaxRow()

	row := startRow + accountRowOffset
	lastRow := startRow + accountRowOffset - 1

	for row <= maxRow && !isNextBlockStart(sheet, row, startRow) {
		nameCell, _ := inspectCell(sheet, row, colAccountName, rec)
		name := nameCell.Text()
		if name == "" {
			row++
			continue
		}

		remaining, remainingFormula := inspectCell(sheet, row, colRemainingCash, rec)
		fixed, fixedFormula := inspectCell(sheet, row, colFixedBalance, rec)
		savings, savingsFormula := inspectCell(sheet, row, colSavingsTransfer, rec)

		allocations := make(map[string]*float64, len(buckets))
		bucketFormulas := make(map[string]*string, len(buckets))
		for _, bucket := range buckets {
			// Column 5 doubles as the account-name column; its legend
			// entry never carries per-account allocations.
			if bucket.col == colAccountName {
				continue
			}
			cell, formula := inspectCell(sheet, row, bucket.col, rec)
			allocations[bucket.name] = numberValue(cell)
			bucketFormulas[bucket.name] = formulaPtr(formula)
		}

		accounts = append(accounts, Account{
			Name:              name,
			RemainingCash:     numberValue(remaining),
			FixedBalance:      numberValue(fixed),
			SavingsTransfer:   numberValue(savings),
			BucketAllocations: allocations,
			Formulas: map[string]*string{
				"remaining_cash":   formulaPtr(remainingFormula),
				"fixed_balance":    formulaPtr(fixedFormula),
				"savings_transfer": formulaPtr(savingsFormula),
			},
			BucketFormulas: bucketFormulas,
		})

		row++
		lastRow = row - 1
	}

	return accounts, lastRow
}

// numberValue coerces a cell to a float. Numeric cells are used as-is; text
// cells are parsed; anything unparseable is absent rather than zero, so one
// malformed cell never poisons the export.
func numberValue(cell workbook.CellData) *float64 {
	switch cell.Kind {
	case workbook.KindNumber:
		n := cell.Number
		return &n
	case workbook.KindText:
		if n, err := strconv.ParseFloat(strings.TrimSpace(cell.Raw), 64); err == nil {
			return &n
		}
	}
	return nil
}
