package planner

// BlockStarts scans the sheet top to bottom and returns every row index that
// begins a month block: column A holds a date and column F holds non-empty
// text. The predicate is a convention of the source worksheet, not a
// self-describing marker; callers must not loosen it.
func BlockStarts(sheet Sheet) []int {
	maxRow := sheet.MaxRow()
	var starts []int
	for row := 1; row <= maxRow; row++ {
		if isBlockStart(sheet, row) {
			starts = append(starts, row)
		}
	}
	return starts
}

// isBlockStart reports whether row satisfies the block-start predicate.
func isBlockStart(sheet Sheet, row int) bool {
	return sheet.Cell(row, colMonthStart).IsDate() &&
		sheet.Cell(row, colHeaderFlag).Text() != ""
}

// isNextBlockStart reports whether row starts a block other than the one
// beginning at currentStart. Used to terminate the account scan.
func isNextBlockStart(sheet Sheet, row, currentStart int) bool {
	return row > currentStart && isBlockStart(sheet, row)
}
