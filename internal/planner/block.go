package planner

import "fmt"

// ParseBlock assembles the Month starting at startRow. The start cell must
// be date-typed; BlockStarts guarantees that, but the check stays as a
// guard against callers passing arbitrary rows.
//
// Reference errors found by any extraction step land in one deduplicated
// list on the returned Month.
func ParseBlock(sheet Sheet, startRow int) (*Month, error) {
	startCell := sheet.Cell(startRow, colMonthStart)
	if !startCell.IsDate() {
		return nil, fmt.Errorf("row %d does not contain a valid month start date", startRow)
	}

	rec := newRefRecorder()

	buckets := bucketColumns(sheet, startRow+legendRowOffset)
	statusByBucket := statuses(sheet, startRow+statusRowOffset, buckets)
	due := dueDates(sheet, startRow, buckets, rec)
	accounts, endRow := extractAccounts(sheet, startRow, buckets, rec)

	fixedCell, fixedFormula := inspectCell(sheet, startRow+fixedFactorRowOffset, colFixedFactor, rec)
	inflowCell, inflowFormula := inspectCell(sheet, startRow+inflowRowOffset, colInflowTotal, rec)

	order := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		order = append(order, bucket.name)
	}

	return &Month{
		MonthStart:         startCell.Date.Format(isoDate),
		FixedFactor:        numberValue(fixedCell),
		InflowTotal:        numberValue(inflowCell),
		InflowFormula:      formulaPtr(inflowFormula),
		FixedFactorFormula: formulaPtr(fixedFormula),
		StatusByBucket:     statusByBucket,
		DueDates:           due,
		BucketOrder:        order,
		Accounts:           accounts,
		SourceRows:         RowSpan{Start: startRow, End: endRow},
		RefErrors:          rec.errs,
	}, nil
}

// ParseMonths parses every month block in the sheet in top-to-bottom order.
// When limit is positive, at most that many blocks are parsed.
func ParseMonths(sheet Sheet, limit int) ([]*Month, error) {
	starts := BlockStarts(sheet)
	if limit > 0 && len(starts) > limit {
		starts = starts[:limit]
	}

	months := make([]*Month, 0, len(starts))
	for _, start := range starts {
		month, err := ParseBlock(sheet, start)
		if err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, nil
}
