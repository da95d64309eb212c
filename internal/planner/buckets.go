package planner

import (
	"fmt"

	"shareplan/internal/workbook"
)

// bucketColumn pairs a sheet column with the bucket name rendered for it.
type bucketColumn struct {
	col  int
	name string
}

// bucketColumns reads the legend row and returns the bucket columns in
// left-to-right order. Callers rely on that order for rendering, so the
// result is a slice rather than a map.
//
// Legend headers may repeat; the second and later occurrences of a header
// are suffixed with their column letter to keep bucket names unique.
func bucketColumns(sheet Sheet, legendRow int) []bucketColumn {
	var buckets []bucketColumn
	occurrences := make(map[string]int)

	for col := bucketColFirst; col <= bucketColLast; col++ {
		header := sheet.Cell(legendRow, col).Text()
		if header == "" {
			continue
		}

		count := occurrences[header]
		occurrences[header] = count + 1

		name := header
		if count > 0 {
			name = fmt.Sprintf("%s (%s)", header, workbook.ColLetters(col))
		}
		buckets = append(buckets, bucketColumn{col: col, name: name})
	}
	return buckets
}
