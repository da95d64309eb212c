package planner

// dueDates finds the first date in each bucket's column within the search
// window (rows start+2 through start+5) and returns it as an ISO date, or
// nil when the window holds none. The Savings bucket conventionally stores
// its due date one column to the right, so that column is probed as a
// fallback. Every probed cell passes through the inspector and participates
// in reference-error detection.
func dueDates(sheet Sheet, startRow int, buckets []bucketColumn, rec *refRecorder) map[string]*string {
	out := make(map[string]*string, len(buckets))

	for _, bucket := range buckets {
		candidates := []int{bucket.col}
		if bucket.col == colSavingsBucket {
			candidates = append(candidates, colSavingsBucket+1)
		}

		var iso *string
		for _, col := range candidates {
			for row := startRow + dueDateFromOffset; row <= startRow+dueDateToOffset; row++ {
				cell, _ := inspectCell(sheet, row, col, rec)
				if cell.IsDate() {
					formatted := cell.Date.Format(isoDate)
					iso = &formatted
					break
				}
			}
			if iso != nil {
				break
			}
		}
		out[bucket.name] = iso
	}
	return out
}
