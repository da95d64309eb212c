package planner

// statuses reads the status row and returns one status per bucket. A cell
// with text is used verbatim after trimming; a blank cell means the bucket
// is still pending.
func statuses(sheet Sheet, statusRow int, buckets []bucketColumn) map[string]string {
	out := make(map[string]string, len(buckets))
	for _, bucket := range buckets {
		if text := sheet.Cell(statusRow, bucket.col).Text(); text != "" {
			out[bucket.name] = text
		} else {
			out[bucket.name] = defaultStatus
		}
	}
	return out
}
