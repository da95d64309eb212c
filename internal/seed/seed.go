// Package seed serializes parsed months into the planned-expenses seed
// file consumed downstream.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shareplan/internal/planner"
)

// Encode renders months as the seed document: a two-space indented JSON
// array with HTML escaping disabled, so non-ASCII bucket and account names
// survive byte-for-byte. Output is deterministic: ordered fields come from
// slices, and map keys marshal in sorted order.
func Encode(months []*planner.Month) ([]byte, error) {
	if months == nil {
		months = []*planner.Month{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(months); err != nil {
		return nil, fmt.Errorf("encoding seed JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Write validates the encoded document against the seed schema and writes
// it to path, creating parent directories as needed. Nothing is written
// when encoding or validation fails.
func Write(months []*planner.Month, path string) error {
	data, err := Encode(months)
	if err != nil {
		return err
	}
	if err := Validate(data); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// RefErrorCount sums the reference errors across months for the export
// summary line.
func RefErrorCount(months []*planner.Month) int {
	count := 0
	for _, month := range months {
		count += len(month.RefErrors)
	}
	return count
}
