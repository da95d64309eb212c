package planner

import (
	"slices"
	"testing"
	"time"

	"shareplan/internal/workbook"
)

func TestBlockStarts_Predicate(t *testing.T) {
	g := newGrid()

	// Row 1: date + header text — a block start.
	g.setDate(1, 1, 2024, time.March, 1)
	g.setText(1, 6, "Balance")

	// Row 2: date but no header text.
	g.setDate(2, 1, 2024, time.April, 1)

	// Row 3: header text but no date.
	g.setText(3, 1, "April")
	g.setText(3, 6, "Balance")

	// Row 4: date + numeric column F — a number is not a header flag.
	g.setDate(4, 1, 2024, time.May, 1)
	g.setNumber(4, 6, 42)

	// Row 5: date + whitespace-only column F.
	g.setDate(5, 1, 2024, time.June, 1)
	g.setText(5, 6, "   ")

	// Row 6: another valid start.
	g.setDate(6, 1, 2024, time.July, 1)
	g.setText(6, 6, "Balance")

	got := BlockStarts(g)
	want := []int{1, 6}
	if !slices.Equal(got, want) {
		t.Errorf("BlockStarts() = %v, want %v", got, want)
	}
}

func TestBlockStarts_EmptySheet(t *testing.T) {
	if got := BlockStarts(newGrid()); len(got) != 0 {
		t.Errorf("BlockStarts(empty) = %v, want none", got)
	}
}

func TestIsNextBlockStart(t *testing.T) {
	g := newGrid()
	g.setDate(1, 1, 2024, time.March, 1)
	g.setText(1, 6, "Balance")
	g.setDate(9, 1, 2024, time.April, 1)
	g.setText(9, 6, "Balance")

	tests := []struct {
		name         string
		row          int
		currentStart int
		want         bool
	}{
		{name: "own start row", row: 1, currentStart: 1, want: false},
		{name: "later start row", row: 9, currentStart: 1, want: true},
		{name: "plain row", row: 5, currentStart: 1, want: false},
		{name: "start row before current", row: 1, currentStart: 9, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNextBlockStart(g, tt.row, tt.currentStart); got != tt.want {
				t.Errorf("isNextBlockStart(row=%d, current=%d) = %v, want %v",
					tt.row, tt.currentStart, got, tt.want)
			}
		})
	}
}

// A date stored as text must not qualify as a block start; only date-typed
// cells count.
func TestBlockStarts_TextDateDoesNotQualify(t *testing.T) {
	g := newGrid()
	g.set(1, 1, workbook.CellData{Kind: workbook.KindText, Raw: "2024-03-01"})
	g.setText(1, 6, "Balance")

	if got := BlockStarts(g); len(got) != 0 {
		t.Errorf("BlockStarts() = %v, want none for text date", got)
	}
}
