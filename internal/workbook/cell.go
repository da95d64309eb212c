package workbook

import (
	"strconv"
	"strings"
	"time"

	"github.com/tealeg/xlsx"
)

// Kind classifies the cached value stored in a cell.
type Kind int

const (
	// KindEmpty is a cell with no stored value.
	KindEmpty Kind = iota
	// KindText is a string-valued cell.
	KindText
	// KindNumber is a numeric cell that is not date-formatted.
	KindNumber
	// KindDate is a numeric cell with a date number format.
	KindDate
	// KindBool is a boolean cell.
	KindBool
	// KindError is a cell whose stored value is a spreadsheet error
	// (for example #REF! after a deleted reference).
	KindError
)

// CellData is the dual view of one cell: the cached computed value and the
// raw formula text, read together.
type CellData struct {
	Kind   Kind
	Raw    string    // cached value as stored in the file
	Number float64   // set when Kind is KindNumber
	Date   time.Time // set when Kind is KindDate

	// Formula is the formula text prefixed with "=", or "" when the cell
	// holds a literal. Error cells without formula text carry their error
	// literal here so broken references stay visible downstream.
	Formula string
}

// IsDate reports whether the cell holds a calendar date.
func (c CellData) IsDate() bool {
	return c.Kind == KindDate
}

// Text returns the trimmed string value, or "" for non-text cells.
func (c CellData) Text() string {
	if c.Kind != KindText {
		return ""
	}
	return strings.TrimSpace(c.Raw)
}

// fromCell converts a parsed xlsx cell into the dual-view CellData.
func fromCell(cell *xlsx.Cell) CellData {
	data := CellData{Raw: cell.Value}

	if f := cell.Formula(); f != "" {
		if strings.HasPrefix(f, "=") {
			data.Formula = f
		} else {
			data.Formula = "=" + f
		}
	}

	switch cell.Type() {
	case xlsx.CellTypeError:
		data.Kind = KindError
		if data.Formula == "" && cell.Value != "" {
			data.Formula = cell.Value
		}
	case xlsx.CellTypeBool:
		data.Kind = KindBool
	case xlsx.CellTypeNumeric, xlsx.CellTypeDate:
		classifyNumeric(cell, &data)
	default:
		// String, inline, formula-with-string-result, and general cells
		// all surface as text when anything is stored.
		if cell.Value == "" {
			data.Kind = KindEmpty
		} else {
			data.Kind = KindText
		}
	}

	return data
}

// classifyNumeric splits numeric cells into dates and plain numbers.
// Excel stores dates as serial numbers; the number format is what marks a
// cell as a date.
func classifyNumeric(cell *xlsx.Cell, data *CellData) {
	if cell.Value == "" {
		data.Kind = KindEmpty
		return
	}

	if cell.IsTime() {
		if t, err := cell.GetTime(false); err == nil {
			data.Kind = KindDate
			data.Date = t
			return
		}
	}

	if n, err := cell.Float(); err == nil {
		data.Kind = KindNumber
		data.Number = n
		return
	}

	// Numeric type with an unparseable payload degrades to text so the
	// raw value still reaches ref-error detection.
	data.Kind = KindText
}

// ColLetters returns the spreadsheet letters for a 1-based column index.
func ColLetters(col int) string {
	return xlsx.ColIndexToLetters(col - 1)
}

// CellRef returns the A1-style address for a 1-based row and column.
func CellRef(row, col int) string {
	return ColLetters(col) + strconv.Itoa(row)
}
