package seed

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shareplan/internal/planner"
)

func sampleMonth() *planner.Month {
	factor := 0.5
	inflow := 5000.0
	formula := "=B1*0.5"
	due := "2024-03-05"
	alloc := 300.0

	return &planner.Month{
		MonthStart:         "2024-03-01",
		FixedFactor:        &factor,
		InflowTotal:        &inflow,
		FixedFactorFormula: &formula,
		StatusByBucket:     map[string]string{"Savings": "Pending", "Café": "Paid"},
		DueDates:           map[string]*string{"Savings": &due, "Café": nil},
		BucketOrder:        []string{"Savings", "Café"},
		Accounts: []planner.Account{
			{
				Name:            "Joint",
				RemainingCash:   &inflow,
				SavingsTransfer: &alloc,
				BucketAllocations: map[string]*float64{
					"Savings": &alloc,
					"Café":    nil,
				},
				Formulas: map[string]*string{
					"remaining_cash":   nil,
					"fixed_balance":    nil,
					"savings_transfer": &formula,
				},
				BucketFormulas: map[string]*string{
					"Savings": &formula,
					"Café":    nil,
				},
			},
		},
		SourceRows: planner.RowSpan{Start: 1, End: 8},
		RefErrors:  []planner.RefError{},
	}
}

func TestEncode_Deterministic(t *testing.T) {
	months := []*planner.Month{sampleMonth()}

	first, err := Encode(months)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := Encode(months)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Encode() is not byte-identical across runs")
	}
}

func TestEncode_PreservesNonASCII(t *testing.T) {
	data, err := Encode([]*planner.Month{sampleMonth()})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !strings.Contains(string(data), "Café") {
		t.Errorf("output does not contain literal %q:\n%s", "Café", data)
	}
	if strings.Contains(string(data), `\u`) {
		t.Errorf("output contains escaped unicode:\n%s", data)
	}
}

func TestEncode_NullAndEmptyShapes(t *testing.T) {
	month := sampleMonth()
	month.InflowTotal = nil

	data, err := Encode([]*planner.Month{month})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := string(data)
	if !strings.Contains(out, `"inflow_total": null`) {
		t.Errorf("absent number should serialize as null:\n%s", out)
	}
	if !strings.Contains(out, `"ref_errors": []`) {
		t.Errorf("empty ref_errors should serialize as [], not null:\n%s", out)
	}
}

func TestEncode_NilMonths(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Encode(nil) = %q, want []", data)
	}
}

func TestValidate_AcceptsEncodedMonths(t *testing.T) {
	data, err := Encode([]*planner.Month{sampleMonth()})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_RejectsMissingMonthStart(t *testing.T) {
	doc := []byte(`[{"fixed_factor": null}]`)
	if err := Validate(doc); err == nil {
		t.Error("Validate() expected error for month without month_start")
	}
}

func TestValidate_RejectsBadDate(t *testing.T) {
	data, err := Encode([]*planner.Month{sampleMonth()})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	bad := bytes.Replace(data, []byte("2024-03-01"), []byte("March 2024"), 1)
	if err := Validate(bad); err == nil {
		t.Error("Validate() expected error for non-ISO month_start")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "seeds", "planned-expenses.json")
	months := []*planner.Month{sampleMonth()}

	if err := Write(months, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var decoded []planner.Month
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].MonthStart != "2024-03-01" {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}

	// A second export of the same input is byte-identical.
	encoded, err := Encode(months)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(data, encoded) {
		t.Error("written file differs from a fresh encode of the same months")
	}
}

func TestRefErrorCount(t *testing.T) {
	clean := sampleMonth()
	broken := sampleMonth()
	value := "#REF!"
	broken.RefErrors = []planner.RefError{
		{Cell: "F12", Value: &value},
		{Cell: "G9", Value: &value},
	}

	if got := RefErrorCount([]*planner.Month{clean, broken}); got != 2 {
		t.Errorf("RefErrorCount() = %d, want 2", got)
	}
	if got := RefErrorCount(nil); got != 0 {
		t.Errorf("RefErrorCount(nil) = %d, want 0", got)
	}
}
