package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

// singleBucket builds a table whose weighted drift is exactly drift
func singleBucket(drift float64) DriftTable {
	return DriftTable{10.0: {DriftBPM: drift, Count: 60}}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		drift    float64
		expected Category
	}{
		{-1, CategoryElite},
		{0, CategoryElite},
		{2.999, CategoryElite},
		{3.0, CategoryExcellent},
		{3.999, CategoryExcellent},
		{4.0, CategoryGood},
		{5.999, CategoryGood},
		{6.0, CategoryFair},
		{7.999, CategoryFair},
		{8.0, CategoryPoor},
		{15, CategoryPoor},
	}

	for _, tt := range tests {
		if got := Categorize(tt.drift); got != tt.expected {
			t.Errorf("Categorize(%v) = %v, want %v", tt.drift, got, tt.expected)
		}
	}
}

func TestDecideBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		drift        float64
		wantAction   Action
		wantNext     int
		wantCategory Category
	}{
		{"just below 3", 2.999, ActionExtendMuch, 70, CategoryElite},
		{"exactly 3", 3.0, ActionExtend, 65, CategoryExcellent},
		{"just above 3", 3.001, ActionExtend, 65, CategoryExcellent},
		{"just below 5", 4.999, ActionExtend, 65, CategoryGood},
		{"exactly 5", 5.0, ActionExtend, 65, CategoryGood},
		{"just above 5", 5.001, ActionMaintain, 60, CategoryGood},
		{"just below 8", 7.999, ActionMaintain, 60, CategoryFair},
		{"exactly 8", 8.0, ActionMaintain, 60, CategoryPoor},
		{"just above 8", 8.001, ActionReduce, 55, CategoryPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decide(singleBucket(tt.drift), 60, "2024-01-15")
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if d.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", d.Action, tt.wantAction)
			}
			if d.NextDurationMin != tt.wantNext {
				t.Errorf("NextDurationMin = %d, want %d", d.NextDurationMin, tt.wantNext)
			}
			if d.FitnessCategory != tt.wantCategory {
				t.Errorf("FitnessCategory = %q, want %q", d.FitnessCategory, tt.wantCategory)
			}
			if d.DurationMin != 60 {
				t.Errorf("DurationMin = %d, want 60", d.DurationMin)
			}
		})
	}
}

func TestDecideNotes(t *testing.T) {
	tests := []struct {
		drift    float64
		expected string
	}{
		{2.04, "Drift 2.0 bpm is super good. Ready to add 10 minutes."},
		{4.26, "Drift 4.3 bpm is good. Ready to add 5 minutes."},
		{6.5, "Drift 6.5 bpm. Keep building base at 90 min."},
		{9.94, "Drift 9.9 bpm is high. Drop to 85 min and rebuild."},
	}

	for _, tt := range tests {
		d, err := Decide(singleBucket(tt.drift), 90, "x")
		if err != nil {
			t.Fatalf("Decide() error = %v", err)
		}
		if d.Notes != tt.expected {
			t.Errorf("Notes = %q, want %q", d.Notes, tt.expected)
		}
	}
}

func TestWeightedDrift(t *testing.T) {
	table := DriftTable{
		9.5:  {DriftBPM: 2, Count: 100},
		10.0: {DriftBPM: 6, Count: 300},
		10.5: {DriftBPM: 4.5, Count: 52},
	}

	avg, err := WeightedDrift(table)
	if err != nil {
		t.Fatalf("WeightedDrift() error = %v", err)
	}

	want := (2*100 + 6*300 + 4.5*52) / 452.0
	if math.Abs(avg-want) > 1e-12 {
		t.Errorf("WeightedDrift() = %v, want %v", avg, want)
	}
	if avg < 2 || avg > 6 {
		t.Errorf("WeightedDrift() = %v, outside bucket range [2, 6]", avg)
	}
}

func TestDecideInsufficientData(t *testing.T) {
	tests := []struct {
		name  string
		table DriftTable
	}{
		{"nil table", nil},
		{"empty table", DriftTable{}},
		{"zero counts", DriftTable{10.0: {DriftBPM: 4, Count: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decide(tt.table, 60, "2024-01-15")
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Decide() error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestDecideRecord(t *testing.T) {
	table := DriftTable{
		10.5: {DriftBPM: 3.26, DriftPct: 0.02, CIWidth: 0.5, Count: 120},
		9.5:  {DriftBPM: 2.1, DriftPct: 0.015, CIWidth: 0.4, Count: 80},
	}

	d, err := Decide(table, 112, "15-01-2024")
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if d.Date != "15-01-2024" {
		t.Errorf("Date = %q, want passthrough", d.Date)
	}
	// (3.26*120 + 2.1*80) / 200 = 2.796
	if d.AvgDriftBPM != 2.8 {
		t.Errorf("AvgDriftBPM = %v, want 2.8", d.AvgDriftBPM)
	}
	if len(d.PacesAnalyzed) != 2 || d.PacesAnalyzed[0] != 9.5 || d.PacesAnalyzed[1] != 10.5 {
		t.Errorf("PacesAnalyzed = %v, want [9.5 10.5]", d.PacesAnalyzed)
	}
	if got := d.DriftDetails[10.5]; got.DriftBPM != 3.26 || got.Count != 120 {
		t.Errorf("DriftDetails[10.5] = %+v", got)
	}

	// Input table is left untouched
	if table[10.5].CIWidth != 0.5 || len(table) != 2 {
		t.Errorf("input table was modified: %v", table)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	for _, want := range []string{
		`"drift_details":{"10.5":{"drift_bpm":3.26,"count":120},"9.5":{"drift_bpm":2.1,"count":80}}`,
		`"paces_analyzed":[9.5,10.5]`,
		`"decision":"extend much"`,
		`"next_duration_min":122`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON %s missing %s", data, want)
		}
	}

	var back Decision
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back.DriftDetails[9.5].Count != 80 || back.PacesAnalyzed[1] != 10.5 {
		t.Errorf("decoded decision lost bucket data: %+v", back)
	}
}
