package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
)

func sampleTable() analysis.DriftTable {
	return analysis.DriftTable{
		10.0: {DriftBPM: 5, DriftPct: 5.0 / 140, CIWidth: 0.41, Count: 120},
		9.5:  {DriftBPM: 3.5, DriftPct: 3.5 / 138, CIWidth: 0.62, Count: 60},
	}
}

func TestRender(t *testing.T) {
	table := sampleTable()
	d, err := analysis.Decide(table, 60, "15-01-2024")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, table))
	out := buf.String()

	assert.Contains(t, out, "Details:")
	assert.Contains(t, out, "15-01-2024")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "+5.00 bpm")
	assert.Contains(t, out, "+3.6%")
	assert.Contains(t, out, "120")

	// Buckets are listed in ascending order
	assert.Less(t, strings.Index(out, "9.5 "), strings.Index(out, "10.0 "))

	// Notes follow the separator
	sep := strings.Index(out, Separator)
	require.GreaterOrEqual(t, sep, 0)
	assert.Greater(t, strings.Index(out, d.Notes), sep)
}

func TestRenderEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, analysis.Decision{Notes: "nothing"}, nil))
	assert.Contains(t, buf.String(), "No reliable speed buckets")
}

func TestRenderDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	diag := analysis.Diagnostics{DecouplingPct: 3.456, EfficiencyFactor: 1.2, SteadyStatePct: 92.4}
	require.NoError(t, RenderDiagnostics(&buf, diag))
	out := buf.String()

	assert.Contains(t, out, "Aerobic indicators")
	assert.Contains(t, out, "3.5%")
	assert.Contains(t, out, "1.20")
	assert.Contains(t, out, "92%")
}

func TestRenderHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderHistory(&buf, nil))
		assert.Contains(t, buf.String(), "No workouts recorded yet.")
	})

	t.Run("rows in order", func(t *testing.T) {
		decisions := []analysis.Decision{
			{Date: "01-01-2024", DurationMin: 60, AvgDriftBPM: 2.1, FitnessCategory: analysis.CategoryElite, Action: analysis.ActionExtendMuch, NextDurationMin: 70},
			{Date: "08-01-2024", DurationMin: 70, AvgDriftBPM: 9.4, FitnessCategory: analysis.CategoryPoor, Action: analysis.ActionReduce, NextDurationMin: 65},
		}

		var buf bytes.Buffer
		require.NoError(t, RenderHistory(&buf, decisions))
		out := buf.String()

		assert.Contains(t, out, "2.1 bpm")
		assert.Contains(t, out, "extend much")
		assert.Contains(t, out, "65 min")
		assert.Less(t, strings.Index(out, "01-01-2024"), strings.Index(out, "08-01-2024"))
	})
}
