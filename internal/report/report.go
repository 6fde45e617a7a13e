package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
)

// Separator divides the details block from the notes
const Separator = "===================================================="

const (
	bucketRowFormat  = "  %-8s  %10s  %8s  %9s  %6s"
	historyRowFormat = "  %-12s  %8s  %10s  %-10s  %-12s  %8s"
)

// Render writes the details of a decision, the per-bucket drift table,
// a separator line and the decision notes
func Render(w io.Writer, d analysis.Decision, table analysis.DriftTable) error {
	s := newStyles(lipgloss.NewRenderer(w))

	var lines []string
	lines = append(lines, s.title.Render("Details:"))
	lines = append(lines, s.metric("Date", d.Date))
	lines = append(lines, s.metric("Duration", fmt.Sprintf("%d min", d.DurationMin)))
	lines = append(lines, s.metric("Average drift", fmt.Sprintf("%.1f bpm", d.AvgDriftBPM)))
	lines = append(lines, s.metric("Fitness category", s.categoryStyle(string(d.FitnessCategory)).Render(string(d.FitnessCategory))))
	lines = append(lines, s.metric("Decision", string(d.Action)))
	lines = append(lines, s.metric("Next duration", fmt.Sprintf("%d min", d.NextDurationMin)))
	lines = append(lines, "")

	lines = append(lines, sectionHeader(s, "Drift by speed"))
	lines = append(lines, s.header.Render(fmt.Sprintf(bucketRowFormat, "km/h", "Drift", "Drift %", "CI width", "Count")))
	for _, b := range table.Buckets() {
		lines = append(lines, s.row.Render(formatBucketRow(b, table[b])))
	}
	if len(table) == 0 {
		lines = append(lines, s.muted.Render("  No reliable speed buckets"))
	}

	lines = append(lines, s.separator.Render(Separator))
	lines = append(lines, s.notes.Render(d.Notes))

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderDiagnostics writes the whole-run aerobic indicators
func RenderDiagnostics(w io.Writer, diag analysis.Diagnostics) error {
	s := newStyles(lipgloss.NewRenderer(w))

	lines := []string{
		sectionHeader(s, "Aerobic indicators"),
		s.metric("Decoupling (Pa:HR)", fmt.Sprintf("%.1f%%", diag.DecouplingPct)),
		s.metric("Efficiency factor", fmt.Sprintf("%.2f", diag.EfficiencyFactor)),
		s.metric("Steady state", fmt.Sprintf("%.0f%%", diag.SteadyStatePct)),
		"",
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderHistory writes one row per recorded decision, oldest first
func RenderHistory(w io.Writer, decisions []analysis.Decision) error {
	s := newStyles(lipgloss.NewRenderer(w))

	if len(decisions) == 0 {
		_, err := fmt.Fprintln(w, s.muted.Render("No workouts recorded yet."))
		return err
	}

	var lines []string
	lines = append(lines, sectionHeader(s, "Workout history"))
	lines = append(lines, s.header.Render(fmt.Sprintf(historyRowFormat, "Date", "Duration", "Drift", "Category", "Decision", "Next")))
	for _, d := range decisions {
		lines = append(lines, s.row.Render(formatHistoryRow(d)))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func sectionHeader(s styles, title string) string {
	dividerLen := 60 - len([]rune(title)) - 4
	if dividerLen < 0 {
		dividerLen = 0
	}
	return s.section.Render(fmt.Sprintf("── %s %s", title, strings.Repeat("─", dividerLen)))
}

func formatBucketRow(b analysis.Bucket, d analysis.Drift) string {
	return fmt.Sprintf(bucketRowFormat,
		b.String(),
		fmt.Sprintf("%+.2f bpm", d.DriftBPM),
		fmt.Sprintf("%+.1f%%", d.DriftPct*100),
		fmt.Sprintf("%.2f", d.CIWidth),
		fmt.Sprintf("%d", d.Count),
	)
}

func formatHistoryRow(d analysis.Decision) string {
	return fmt.Sprintf(historyRowFormat,
		d.Date,
		fmt.Sprintf("%d min", d.DurationMin),
		fmt.Sprintf("%.1f bpm", d.AvgDriftBPM),
		string(d.FitnessCategory),
		string(d.Action),
		fmt.Sprintf("%d min", d.NextDurationMin),
	)
}
