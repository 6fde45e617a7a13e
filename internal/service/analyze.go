package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/store"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/workout"
)

// Result holds everything produced by one analysis run
type Result struct {
	RunID       string
	Workout     *workout.Workout
	Table       analysis.DriftTable
	Decision    analysis.Decision
	Diagnostics analysis.Diagnostics
}

// AnalyzeService runs the drift analysis for a workout and records the decision
type AnalyzeService struct {
	history store.History
	params  analysis.Params
	logger  *slog.Logger
	open    func(path string) (*workout.Workout, error)
}

// NewAnalyzeService creates a new analyze service
func NewAnalyzeService(history store.History, params analysis.Params, logger *slog.Logger) *AnalyzeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeService{
		history: history,
		params:  params,
		logger:  logger,
		open:    workout.Open,
	}
}

// Analyze reads the workout file at path, analyzes it and appends the decision
func (s *AnalyzeService) Analyze(path string) (*Result, error) {
	w, err := s.open(path)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeWorkout(w)
}

// AnalyzeWorkout analyzes an already loaded workout and appends the decision.
// Nothing is appended when the workout has no reliable bucket.
func (s *AnalyzeService) AnalyzeWorkout(w *workout.Workout) (*Result, error) {
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID, "source", w.Source)

	log.Info("analyzing workout",
		"date", w.Date,
		"duration_min", w.DurationMin,
		"samples", len(w.Samples),
	)

	table, err := analysis.EstimateDrift(w.Samples, s.params)
	if err != nil {
		return nil, fmt.Errorf("estimating drift: %w", err)
	}
	log.Debug("drift table estimated", "buckets", len(table))
	for _, b := range table.Buckets() {
		d := table[b]
		log.Debug("bucket drift",
			"bucket", b.String(),
			"drift_bpm", d.DriftBPM,
			"ci_width", d.CIWidth,
			"count", d.Count,
		)
	}

	diag := analysis.Diagnose(w.Samples)
	log.Debug("workout diagnostics",
		"decoupling_pct", diag.DecouplingPct,
		"efficiency_factor", diag.EfficiencyFactor,
		"steady_state_pct", diag.SteadyStatePct,
	)

	decision, err := analysis.Decide(table, w.DurationMin, w.Date)
	if errors.Is(err, analysis.ErrInsufficientData) {
		log.Warn("no speed bucket is reliable in both quarters", "samples", len(w.Samples))
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("generating decision: %w", err)
	}

	if err := s.history.Append(decision); err != nil {
		return nil, fmt.Errorf("saving decision: %w", err)
	}
	log.Info("decision recorded",
		"avg_drift_bpm", decision.AvgDriftBPM,
		"category", decision.FitnessCategory,
		"decision", decision.Action,
		"next_duration_min", decision.NextDurationMin,
	)

	return &Result{
		RunID:       runID,
		Workout:     w,
		Table:       table,
		Decision:    decision,
		Diagnostics: diag,
	}, nil
}

// History returns all recorded decisions, oldest first
func (s *AnalyzeService) History() ([]analysis.Decision, error) {
	decisions, err := s.history.List()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return decisions, nil
}
