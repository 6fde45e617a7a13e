package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData is returned when no speed bucket is reliable in both quarters
var ErrInsufficientData = errors.New("insufficient reliable data: no speed bucket is reliable in both the second and final quarter")

// Category is the fitness classification of a workout's drift
type Category string

const (
	CategoryElite     Category = "Elite"
	CategoryExcellent Category = "Excellent"
	CategoryGood      Category = "Good"
	CategoryFair      Category = "Fair"
	CategoryPoor      Category = "Poor"
)

// Action is the duration progression recommended for the next workout
type Action string

const (
	ActionExtendMuch Action = "extend much"
	ActionExtend     Action = "extend"
	ActionMaintain   Action = "maintain"
	ActionReduce     Action = "reduce"
)

// BucketDetail is the per-bucket drift kept in a decision
type BucketDetail struct {
	DriftBPM float64 `json:"drift_bpm"`
	Count    int     `json:"count"`
}

// Decision is the recommendation produced for one workout
type Decision struct {
	Date            string                  `json:"date"`
	DurationMin     int                     `json:"duration_min"`
	AvgDriftBPM     float64                 `json:"avg_drift_bpm"`
	DriftDetails    map[Bucket]BucketDetail `json:"drift_details"`
	FitnessCategory Category                `json:"fitness_category"`
	Action          Action                  `json:"decision"`
	NextDurationMin int                     `json:"next_duration_min"`
	PacesAnalyzed   []Bucket                `json:"paces_analyzed"`
	Notes           string                  `json:"notes"`
}

// WeightedDrift returns the sample-count-weighted mean drift of the table
func WeightedDrift(t DriftTable) (float64, error) {
	var sum float64
	var total int
	for _, d := range t {
		sum += d.DriftBPM * float64(d.Count)
		total += d.Count
	}
	if total == 0 {
		return 0, ErrInsufficientData
	}
	return sum / float64(total), nil
}

// Categorize maps a drift onto a fitness category
func Categorize(drift float64) Category {
	switch {
	case drift < EliteDriftMax:
		return CategoryElite
	case drift < ExcellentDriftMax:
		return CategoryExcellent
	case drift < GoodDriftMax:
		return CategoryGood
	case drift < FairDriftMax:
		return CategoryFair
	default:
		return CategoryPoor
	}
}

// Progression returns the action and next duration for a drift.
// Its bounds are independent of Categorize.
func Progression(drift float64, durationMin int) (Action, int) {
	switch {
	case drift < ExtendMuchDriftMax:
		return ActionExtendMuch, durationMin + ExtendMuchMinutes
	case drift <= ExtendDriftMax:
		return ActionExtend, durationMin + ExtendMinutes
	case drift <= MaintainDriftMax:
		return ActionMaintain, durationMin
	default:
		return ActionReduce, durationMin - ReduceMinutes
	}
}

// progressionNote explains an action in one line
func progressionNote(action Action, drift float64, durationMin, nextMin int) string {
	switch action {
	case ActionExtendMuch:
		return fmt.Sprintf("Drift %.1f bpm is super good. Ready to add %d minutes.", drift, ExtendMuchMinutes)
	case ActionExtend:
		return fmt.Sprintf("Drift %.1f bpm is good. Ready to add %d minutes.", drift, ExtendMinutes)
	case ActionMaintain:
		return fmt.Sprintf("Drift %.1f bpm. Keep building base at %d min.", drift, durationMin)
	default:
		return fmt.Sprintf("Drift %.1f bpm is high. Drop to %d min and rebuild.", drift, nextMin)
	}
}

// Decide turns a drift table into a duration recommendation.
// An empty table yields ErrInsufficientData rather than a decision.
func Decide(t DriftTable, durationMin int, date string) (Decision, error) {
	avg, err := WeightedDrift(t)
	if err != nil {
		return Decision{}, err
	}

	action, next := Progression(avg, durationMin)

	details := make(map[Bucket]BucketDetail, len(t))
	for b, d := range t {
		details[b] = BucketDetail{DriftBPM: d.DriftBPM, Count: d.Count}
	}

	return Decision{
		Date:            date,
		DurationMin:     durationMin,
		AvgDriftBPM:     roundTo(avg, 1),
		DriftDetails:    details,
		FitnessCategory: Categorize(avg),
		Action:          action,
		NextDurationMin: next,
		PacesAnalyzed:   t.Buckets(),
		Notes:           progressionNote(action, avg, durationMin, next),
	}, nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
