package analysis

import (
	"math"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/workout"
)

// Sample filters for the whole-run diagnostics
const (
	minMovingSpeedKmh    = 1.8 // 0.5 m/s
	minPlausibleHR       = 80
	maxPlausibleHR       = 220
	minDecouplingSamples = 120 // 2 minutes at 1 Hz
	steadyTolerance      = 0.1
)

// Diagnostics are whole-run aerobic indicators shown next to the drift table.
// They are informational and do not influence the decision.
type Diagnostics struct {
	DecouplingPct    float64 // Pa:HR drift of the second half against the first
	EfficiencyFactor float64 // metres per minute per beat
	SteadyStatePct   float64 // share of samples within 10% of the average moving speed
}

// Diagnose computes the diagnostics of an ordered workout
func Diagnose(samples []workout.Sample) Diagnostics {
	return Diagnostics{
		DecouplingPct:    AerobicDecoupling(samples),
		EfficiencyFactor: EfficiencyFactor(samples),
		SteadyStatePct:   SteadyStatePct(samples),
	}
}

// AerobicDecoupling calculates the pace:HR drift between first and second half
// Returns percentage - positive means second half was less efficient
// < 5% on long runs indicates good aerobic base
func AerobicDecoupling(samples []workout.Sample) float64 {
	if len(samples) < minDecouplingSamples {
		return 0
	}

	mid := len(samples) / 2
	firstEF := EfficiencyFactor(samples[:mid])
	secondEF := EfficiencyFactor(samples[mid:])

	if firstEF == 0 || secondEF == 0 {
		return 0
	}

	// ((first / second) - 1) * 100
	return ((firstEF / secondEF) - 1) * 100
}

// EfficiencyFactor returns average speed in m/min over average HR.
// Typical values range from 1.0 to 2.0, higher is better.
func EfficiencyFactor(samples []workout.Sample) float64 {
	var totalSpeed, totalHR float64
	var count int

	for _, s := range samples {
		if !moving(s) {
			continue
		}
		totalSpeed += s.Speed
		totalHR += s.HeartRate
		count++
	}

	if count == 0 {
		return 0
	}

	metresPerMin := (totalSpeed / float64(count)) * 1000 / 60
	return metresPerMin / (totalHR / float64(count))
}

// SteadyStatePct calculates what percentage of the run was at steady effort
// (speed within 10% of the average moving speed)
func SteadyStatePct(samples []workout.Sample) float64 {
	var totalSpeed float64
	var moved int
	for _, s := range samples {
		if !math.IsNaN(s.Speed) && s.Speed > minMovingSpeedKmh {
			totalSpeed += s.Speed
			moved++
		}
	}
	if moved == 0 {
		return 0
	}
	avgSpeed := totalSpeed / float64(moved)

	steadyCount := 0
	validCount := 0
	for _, s := range samples {
		if math.IsNaN(s.Speed) {
			continue
		}
		validCount++

		ratio := s.Speed / avgSpeed
		if ratio > 1-steadyTolerance && ratio < 1+steadyTolerance {
			steadyCount++
		}
	}

	return float64(steadyCount) / float64(validCount) * 100
}

// moving filters out stops and implausible heart rates
func moving(s workout.Sample) bool {
	return s.Valid() &&
		s.Speed > minMovingSpeedKmh &&
		s.HeartRate > minPlausibleHR &&
		s.HeartRate < maxPlausibleHR
}
