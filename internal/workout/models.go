package workout

import "math"

// Sample represents a single recorded instant of a workout
type Sample struct {
	HeartRate float64 // bpm, NaN when the cell was empty
	Speed     float64 // km/h, NaN when the cell was empty
}

// Valid reports whether both heart rate and speed were recorded
func (s Sample) Valid() bool {
	return !math.IsNaN(s.HeartRate) && !math.IsNaN(s.Speed)
}

// Workout is one recorded session with its summary attributes.
// Samples keep their original order; rows with missing values stay in place
// so that quarter boundaries are computed over the full recording.
type Workout struct {
	Date        string // opaque label, passed through unchanged
	DurationMin int
	Samples     []Sample
	Source      string
}
