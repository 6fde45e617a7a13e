package analysis

import (
	"fmt"
	"math"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/workout"
)

// Drift is the heart-rate change at one speed bucket between the second
// (warmed-up) quarter and the final quarter of a workout
type Drift struct {
	DriftBPM float64 // late mean - warm mean
	DriftPct float64 // DriftBPM / warm mean, as a fraction
	CIWidth  float64 // root-sum-of-squares of both quarter widths
	Count    int     // samples from both quarters
}

// DriftTable maps each reliable speed bucket to its drift
type DriftTable map[Bucket]Drift

// Buckets returns the table's buckets in ascending order
func (t DriftTable) Buckets() []Bucket {
	buckets := make([]Bucket, 0, len(t))
	for b := range t {
		buckets = append(buckets, b)
	}
	sortBuckets(buckets)
	return buckets
}

// EstimateDrift computes per-bucket cardiac drift for an ordered workout.
//
// Only buckets that pass the reliability gate in both the second quarter
// [n/4, n/2) and the fourth quarter [3n/4, n) are kept. No minimum length is
// enforced: with fewer than four samples the quarters are empty and the
// table is empty.
func EstimateDrift(samples []workout.Sample, p Params) (DriftTable, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis parameters: %w", err)
	}

	warmLo, warmHi, lateLo, lateHi := quarterBounds(len(samples))
	warm := reliableStats(QuarterStats(samples, warmLo, warmHi, p), p)
	late := reliableStats(QuarterStats(samples, lateLo, lateHi, p), p)

	table := make(DriftTable)
	for b, w := range warm {
		l, ok := late[b]
		if !ok {
			continue
		}

		driftBPM := l.MeanHR - w.MeanHR
		table[b] = Drift{
			DriftBPM: driftBPM,
			DriftPct: driftBPM / w.MeanHR,
			CIWidth:  math.Hypot(w.CIWidth, l.CIWidth),
			Count:    w.Count + l.Count,
		}
	}

	return table, nil
}
