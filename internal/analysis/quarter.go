package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/workout"
)

// QuarterStat is the heart-rate estimate for one speed bucket within one quarter
type QuarterStat struct {
	MeanHR  float64
	Count   int
	StdDev  float64 // sample standard deviation (n-1)
	CIWidth float64 // full width of the confidence interval for MeanHR
}

// Reliable reports whether the estimate passes the reliability gate
func (q QuarterStat) Reliable(p Params) bool {
	return q.CIWidth < p.MaxCIWidth && q.Count > p.MinCount
}

// quarterBounds returns the index ranges of the second and fourth quarters.
// Boundaries use integer division over the full sample count.
func quarterBounds(n int) (warmLo, warmHi, lateLo, lateHi int) {
	return n / 4, n / 2, 3 * n / 4, n
}

// QuarterStats groups samples[lo:hi] by speed bucket and estimates the mean
// heart rate of each bucket. Samples with a missing or non-finite value are
// skipped. Buckets with fewer than two samples have no defined standard
// deviation and are left out of the result.
func QuarterStats(samples []workout.Sample, lo, hi int, p Params) map[Bucket]QuarterStat {
	groups := make(map[Bucket][]float64)
	for _, s := range samples[lo:hi] {
		if !s.Valid() || math.IsInf(s.Speed, 0) || math.IsInf(s.HeartRate, 0) {
			continue
		}
		b := BucketOf(s.Speed, p.BucketWidth)
		groups[b] = append(groups[b], s.HeartRate)
	}

	stats := make(map[Bucket]QuarterStat, len(groups))
	for b, hrs := range groups {
		n := len(hrs)
		if n < 2 {
			continue
		}

		mean, sd := stat.MeanStdDev(hrs, nil)
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - (1-p.Confidence)/2)
		halfWidth := t * sd / math.Sqrt(float64(n))

		stats[b] = QuarterStat{
			MeanHR:  mean,
			Count:   n,
			StdDev:  sd,
			CIWidth: 2 * halfWidth,
		}
	}

	return stats
}

// reliableStats drops the buckets that fail the reliability gate
func reliableStats(stats map[Bucket]QuarterStat, p Params) map[Bucket]QuarterStat {
	kept := make(map[Bucket]QuarterStat, len(stats))
	for b, q := range stats {
		if q.Reliable(p) {
			kept[b] = q
		}
	}
	return kept
}
