package workout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/tormoder/fit"
)

// ErrNoRecords is returned when a FIT activity carries no record messages
var ErrNoRecords = errors.New("activity file has no record messages")

// metersPerSecondToKmh converts FIT speeds (m/s) to km/h
const metersPerSecondToKmh = 3.6

// ReadFIT decodes a FIT activity file into a Workout.
// Records are ordered by timestamp; missing heart rate or speed become NaN.
func ReadFIT(r io.Reader) (*Workout, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}

	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}

	records := make([]*fit.RecordMsg, 0, len(activity.Records))
	for _, rec := range activity.Records {
		if rec != nil {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})

	w := &Workout{
		Samples: make([]Sample, 0, len(records)),
	}
	for _, rec := range records {
		w.Samples = append(w.Samples, Sample{
			HeartRate: recordHeartRate(rec),
			Speed:     recordSpeed(rec),
		})
	}

	start := records[0].Timestamp
	elapsed := records[len(records)-1].Timestamp.Sub(start)
	if len(activity.Sessions) > 0 && activity.Sessions[0] != nil {
		session := activity.Sessions[0]
		if t := session.StartTime; !t.IsZero() && !fit.IsBaseTime(t) {
			start = t
		}
		if secs := session.GetTotalTimerTimeScaled(); !math.IsNaN(secs) && secs > 0 {
			elapsed = time.Duration(secs * float64(time.Second))
		}
	}
	w.Date = start.Format("2006-01-02")
	w.DurationMin = int(elapsed / time.Minute)

	return w, nil
}

func recordHeartRate(rec *fit.RecordMsg) float64 {
	if rec.HeartRate == math.MaxUint8 {
		return math.NaN()
	}
	return float64(rec.HeartRate)
}

func recordSpeed(rec *fit.RecordMsg) float64 {
	speed := rec.GetEnhancedSpeedScaled()
	if isFinite(speed) && speed >= 0 {
		return speed * metersPerSecondToKmh
	}
	speed = rec.GetSpeedScaled()
	if isFinite(speed) && speed >= 0 {
		return speed * metersPerSecondToKmh
	}
	return math.NaN()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
