package analysis

import (
	"sort"
	"time"

	"hevy-insights/internal/workout"
)

// Granularity selects the width of a period bucket.
type Granularity int

const (
	GranularityWeek Granularity = iota
	GranularityMonth
)

// ParseGranularity maps a config name to its Granularity; anything
// other than "month" means weekly.
func ParseGranularity(s string) Granularity {
	if s == "month" {
		return GranularityMonth
	}
	return GranularityWeek
}

// String returns the granularity name used in config and display.
func (g Granularity) String() string {
	if g == GranularityMonth {
		return "month"
	}
	return "week"
}

// PeriodBucket aggregates all workouts whose start time falls in one
// period. PeriodKey is the Monday-anchored week-start date
// (YYYY-MM-DD) or the month (YYYY-MM); both formats are zero-padded,
// so ascending string order is ascending time order.
type PeriodBucket struct {
	PeriodKey       string
	DurationMinutes int
	VolumeKg        float64
	Reps            float64
	Sets            int
	WorkoutCount    int
	PRCount         int
}

// AggregatePeriods buckets workouts within the trailing range into
// week or month periods. Buckets exist only for periods containing at
// least one workout and are returned ascending by period key.
func AggregatePeriods(workouts []workout.Record, rng Range, gran Granularity, now time.Time) []PeriodBucket {
	cutoff := rng.Cutoff(now).Unix()

	buckets := make(map[string]*PeriodBucket)
	for _, w := range workouts {
		if w.StartTime < cutoff {
			continue
		}

		key := periodKey(w.Start(), gran)
		b := buckets[key]
		if b == nil {
			b = &PeriodBucket{PeriodKey: key}
			buckets[key] = b
		}

		b.WorkoutCount++
		b.DurationMinutes += w.DurationMinutes()
		b.VolumeKg += w.EstimatedVolumeKg
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				b.Sets++
				b.Reps += set.Reps
				b.PRCount += len(set.PersonalRecords)
			}
		}
	}

	out := make([]PeriodBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodKey < out[j].PeriodKey })
	return out
}

func periodKey(t time.Time, gran Granularity) string {
	if gran == GranularityMonth {
		return MonthKey(t)
	}
	return WeekKey(t)
}
