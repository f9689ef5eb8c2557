package analysis

import (
	"sort"

	"hevy-insights/internal/workout"
)

// DayStats aggregates one exercise's sets on one calendar day.
type DayStats struct {
	MaxWeight       float64
	RepsAtMaxWeight float64
	Volume          float64
	SetCount        int
	AvgVolumePerSet float64
}

// TopSet is one of an exercise's heaviest sets across all history.
type TopSet struct {
	Day      string
	WeightKg float64
	Reps     float64
}

// ExerciseAggregate is the full per-exercise view over the workout
// collection: daily aggregates keyed by YYYY-MM-DD, the heaviest sets,
// and deduplicated personal records. It is rebuilt in full whenever
// the underlying collection changes, never patched.
type ExerciseAggregate struct {
	ExerciseID string
	Title      string // first-seen display title
	VideoURL   string
	ByDay      map[string]DayStats
	// TotalSessions is the number of distinct days in ByDay.
	TotalSessions int
	// TopSets holds the topSetCount heaviest sets, ties resolved by
	// encounter order.
	TopSets []TopSet
	// DistinctPRs maps PR type to the highest numeric value seen for
	// that type across all sets.
	DistinctPRs map[string]float64
	// LastTrainedDate is the maximum day key in ByDay, or "" when the
	// exercise has no recorded sets.
	LastTrainedDate string
}

const topSetCount = 3

// BuildHistory reshapes the workout collection into one aggregate per
// distinct exercise id in a single full pass. Structurally valid but
// sparse input (no exercises, exercises with no sets) produces empty
// aggregates rather than errors.
func BuildHistory(workouts []workout.Record) map[string]*ExerciseAggregate {
	aggs := make(map[string]*ExerciseAggregate)
	candidates := make(map[string][]TopSet)

	for _, w := range workouts {
		day := DayKey(w.Start())

		for _, ex := range w.Exercises {
			id := workout.ExerciseID(ex.Title)

			agg := aggs[id]
			if agg == nil {
				agg = &ExerciseAggregate{
					ExerciseID:  id,
					Title:       ex.Title,
					VideoURL:    ex.VideoURL,
					ByDay:       make(map[string]DayStats),
					DistinctPRs: make(map[string]float64),
				}
				aggs[id] = agg
			}
			if agg.VideoURL == "" {
				agg.VideoURL = ex.VideoURL
			}

			for _, set := range ex.Sets {
				stats := agg.ByDay[day]

				if set.WeightKg > stats.MaxWeight || stats.SetCount == 0 {
					stats.MaxWeight = set.WeightKg
					stats.RepsAtMaxWeight = set.Reps
				} else if set.WeightKg == stats.MaxWeight && set.Reps > stats.RepsAtMaxWeight {
					// Same best weight: keep the best reps at it.
					stats.RepsAtMaxWeight = set.Reps
				}
				stats.Volume += set.WeightKg * set.Reps
				stats.SetCount++
				stats.AvgVolumePerSet = stats.Volume / float64(stats.SetCount)
				agg.ByDay[day] = stats

				candidates[id] = append(candidates[id], TopSet{Day: day, WeightKg: set.WeightKg, Reps: set.Reps})

				for _, pr := range set.PersonalRecords {
					value, _ := pr.Value.Float()
					if best, seen := agg.DistinctPRs[pr.Type]; !seen || value > best {
						agg.DistinctPRs[pr.Type] = value
					}
				}
			}
		}
	}

	for id, agg := range aggs {
		agg.TotalSessions = len(agg.ByDay)
		agg.TopSets = topSets(candidates[id])
		for day := range agg.ByDay {
			if day > agg.LastTrainedDate {
				agg.LastTrainedDate = day
			}
		}
	}

	return aggs
}

// topSets returns the heaviest sets in descending weight order. A
// stable sort keeps earlier-encountered sets ahead on equal weight.
func topSets(sets []TopSet) []TopSet {
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].WeightKg > sets[j].WeightKg })
	if len(sets) > topSetCount {
		sets = sets[:topSetCount]
	}
	return sets
}
