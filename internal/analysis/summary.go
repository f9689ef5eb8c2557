package analysis

import (
	"math"
	"time"

	"hevy-insights/internal/workout"
)

// VolumeSummary holds the scalar volume totals over a collection.
type VolumeSummary struct {
	WorkoutCount      int
	TotalVolumeKg     float64
	AvgVolumeKg       float64 // per workout, rounded; 0 when no workouts
	TotalHours        float64
	TotalDurationMins int
}

// WorkoutStreakWeeks counts consecutive calendar weeks with at least
// one workout, walking backward from the week containing now and
// stopping at the first empty week.
func WorkoutStreakWeeks(workouts []workout.Record, now time.Time) int {
	trained := make(map[string]bool, len(workouts))
	for _, w := range workouts {
		trained[WeekKey(w.Start())] = true
	}

	streak := 0
	for week := WeekStart(now); trained[DayKey(week)]; week = week.AddDate(0, 0, -7) {
		streak++
	}
	return streak
}

// MostTrainedExercise returns the exercise id and display title with
// the highest count of exercise instances across the collection, with
// ties broken by first-encountered order. ok is false for a
// collection with no exercises.
func MostTrainedExercise(workouts []workout.Record) (id, title string, count int, ok bool) {
	counts := make(map[string]int)
	titles := make(map[string]string)
	var order []string

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			exID := workout.ExerciseID(ex.Title)
			if _, seen := counts[exID]; !seen {
				order = append(order, exID)
				titles[exID] = ex.Title
			}
			counts[exID]++
		}
	}

	for _, exID := range order {
		if counts[exID] > count {
			id, title, count = exID, titles[exID], counts[exID]
		}
	}
	return id, title, count, count > 0
}

// LongestWorkout returns the workout with the greatest duration in
// whole minutes, ties broken by first-encountered order.
func LongestWorkout(workouts []workout.Record) (workout.Record, bool) {
	var longest workout.Record
	found := false
	best := -1

	for _, w := range workouts {
		if d := w.DurationMinutes(); d > best {
			longest, best, found = w, d, true
		}
	}
	return longest, found
}

// MuscleGroupDistribution maps muscle group label to total set count
// across all exercises bearing that label, restricted to workouts
// within the trailing range.
func MuscleGroupDistribution(workouts []workout.Record, rng Range, now time.Time) map[string]int {
	cutoff := rng.Cutoff(now).Unix()

	dist := make(map[string]int)
	for _, w := range workouts {
		if w.StartTime < cutoff {
			continue
		}
		for _, ex := range w.Exercises {
			if len(ex.Sets) > 0 {
				dist[ex.MuscleGroupOrUnknown()] += len(ex.Sets)
			}
		}
	}
	return dist
}

// SummarizeVolume computes the scalar totals over the range-filtered
// collection. An empty selection yields all zeros.
func SummarizeVolume(workouts []workout.Record, rng Range, now time.Time) VolumeSummary {
	cutoff := rng.Cutoff(now).Unix()

	var s VolumeSummary
	for _, w := range workouts {
		if w.StartTime < cutoff {
			continue
		}
		s.WorkoutCount++
		s.TotalVolumeKg += w.EstimatedVolumeKg
		s.TotalDurationMins += w.DurationMinutes()
	}

	if s.WorkoutCount > 0 {
		s.AvgVolumeKg = math.Round(s.TotalVolumeKg / float64(s.WorkoutCount))
	}
	s.TotalHours = float64(s.TotalDurationMins) / 60
	return s
}
