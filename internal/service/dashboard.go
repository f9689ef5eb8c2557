package service

import (
	"context"
	"fmt"
	"sort"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/workout"
)

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Range       analysis.Range
	Granularity analysis.Granularity

	// Totals over the selected range
	WorkoutCount  int
	TotalVolumeKg float64
	AvgVolumeKg   float64
	TotalHours    float64

	// All-time scalars
	StreakWeeks      int
	MostTrainedTitle string
	MostTrainedCount int
	LongestWorkout   workout.Record
	HasLongest       bool

	// Muscle balance over the selected range
	MuscleGroups []MuscleGroupShare

	// Chart series: one point per period bucket, oldest first
	Buckets      []analysis.PeriodBucket
	VolumeSeries []float64
	PeriodLabels []string
}

// MuscleGroupShare is one muscle group's slice of the set count.
type MuscleGroupShare struct {
	Label string
	Sets  int
}

// Dashboard derives all dashboard data for the given range and
// granularity from the current workout collection.
func (q *QueryService) Dashboard(ctx context.Context, rng analysis.Range, gran analysis.Granularity) (*DashboardData, error) {
	workouts, err := q.repo.FetchWorkouts(ctx, false)
	if err != nil {
		return nil, err
	}

	now := q.now()
	data := &DashboardData{Range: rng, Granularity: gran}

	volume := analysis.SummarizeVolume(workouts, rng, now)
	data.WorkoutCount = volume.WorkoutCount
	data.TotalVolumeKg = volume.TotalVolumeKg
	data.AvgVolumeKg = volume.AvgVolumeKg
	data.TotalHours = volume.TotalHours

	data.StreakWeeks = analysis.WorkoutStreakWeeks(workouts, now)
	if _, title, count, ok := analysis.MostTrainedExercise(workouts); ok {
		data.MostTrainedTitle = title
		data.MostTrainedCount = count
	}
	data.LongestWorkout, data.HasLongest = analysis.LongestWorkout(workouts)

	dist := analysis.MuscleGroupDistribution(workouts, rng, now)
	for label, sets := range dist {
		data.MuscleGroups = append(data.MuscleGroups, MuscleGroupShare{Label: label, Sets: sets})
	}
	sort.Slice(data.MuscleGroups, func(i, j int) bool {
		if data.MuscleGroups[i].Sets != data.MuscleGroups[j].Sets {
			return data.MuscleGroups[i].Sets > data.MuscleGroups[j].Sets
		}
		return data.MuscleGroups[i].Label < data.MuscleGroups[j].Label
	})

	data.Buckets = analysis.AggregatePeriods(workouts, rng, gran, now)
	data.VolumeSeries = make([]float64, len(data.Buckets))
	data.PeriodLabels = make([]string, len(data.Buckets))
	for i, b := range data.Buckets {
		data.VolumeSeries[i] = b.VolumeKg
		data.PeriodLabels[i] = periodLabel(b.PeriodKey, gran)
	}

	return data, nil
}

// periodLabel renders a bucket key for display: "W24" for weeks,
// "2024-06" as-is for months. Pure presentation over the key.
func periodLabel(periodKey string, gran analysis.Granularity) string {
	if gran == analysis.GranularityMonth {
		return periodKey
	}
	start, err := analysis.ParseDayKey(periodKey)
	if err != nil {
		return periodKey
	}
	return fmt.Sprintf("W%d", analysis.ISOWeekNumber(start))
}
