package service

import (
	"context"
	"testing"
	"time"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/repo"
	"hevy-insights/internal/workout"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 20, 12, 0, 0, 0, time.Local)
}

func testWorkouts() []workout.Record {
	day := func(daysAgo int) time.Time { return fixedNow().AddDate(0, 0, -daysAgo) }
	rec := func(id string, start time.Time, mins int, volume float64, exs ...workout.ExerciseInstance) workout.Record {
		return workout.Record{
			ID:                id,
			StartTime:         start.Unix(),
			EndTime:           start.Add(time.Duration(mins) * time.Minute).Unix(),
			EstimatedVolumeKg: volume,
			Exercises:         exs,
		}
	}
	bench := func(weight, reps float64) workout.ExerciseInstance {
		return workout.ExerciseInstance{
			Title:       "Bench Press",
			MuscleGroup: "Chest",
			Sets:        []workout.SetRecord{{WeightKg: weight, Reps: reps}},
		}
	}

	return []workout.Record{
		rec("w1", day(25), 60, 1000, bench(100, 5)),
		rec("w2", day(20), 45, 1100, bench(100, 5)),
		rec("w3", day(15), 50, 1200, bench(103, 5)),
		rec("w4", day(10), 55, 1300, bench(103, 5)),
		rec("w5", day(3), 65, 1400, bench(103, 5)),
	}
}

func newTestQueryService(records []workout.Record) *QueryService {
	q := NewQueryService(repo.NewImported(records))
	q.now = fixedNow
	return q
}

func TestDashboard(t *testing.T) {
	q := newTestQueryService(testWorkouts())

	data, err := q.Dashboard(context.Background(), analysis.Range3Months, analysis.GranularityWeek)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if data.WorkoutCount != 5 {
		t.Errorf("WorkoutCount = %d, want 5", data.WorkoutCount)
	}
	if data.TotalVolumeKg != 6000 {
		t.Errorf("TotalVolumeKg = %v, want 6000", data.TotalVolumeKg)
	}
	if data.AvgVolumeKg != 1200 {
		t.Errorf("AvgVolumeKg = %v, want 1200", data.AvgVolumeKg)
	}
	if data.MostTrainedTitle != "Bench Press" || data.MostTrainedCount != 5 {
		t.Errorf("most trained = %q x%d", data.MostTrainedTitle, data.MostTrainedCount)
	}
	if !data.HasLongest || data.LongestWorkout.ID != "w5" {
		t.Errorf("longest = %q, %v, want w5", data.LongestWorkout.ID, data.HasLongest)
	}
	if len(data.MuscleGroups) != 1 || data.MuscleGroups[0].Label != "Chest" || data.MuscleGroups[0].Sets != 5 {
		t.Errorf("MuscleGroups = %+v", data.MuscleGroups)
	}
	if len(data.Buckets) == 0 || len(data.VolumeSeries) != len(data.Buckets) || len(data.PeriodLabels) != len(data.Buckets) {
		t.Errorf("chart series misaligned: %d buckets, %d points, %d labels",
			len(data.Buckets), len(data.VolumeSeries), len(data.PeriodLabels))
	}
	for _, label := range data.PeriodLabels {
		if label == "" || label[0] != 'W' {
			t.Errorf("week label = %q, want W<n>", label)
		}
	}
}

func TestDashboardEmptyCollection(t *testing.T) {
	q := newTestQueryService(nil)

	data, err := q.Dashboard(context.Background(), analysis.RangeAll, analysis.GranularityWeek)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if data.WorkoutCount != 0 || data.TotalVolumeKg != 0 || data.AvgVolumeKg != 0 {
		t.Errorf("totals = %+v, want zeros", data)
	}
	if data.StreakWeeks != 0 || data.MostTrainedTitle != "" || data.HasLongest {
		t.Error("scalar summaries should be absent/zero for an empty collection")
	}
	if len(data.Buckets) != 0 {
		t.Errorf("got %d buckets, want 0", len(data.Buckets))
	}
}

func TestExercisesListAndDetail(t *testing.T) {
	q := newTestQueryService(testWorkouts())
	ctx := context.Background()

	list, err := q.Exercises(ctx)
	if err != nil {
		t.Fatalf("Exercises: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d exercises, want 1", len(list))
	}

	bench := list[0]
	if bench.ExerciseID != "bench-press" || bench.TotalSessions != 5 {
		t.Errorf("summary = %+v", bench)
	}
	if bench.BestWeightKg != 103 {
		t.Errorf("BestWeightKg = %v, want 103", bench.BestWeightKg)
	}
	if bench.Trend.Type != analysis.TrendGaining {
		t.Errorf("Trend = %q, want gaining", bench.Trend.Type)
	}

	detail, ok, err := q.ExerciseDetail(ctx, "bench-press")
	if err != nil || !ok {
		t.Fatalf("ExerciseDetail: ok=%v err=%v", ok, err)
	}
	if len(detail.MaxWeightSeries) != 5 || len(detail.SeriesDays) != 5 {
		t.Fatalf("series lengths = %d, %d, want 5, 5", len(detail.MaxWeightSeries), len(detail.SeriesDays))
	}
	// Chronological: first session at 100, last at 103.
	if detail.MaxWeightSeries[0] != 100 || detail.MaxWeightSeries[4] != 103 {
		t.Errorf("MaxWeightSeries = %v", detail.MaxWeightSeries)
	}

	if _, ok, err := q.ExerciseDetail(ctx, "no-such-exercise"); err != nil || ok {
		t.Errorf("unknown exercise: ok=%v err=%v, want false, nil", ok, err)
	}
}
