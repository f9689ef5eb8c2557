package analysis

import (
	"testing"
	"time"

	"hevy-insights/internal/workout"
)

// wk builds a workout with the given start, duration, and volume.
func wk(id string, start time.Time, duration time.Duration, volumeKg float64, exercises ...workout.ExerciseInstance) workout.Record {
	return workout.Record{
		ID:                id,
		StartTime:         start.Unix(),
		EndTime:           start.Add(duration).Unix(),
		EstimatedVolumeKg: volumeKg,
		Exercises:         exercises,
	}
}

func ex(title, muscle string, sets ...workout.SetRecord) workout.ExerciseInstance {
	return workout.ExerciseInstance{Title: title, MuscleGroup: muscle, Sets: sets}
}

func set(weight, reps float64, prs ...workout.PersonalRecord) workout.SetRecord {
	return workout.SetRecord{WeightKg: weight, Reps: reps, PersonalRecords: prs}
}

func TestAggregatePeriodsTwoWeeklyBuckets(t *testing.T) {
	now := date(2024, time.June, 20)
	t0 := date(2024, time.June, 3) // Monday
	workouts := []workout.Record{
		wk("a", t0, time.Hour, 1000),
		wk("b", t0.AddDate(0, 0, 7), 30*time.Minute, 500),
	}

	buckets := AggregatePeriods(workouts, Range1Month, GranularityWeek, now)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}

	first, second := buckets[0], buckets[1]
	if first.PeriodKey != "2024-06-03" || second.PeriodKey != "2024-06-10" {
		t.Errorf("period keys = %q, %q", first.PeriodKey, second.PeriodKey)
	}
	if first.WorkoutCount != 1 || second.WorkoutCount != 1 {
		t.Errorf("workout counts = %d, %d, want 1, 1", first.WorkoutCount, second.WorkoutCount)
	}
	if first.VolumeKg != 1000 || first.DurationMinutes != 60 {
		t.Errorf("first bucket = %+v", first)
	}
	if second.VolumeKg != 500 || second.DurationMinutes != 30 {
		t.Errorf("second bucket = %+v", second)
	}
}

func TestAggregatePeriodsSumsSetsRepsAndPRs(t *testing.T) {
	now := date(2024, time.June, 20)
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 18), time.Hour, 0,
			ex("Bench Press", "Chest",
				set(80, 8, workout.PersonalRecord{Type: "best_weight", Value: workout.NumberPR(80)}),
				set(80, 6),
			),
			ex("Squat", "Legs", set(100, 5)),
		),
	}

	buckets := AggregatePeriods(workouts, Range1Month, GranularityMonth, now)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}

	b := buckets[0]
	if b.PeriodKey != "2024-06" {
		t.Errorf("period key = %q, want 2024-06", b.PeriodKey)
	}
	if b.Sets != 3 || b.Reps != 19 || b.PRCount != 1 {
		t.Errorf("sets = %d, reps = %v, prs = %d, want 3, 19, 1", b.Sets, b.Reps, b.PRCount)
	}
}

func TestAggregatePeriodsFiltersByRange(t *testing.T) {
	now := date(2024, time.June, 20)
	workouts := []workout.Record{
		wk("recent", now.AddDate(0, 0, -10), time.Hour, 100),
		wk("old", now.AddDate(0, 0, -40), time.Hour, 100),
		wk("ancient", now.AddDate(-11, 0, 0), time.Hour, 100),
	}

	if got := AggregatePeriods(workouts, Range1Month, GranularityWeek, now); len(got) != 1 {
		t.Errorf("1month: got %d buckets, want 1", len(got))
	}
	// "all" is a 10-year lookback: the 11-year-old workout stays out.
	buckets := AggregatePeriods(workouts, RangeAll, GranularityWeek, now)
	total := 0
	for _, b := range buckets {
		total += b.WorkoutCount
	}
	if total != 2 {
		t.Errorf("all: total workout count = %d, want 2", total)
	}
}

func TestAggregatePeriodsOrderedAscending(t *testing.T) {
	now := date(2024, time.June, 20)
	var workouts []workout.Record
	for i := 0; i < 8; i++ {
		workouts = append(workouts, wk("w", now.AddDate(0, 0, -7*i), time.Hour, 10))
	}

	buckets := AggregatePeriods(workouts, Range3Months, GranularityWeek, now)
	for i := 1; i < len(buckets); i++ {
		if buckets[i-1].PeriodKey >= buckets[i].PeriodKey {
			t.Fatalf("buckets not ascending: %q before %q", buckets[i-1].PeriodKey, buckets[i].PeriodKey)
		}
	}
}

func TestAggregatePeriodsEmptyInput(t *testing.T) {
	if got := AggregatePeriods(nil, RangeAll, GranularityWeek, time.Now()); len(got) != 0 {
		t.Errorf("got %d buckets, want 0", len(got))
	}
}
