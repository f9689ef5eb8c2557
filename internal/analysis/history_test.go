package analysis

import (
	"reflect"
	"testing"
	"time"

	"hevy-insights/internal/workout"
)

func TestBuildHistoryGroupsByNormalizedTitle(t *testing.T) {
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 3), time.Hour, 0,
			ex("Bench Press (Barbell)", "Chest", set(80, 8))),
		wk("b", date(2024, time.June, 5), time.Hour, 0,
			ex("bench press barbell", "Chest", set(85, 5))),
	}

	aggs := BuildHistory(workouts)
	if len(aggs) != 1 {
		t.Fatalf("got %d aggregates, want 1", len(aggs))
	}

	agg := aggs["bench-press-barbell"]
	if agg == nil {
		t.Fatal("missing bench-press-barbell aggregate")
	}
	if agg.Title != "Bench Press (Barbell)" {
		t.Errorf("Title = %q, want first-seen display title", agg.Title)
	}
	if agg.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", agg.TotalSessions)
	}
	if agg.LastTrainedDate != "2024-06-05" {
		t.Errorf("LastTrainedDate = %q, want 2024-06-05", agg.LastTrainedDate)
	}
}

func TestBuildHistoryDayStats(t *testing.T) {
	day := date(2024, time.June, 3)
	workouts := []workout.Record{
		wk("a", day, time.Hour, 0,
			ex("Squat", "Legs", set(100, 5), set(110, 3), set(110, 5), set(90, 8))),
	}

	agg := BuildHistory(workouts)["squat"]
	stats, ok := agg.ByDay["2024-06-03"]
	if !ok {
		t.Fatal("missing day entry")
	}

	if stats.MaxWeight != 110 {
		t.Errorf("MaxWeight = %v, want 110", stats.MaxWeight)
	}
	// Two sets at 110: the one with more reps wins.
	if stats.RepsAtMaxWeight != 5 {
		t.Errorf("RepsAtMaxWeight = %v, want 5", stats.RepsAtMaxWeight)
	}
	wantVolume := 100*5 + 110*3 + 110*5 + 90*8.0
	if stats.Volume != wantVolume {
		t.Errorf("Volume = %v, want %v", stats.Volume, wantVolume)
	}
	if stats.SetCount != 4 {
		t.Errorf("SetCount = %d, want 4", stats.SetCount)
	}
	if stats.AvgVolumePerSet != wantVolume/4 {
		t.Errorf("AvgVolumePerSet = %v, want %v", stats.AvgVolumePerSet, wantVolume/4)
	}
}

func TestBuildHistoryTopSets(t *testing.T) {
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 3), time.Hour, 0,
			ex("Deadlift", "Back", set(140, 3), set(150, 1))),
		wk("b", date(2024, time.June, 10), time.Hour, 0,
			ex("Deadlift", "Back", set(150, 2), set(130, 5), set(145, 2))),
	}

	agg := BuildHistory(workouts)["deadlift"]
	want := []TopSet{
		{Day: "2024-06-03", WeightKg: 150, Reps: 1}, // first-encountered 150 stays ahead
		{Day: "2024-06-10", WeightKg: 150, Reps: 2},
		{Day: "2024-06-10", WeightKg: 145, Reps: 2},
	}
	if !reflect.DeepEqual(agg.TopSets, want) {
		t.Errorf("TopSets = %+v, want %+v", agg.TopSets, want)
	}
}

func TestBuildHistoryDistinctPRs(t *testing.T) {
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 3), time.Hour, 0,
			ex("Bench Press", "Chest",
				set(80, 8, workout.PersonalRecord{Type: "best_weight", Value: workout.NumberPR(80)}),
				set(85, 5,
					workout.PersonalRecord{Type: "best_weight", Value: workout.NumberPR(85)},
					workout.PersonalRecord{Type: "best_volume", Value: workout.StringPR("425")},
				),
			)),
	}

	agg := BuildHistory(workouts)["bench-press"]
	if len(agg.DistinctPRs) != 2 {
		t.Fatalf("DistinctPRs = %v, want 2 entries", agg.DistinctPRs)
	}
	if agg.DistinctPRs["best_weight"] != 85 {
		t.Errorf("best_weight = %v, want 85 (highest seen)", agg.DistinctPRs["best_weight"])
	}
	if agg.DistinctPRs["best_volume"] != 425 {
		t.Errorf("best_volume = %v, want 425", agg.DistinctPRs["best_volume"])
	}
}

func TestBuildHistoryIdempotent(t *testing.T) {
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 3), time.Hour, 0,
			ex("Row", "Back", set(60, 10), set(60, 12), set(65, 8))),
		wk("b", date(2024, time.June, 5), time.Hour, 0,
			ex("Row", "Back", set(65, 10))),
	}

	first := BuildHistory(workouts)
	second := BuildHistory(workouts)
	if !reflect.DeepEqual(first, second) {
		t.Error("BuildHistory is not deterministic for identical input")
	}
}

func TestBuildHistoryDegenerateInputs(t *testing.T) {
	if aggs := BuildHistory(nil); len(aggs) != 0 {
		t.Errorf("empty input: got %d aggregates, want 0", len(aggs))
	}

	// An exercise with zero sets still yields an (empty) aggregate.
	workouts := []workout.Record{
		wk("a", date(2024, time.June, 3), time.Hour, 0, ex("Plank", "Core")),
	}
	agg := BuildHistory(workouts)["plank"]
	if agg == nil {
		t.Fatal("missing aggregate for set-less exercise")
	}
	if len(agg.ByDay) != 0 || agg.TotalSessions != 0 || len(agg.TopSets) != 0 {
		t.Errorf("aggregate should be empty, got %+v", agg)
	}
	if agg.LastTrainedDate != "" {
		t.Errorf("LastTrainedDate = %q, want absent", agg.LastTrainedDate)
	}
}
