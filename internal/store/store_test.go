package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"hevy-insights/internal/workout"
)

func TestAuthRoundTrip(t *testing.T) {
	s := NewTestStore(t)

	if _, err := s.GetAuth(); !errors.Is(err, ErrNoAuth) {
		t.Fatalf("GetAuth on empty store = %v, want ErrNoAuth", err)
	}

	saved := &Auth{AuthToken: "tok", UserID: "u1", Username: "alice", Email: "a@example.com"}
	if err := s.SaveAuth(saved); err != nil {
		t.Fatalf("SaveAuth: %v", err)
	}

	got, err := s.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Errorf("GetAuth = %+v, want %+v", got, saved)
	}

	// Saving again replaces the singleton row.
	saved.AuthToken = "tok2"
	if err := s.SaveAuth(saved); err != nil {
		t.Fatalf("SaveAuth (update): %v", err)
	}
	got, _ = s.GetAuth()
	if got.AuthToken != "tok2" {
		t.Errorf("AuthToken = %q, want tok2", got.AuthToken)
	}

	if err := s.DeleteAuth(); err != nil {
		t.Fatalf("DeleteAuth: %v", err)
	}
	if _, err := s.GetAuth(); !errors.Is(err, ErrNoAuth) {
		t.Errorf("GetAuth after delete = %v, want ErrNoAuth", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewTestStore(t)

	if _, _, err := s.LoadSnapshot(); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("LoadSnapshot on empty store = %v, want ErrNoSnapshot", err)
	}

	hr := 145.0
	records := []workout.Record{
		{
			ID:                "w1",
			Name:              "Leg Day",
			StartTime:         1700000000,
			EndTime:           1700003600,
			EstimatedVolumeKg: 5200,
			Biometrics:        &workout.Biometrics{AverageHeartRate: &hr},
			Exercises: []workout.ExerciseInstance{
				{
					Title:       "Squat",
					MuscleGroup: "Legs",
					Sets: []workout.SetRecord{
						{Index: 0, WeightKg: 100, Reps: 5,
							PersonalRecords: []workout.PersonalRecord{
								{Type: "best_weight", Value: workout.NumberPR(100)},
								{Type: "note", Value: workout.StringPR("belt on")},
							}},
					},
				},
			},
		},
	}
	fetchedAt := time.Unix(1700010000, 0)

	if err := s.SaveSnapshot(records, fetchedAt); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, gotAt, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !gotAt.Equal(fetchedAt) {
		t.Errorf("fetchedAt = %v, want %v", gotAt, fetchedAt)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("snapshot round-trip changed records:\n got %+v\nwant %+v", got, records)
	}

	if err := s.ClearSnapshot(); err != nil {
		t.Fatalf("ClearSnapshot: %v", err)
	}
	if _, _, err := s.LoadSnapshot(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LoadSnapshot after clear = %v, want ErrNoSnapshot", err)
	}
}

func TestSnapshotReplaced(t *testing.T) {
	s := NewTestStore(t)

	if err := s.SaveSnapshot([]workout.Record{{ID: "old"}}, time.Unix(100, 0)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSnapshot([]workout.Record{{ID: "new1"}, {ID: "new2"}}, time.Unix(200, 0)); err != nil {
		t.Fatal(err)
	}

	got, at, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "new1" || at.Unix() != 200 {
		t.Errorf("got %d records at %v, want the replaced snapshot", len(got), at)
	}
}
