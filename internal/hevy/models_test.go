package hevy

import (
	"encoding/json"
	"testing"
)

func TestSetUnmarshalMergesLegacyPRFields(t *testing.T) {
	data := []byte(`{
		"index": 2,
		"weightKg": 100,
		"reps": 5,
		"prs": [{"type": "best_weight", "value": 100}, {"type": "", "value": 1}],
		"personalRecords": [{"type": "best_volume", "value": "500"}]
	}`)

	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if s.Index != 2 || s.WeightKg != 100 || s.Reps != 5 {
		t.Errorf("set = %+v, want index 2, weight 100, reps 5", s)
	}
	if len(s.PersonalRecords) != 2 {
		t.Fatalf("PersonalRecords len = %d, want 2 (blank type dropped)", len(s.PersonalRecords))
	}
	if s.PersonalRecords[0].Type != "best_weight" || s.PersonalRecords[1].Type != "best_volume" {
		t.Errorf("PR types = %q, %q", s.PersonalRecords[0].Type, s.PersonalRecords[1].Type)
	}
	if v, ok := s.PersonalRecords[1].Value.Float(); !ok || v != 500 {
		t.Errorf("stringy numeric PR value = %v, %v, want 500, true", v, ok)
	}
}

func TestSetUnmarshalDefaultsMissingNumbers(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"absent fields", `{"index": 0}`},
		{"non-numeric values", `{"index": 0, "weightKg": "heavy", "reps": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Set
			if err := json.Unmarshal([]byte(tt.data), &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if s.WeightKg != 0 || s.Reps != 0 {
				t.Errorf("weight = %v, reps = %v, want 0, 0", s.WeightKg, s.Reps)
			}
		})
	}
}

func TestWorkoutToRecord(t *testing.T) {
	hr := 140.0
	w := Workout{
		ID:                "w1",
		Name:              "Push Day",
		StartTime:         1700000000,
		EndTime:           1700003600,
		EstimatedVolumeKg: 4200,
		Biometrics:        &Biometrics{AverageHeartRate: &hr},
		Exercises: []Exercise{
			{Title: "Bench Press", MuscleGroup: "Chest", Sets: []Set{{Index: 0, WeightKg: 80, Reps: 8}}},
		},
	}

	rec := w.ToRecord()
	if rec.ID != "w1" || rec.DurationMinutes() != 60 {
		t.Errorf("record = %+v, want id w1, 60 min", rec)
	}
	if rec.Biometrics == nil || *rec.Biometrics.AverageHeartRate != 140 {
		t.Error("biometrics not carried over")
	}
	if len(rec.Exercises) != 1 || len(rec.Exercises[0].Sets) != 1 {
		t.Fatalf("exercises = %+v", rec.Exercises)
	}
	if rec.Exercises[0].Sets[0].WeightKg != 80 {
		t.Errorf("set weight = %v, want 80", rec.Exercises[0].Sets[0].WeightKg)
	}
}
