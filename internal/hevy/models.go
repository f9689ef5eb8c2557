package hevy

import (
	"encoding/json"

	"hevy-insights/internal/workout"
)

// Session holds the result of a successful login.
type Session struct {
	AuthToken string `json:"auth_token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Workout is a workout session as the API reports it.
type Workout struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	StartTime         int64       `json:"startTime"`
	EndTime           int64       `json:"endTime"`
	EstimatedVolumeKg float64     `json:"estimatedVolumeKg"`
	Description       string      `json:"description"`
	Biometrics        *Biometrics `json:"biometrics"`
	Exercises         []Exercise  `json:"exercises"`
}

// Biometrics carries optional session body data.
type Biometrics struct {
	AverageHeartRate *float64 `json:"averageHeartRate"`
	TotalCalories    *float64 `json:"totalCalories"`
}

// Exercise is one exercise within a workout.
type Exercise struct {
	Title       string `json:"title"`
	MuscleGroup string `json:"muscleGroup"`
	VideoURL    string `json:"videoUrl"`
	Sets        []Set  `json:"sets"`
}

// Set is one set within an exercise. Personal records arrive under two
// legacy field names, "prs" and "personalRecords", which are merged in
// that order when decoding; entries with a blank type are dropped.
// Missing or non-numeric weight/reps decode to 0.
type Set struct {
	Index           int
	WeightKg        float64
	Reps            float64
	RPE             *float64
	PersonalRecords []PR
}

// PR is one flagged personal-record value on a set.
type PR struct {
	Type  string          `json:"type"`
	Value workout.PRValue `json:"value"`
}

type setWire struct {
	Index           int             `json:"index"`
	WeightKg        json.RawMessage `json:"weightKg"`
	Reps            json.RawMessage `json:"reps"`
	RPE             *float64        `json:"rpe"`
	PRs             []PR            `json:"prs"`
	PersonalRecords []PR            `json:"personalRecords"`
}

// UnmarshalJSON merges the legacy PR fields and defaults absent or
// non-numeric weight/reps to 0.
func (s *Set) UnmarshalJSON(data []byte) error {
	var w setWire
	if err := json.Unmarshal(data, &w); err != nil {
		return workout.ErrMalformed
	}

	s.Index = w.Index
	s.WeightKg = numberOrZero(w.WeightKg)
	s.Reps = numberOrZero(w.Reps)
	s.RPE = w.RPE

	s.PersonalRecords = s.PersonalRecords[:0]
	for _, pr := range append(w.PRs, w.PersonalRecords...) {
		if pr.Type == "" {
			continue
		}
		s.PersonalRecords = append(s.PersonalRecords, pr)
	}
	return nil
}

func numberOrZero(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

// ToRecord converts an API workout into the plain domain shape.
func (w Workout) ToRecord() workout.Record {
	rec := workout.Record{
		ID:                w.ID,
		Name:              w.Name,
		StartTime:         w.StartTime,
		EndTime:           w.EndTime,
		EstimatedVolumeKg: w.EstimatedVolumeKg,
		Description:       w.Description,
		Exercises:         make([]workout.ExerciseInstance, 0, len(w.Exercises)),
	}
	if w.Biometrics != nil {
		rec.Biometrics = &workout.Biometrics{
			AverageHeartRate: w.Biometrics.AverageHeartRate,
			TotalCalories:    w.Biometrics.TotalCalories,
		}
	}
	for _, ex := range w.Exercises {
		inst := workout.ExerciseInstance{
			Title:       ex.Title,
			MuscleGroup: ex.MuscleGroup,
			VideoURL:    ex.VideoURL,
			Sets:        make([]workout.SetRecord, 0, len(ex.Sets)),
		}
		for _, set := range ex.Sets {
			sr := workout.SetRecord{
				Index:    set.Index,
				WeightKg: set.WeightKg,
				Reps:     set.Reps,
				RPE:      set.RPE,
			}
			for _, pr := range set.PersonalRecords {
				sr.PersonalRecords = append(sr.PersonalRecords, workout.PersonalRecord{
					Type:  pr.Type,
					Value: pr.Value,
				})
			}
			inst.Sets = append(inst.Sets, sr)
		}
		rec.Exercises = append(rec.Exercises, inst)
	}
	return rec
}
