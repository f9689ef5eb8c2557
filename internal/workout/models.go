package workout

import "time"

// Record represents one completed workout session.
// Records are immutable once fetched; a refresh replaces the whole
// collection rather than patching records in place.
type Record struct {
	ID                string             `json:"id"`
	Name              string             `json:"name,omitempty"`
	StartTime         int64              `json:"start_time"` // unix seconds
	EndTime           int64              `json:"end_time"`   // unix seconds
	EstimatedVolumeKg float64            `json:"estimated_volume_kg"`
	Description       string             `json:"description,omitempty"`
	Biometrics        *Biometrics        `json:"biometrics,omitempty"`
	Exercises         []ExerciseInstance `json:"exercises"`
}

// Biometrics holds optional session-level body data.
type Biometrics struct {
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty"`
	TotalCalories    *float64 `json:"total_calories,omitempty"`
}

// ExerciseInstance is one exercise performed within a workout.
type ExerciseInstance struct {
	Title       string      `json:"title"`
	MuscleGroup string      `json:"muscle_group,omitempty"`
	VideoURL    string      `json:"video_url,omitempty"`
	Sets        []SetRecord `json:"sets"`
}

// SetRecord is one set within an exercise. Missing numeric fields
// default to 0 rather than failing.
type SetRecord struct {
	Index           int              `json:"index"`
	WeightKg        float64          `json:"weight_kg"`
	Reps            float64          `json:"reps"`
	RPE             *float64         `json:"rpe,omitempty"`
	PersonalRecords []PersonalRecord `json:"personal_records,omitempty"`
}

// PersonalRecord is a flagged set value reported by the data source,
// e.g. a max weight for a rep count. Values may be numeric or stringy.
type PersonalRecord struct {
	Type  string  `json:"type"`
	Value PRValue `json:"value"`
}

// Account identifies the authenticated user at the remote source.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UnknownMuscleGroup is used when the source provides no label.
const UnknownMuscleGroup = "Unknown"

// DurationMinutes returns the workout length in whole minutes,
// clamped at zero for inverted timestamps.
func (r Record) DurationMinutes() int {
	d := (r.EndTime - r.StartTime) / 60
	if d < 0 {
		return 0
	}
	return int(d)
}

// Start returns the workout start as a local time.
func (r Record) Start() time.Time {
	return time.Unix(r.StartTime, 0)
}

// MuscleGroupOrUnknown returns the exercise's muscle group label,
// defaulting when the source left it empty.
func (e ExerciseInstance) MuscleGroupOrUnknown() string {
	if e.MuscleGroup == "" {
		return UnknownMuscleGroup
	}
	return e.MuscleGroup
}
