package analysis

import (
	"math"
	"sort"
	"time"
)

// TrendType labels an exercise's recent trajectory.
type TrendType string

const (
	TrendInactive     TrendType = "inactive"
	TrendInsufficient TrendType = "insufficient"
	TrendPlateau      TrendType = "plateau"
	TrendGaining      TrendType = "gaining"
	TrendLosing       TrendType = "losing"
	TrendMaintaining  TrendType = "maintaining"
)

// Classification thresholds. These are fixed compatibility constants,
// not tunables.
const (
	inactiveAfterDays  = 60
	trendWindowDays    = 60
	requiredSessions   = 5
	plateauWeightRange = 0.5 // kg
	plateauRepsRange   = 1.0
	trendWeightDelta   = 2.0 // kg
	trendRepsDelta     = 2.0
	repsWeightGuard    = 0.5 // kg
)

// Trend is the classification result for one exercise. Only the
// fields relevant to Type are populated.
type Trend struct {
	Type TrendType

	// inactive
	DaysSinceLast int

	// insufficient
	Sessions int
	Needed   int

	// plateau
	AvgWeight float64 // mean max weight over the window, one decimal
	MinReps   float64
	MaxReps   float64

	// gaining / losing: absolute half-over-half change, weight to one
	// decimal, reps to whole numbers
	WeightChange float64
	RepsChange   float64
}

// ClassifyTrend applies the fixed heuristic to one exercise's
// day-keyed history. States are evaluated in order and the first
// match wins: inactive, insufficient, plateau, gaining, losing,
// maintaining. The function is pure; recompute it whenever the
// aggregate is rebuilt.
func ClassifyTrend(agg *ExerciseAggregate, now time.Time) Trend {
	if agg == nil || agg.TotalSessions == 0 {
		return Trend{Type: TrendInsufficient, Sessions: 0, Needed: requiredSessions}
	}

	last, err := time.ParseInLocation(dayKeyLayout, agg.LastTrainedDate, now.Location())
	if err == nil {
		daysSince := int(now.Sub(last).Hours() / 24)
		if daysSince > inactiveAfterDays {
			return Trend{Type: TrendInactive, DaysSinceLast: daysSince}
		}
	}

	if agg.TotalSessions < requiredSessions {
		return Trend{Type: TrendInsufficient, Sessions: agg.TotalSessions, Needed: requiredSessions}
	}

	// The 60-day window is applied again even though the overall
	// count passed: old sessions must not feed the trend math.
	recent := recentSessions(agg, now)
	if len(recent) < requiredSessions {
		return Trend{Type: TrendInsufficient, Sessions: len(recent), Needed: requiredSessions}
	}
	recent = recent[len(recent)-requiredSessions:]

	minWeight, maxWeight := recent[0].stats.MaxWeight, recent[0].stats.MaxWeight
	minReps, maxReps := recent[0].stats.RepsAtMaxWeight, recent[0].stats.RepsAtMaxWeight
	var weightSum float64
	for _, s := range recent {
		weightSum += s.stats.MaxWeight
		minWeight = math.Min(minWeight, s.stats.MaxWeight)
		maxWeight = math.Max(maxWeight, s.stats.MaxWeight)
		minReps = math.Min(minReps, s.stats.RepsAtMaxWeight)
		maxReps = math.Max(maxReps, s.stats.RepsAtMaxWeight)
	}

	if maxWeight-minWeight <= plateauWeightRange && maxReps-minReps <= plateauRepsRange {
		return Trend{
			Type:      TrendPlateau,
			AvgWeight: round1(weightSum / float64(len(recent))),
			MinReps:   minReps,
			MaxReps:   maxReps,
		}
	}

	half := len(recent) / 2
	first, second := recent[:half], recent[half:]
	weightChange := meanMaxWeight(second) - meanMaxWeight(first)
	repsChange := meanRepsAtMax(second) - meanRepsAtMax(first)

	change := Trend{
		WeightChange: round1(math.Abs(weightChange)),
		RepsChange:   math.Round(math.Abs(repsChange)),
	}
	switch {
	case weightChange > trendWeightDelta ||
		(repsChange > trendRepsDelta && weightChange >= -repsWeightGuard):
		change.Type = TrendGaining
		return change
	case weightChange < -trendWeightDelta ||
		(repsChange < -trendRepsDelta && weightChange <= repsWeightGuard):
		change.Type = TrendLosing
		return change
	default:
		return Trend{Type: TrendMaintaining}
	}
}

type session struct {
	day   string
	stats DayStats
}

// recentSessions returns the exercise's training days within the
// trailing window, oldest first.
func recentSessions(agg *ExerciseAggregate, now time.Time) []session {
	cutoff := DayKey(now.AddDate(0, 0, -trendWindowDays))

	sessions := make([]session, 0, len(agg.ByDay))
	for day, stats := range agg.ByDay {
		if day >= cutoff {
			sessions = append(sessions, session{day: day, stats: stats})
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].day < sessions[j].day })
	return sessions
}

func meanMaxWeight(sessions []session) float64 {
	var sum float64
	for _, s := range sessions {
		sum += s.stats.MaxWeight
	}
	return sum / float64(len(sessions))
}

func meanRepsAtMax(sessions []session) float64 {
	var sum float64
	for _, s := range sessions {
		sum += s.stats.RepsAtMaxWeight
	}
	return sum / float64(len(sessions))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
