package service

import (
	"context"
	"sort"
	"time"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/repo"
)

// QueryService assembles view data for the TUI from the repository's
// current snapshot. All derivation happens on demand through the pure
// functions in the analysis package; nothing here is cached.
type QueryService struct {
	repo *repo.Repository

	// now is stubbed in tests.
	now func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(r *repo.Repository) *QueryService {
	return &QueryService{repo: r, now: time.Now}
}

// ExerciseSummary is one row of the exercise list screen.
type ExerciseSummary struct {
	ExerciseID    string
	Title         string
	TotalSessions int
	LastTrained   string
	BestWeightKg  float64
	Trend         analysis.Trend
}

// ExerciseDetailData is everything the exercise detail screen shows.
type ExerciseDetailData struct {
	Aggregate *analysis.ExerciseAggregate
	Trend     analysis.Trend
	// MaxWeightSeries is the per-session max weight in chronological
	// order, with matching day labels, for the detail chart.
	MaxWeightSeries []float64
	SeriesDays      []string
}

// Exercises lists every exercise in the collection with its trend,
// sorted by most recently trained first.
func (q *QueryService) Exercises(ctx context.Context) ([]ExerciseSummary, error) {
	workouts, err := q.repo.FetchWorkouts(ctx, false)
	if err != nil {
		return nil, err
	}

	now := q.now()
	aggs := analysis.BuildHistory(workouts)

	summaries := make([]ExerciseSummary, 0, len(aggs))
	for _, agg := range aggs {
		s := ExerciseSummary{
			ExerciseID:    agg.ExerciseID,
			Title:         agg.Title,
			TotalSessions: agg.TotalSessions,
			LastTrained:   agg.LastTrainedDate,
			Trend:         analysis.ClassifyTrend(agg, now),
		}
		if len(agg.TopSets) > 0 {
			s.BestWeightKg = agg.TopSets[0].WeightKg
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].LastTrained != summaries[j].LastTrained {
			return summaries[i].LastTrained > summaries[j].LastTrained
		}
		return summaries[i].ExerciseID < summaries[j].ExerciseID
	})
	return summaries, nil
}

// ExerciseDetail returns the full aggregate for one exercise id, or
// ok=false when the exercise is unknown.
func (q *QueryService) ExerciseDetail(ctx context.Context, exerciseID string) (*ExerciseDetailData, bool, error) {
	workouts, err := q.repo.FetchWorkouts(ctx, false)
	if err != nil {
		return nil, false, err
	}

	agg := analysis.BuildHistory(workouts)[exerciseID]
	if agg == nil {
		return nil, false, nil
	}

	days := make([]string, 0, len(agg.ByDay))
	for day := range agg.ByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]float64, len(days))
	for i, day := range days {
		series[i] = agg.ByDay[day].MaxWeight
	}

	return &ExerciseDetailData{
		Aggregate:       agg,
		Trend:           analysis.ClassifyTrend(agg, q.now()),
		MaxWeightSeries: series,
		SeriesDays:      days,
	}, true, nil
}
