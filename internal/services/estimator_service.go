package services

import (
	"context"
	"math"
	"sort"

	"task-analytics/internal/domain"
	"task-analytics/internal/repository/sqlite"
)

// estimatorServiceImpl implements the EstimatorService interface
type estimatorServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewEstimatorService creates a new EstimatorService instance
func NewEstimatorService(repo sqlite.Repository) EstimatorService {
	return &estimatorServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// round1 rounds to one decimal place, the precision all analytics report.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// categoryMeans computes the mean session minutes per category from the
// joined session log. The empty category groups separately from named ones;
// sessions whose task was deleted carry no category and count under the
// empty group too, so their history still feeds the fallback mean.
func (e *estimatorServiceImpl) categoryMeans(ctx context.Context) (map[string]float64, error) {
	dbSessions, err := e.repo.ListJoinedSessions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, dbSession := range dbSessions {
		session := e.mapper.WorkSession.JoinedFromDatabase(*dbSession)
		totals[session.TaskCategory] += session.DurationMinutes
		counts[session.TaskCategory]++
	}

	means := make(map[string]float64, len(totals))
	for category, total := range totals {
		means[category] = total / float64(counts[category])
	}
	return means, nil
}

// Predict estimates expected effort in minutes for a category.
// A category with history gets its own mean. Without one, the unweighted mean
// of the per-category means is used: categories are weighted equally
// regardless of session count. With no history at all, the fixed default
// applies.
func (e *estimatorServiceImpl) Predict(ctx context.Context, category string) (float64, error) {
	means, err := e.categoryMeans(ctx)
	if err != nil {
		return 0, err
	}

	if mean, ok := means[category]; ok {
		return round1(mean), nil
	}

	if len(means) > 0 {
		var sum float64
		for _, mean := range means {
			sum += mean
		}
		return round1(sum / float64(len(means))), nil
	}

	return DefaultPredictedMinutes, nil
}

// CategoryAverages returns the mean session minutes per category, sorted by
// category name.
func (e *estimatorServiceImpl) CategoryAverages(ctx context.Context) ([]CategoryAverage, error) {
	means, err := e.categoryMeans(ctx)
	if err != nil {
		return nil, err
	}

	averages := make([]CategoryAverage, 0, len(means))
	for category, mean := range means {
		averages = append(averages, CategoryAverage{
			Category:   category,
			AvgMinutes: round1(mean),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Category < averages[j].Category
	})

	return averages, nil
}
