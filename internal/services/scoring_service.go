package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"task-analytics/internal/domain"
	"task-analytics/internal/repository/sqlite"
)

// scoringServiceImpl implements the ScoringService interface
type scoringServiceImpl struct {
	repo    sqlite.Repository
	mapper  *domain.Mapper
	nowFunc func() time.Time
}

// NewScoringService creates a new ScoringService instance
func NewScoringService(repo sqlite.Repository) ScoringService {
	return &scoringServiceImpl{
		repo:    repo,
		mapper:  domain.NewMapper(),
		nowFunc: time.Now,
	}
}

// truncateToDate strips the clock from a timestamp, keeping the local date.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// scoreFor maps a day's total minutes to a productivity score:
// the target minute count scores 100 points, capped, rounded to one decimal.
func scoreFor(totalMinutes float64) float64 {
	score := totalMinutes / ScoreTargetMinutes * 100
	if score > ScoreCap {
		score = ScoreCap
	}
	return round1(score)
}

func (s *scoringServiceImpl) sessions(ctx context.Context) ([]*domain.JoinedSession, error) {
	dbSessions, err := s.repo.ListJoinedSessions(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.WorkSession.JoinedFromDatabaseSlice(dbSessions), nil
}

// DailyScores groups all sessions by the calendar date of their start time
// and scores each day, most recent date first. No history yields an empty
// sequence.
func (s *scoringServiceImpl) DailyScores(ctx context.Context) ([]DailyScore, error) {
	sessions, err := s.sessions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[time.Time]float64)
	for _, session := range sessions {
		totals[truncateToDate(session.StartTime)] += session.DurationMinutes
	}

	scores := make([]DailyScore, 0, len(totals))
	for date, total := range totals {
		scores = append(scores, DailyScore{
			Date:         date,
			TotalMinutes: total,
			Score:        scoreFor(total),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Date.After(scores[j].Date)
	})

	return scores, nil
}

// TodayScore returns the score for today's date, or 0 when nothing was
// logged today.
func (s *scoringServiceImpl) TodayScore(ctx context.Context) (float64, error) {
	scores, err := s.DailyScores(ctx)
	if err != nil {
		return 0, err
	}

	today := truncateToDate(s.nowFunc())
	for _, score := range scores {
		if score.Date.Equal(today) {
			return score.Score, nil
		}
	}
	return 0, nil
}

// WeeklyAverageScore averages the daily scores over the inclusive 7-day
// window ending today. Days without sessions do not contribute; a window
// with no scored days returns 0.
func (s *scoringServiceImpl) WeeklyAverageScore(ctx context.Context) (float64, error) {
	scores, err := s.DailyScores(ctx)
	if err != nil {
		return 0, err
	}

	today := truncateToDate(s.nowFunc())
	windowStart := today.AddDate(0, 0, -6)

	var sum float64
	var count int
	for _, score := range scores {
		if score.Date.Before(windowStart) || score.Date.After(today) {
			continue
		}
		sum += score.Score
		count++
	}

	if count == 0 {
		return 0, nil
	}
	return round1(sum / float64(count)), nil
}

// BestHours buckets sessions by the hour of day they started in and returns
// the topN buckets by total minutes. Ties break toward the earlier hour;
// the rule is arbitrary but deterministic.
func (s *scoringServiceImpl) BestHours(ctx context.Context, topN int) ([]HourBucket, error) {
	if topN <= 0 {
		topN = DefaultBestHoursTopN
	}

	sessions, err := s.sessions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, session := range sessions {
		totals[session.StartTime.Hour()] += session.DurationMinutes
	}

	buckets := make([]HourBucket, 0, len(totals))
	for hour, total := range totals {
		buckets = append(buckets, HourBucket{
			Hour:         hour,
			Label:        fmt.Sprintf("%02d:00-%02d:59", hour, hour),
			TotalMinutes: round1(total),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].TotalMinutes != buckets[j].TotalMinutes {
			return buckets[i].TotalMinutes > buckets[j].TotalMinutes
		}
		return buckets[i].Hour < buckets[j].Hour
	})

	if len(buckets) > topN {
		buckets = buckets[:topN]
	}
	return buckets, nil
}

// CategoryTotals sums logged minutes per task category. Sessions whose task
// was deleted count under the empty category rather than being dropped.
func (s *scoringServiceImpl) CategoryTotals(ctx context.Context) (map[string]float64, error) {
	sessions, err := s.sessions(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, session := range sessions {
		totals[session.TaskCategory] += session.DurationMinutes
	}
	return totals, nil
}
