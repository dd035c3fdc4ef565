package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/pkg/ctxutil"
)

const (
	defaultForecastDays = 7
	defaultHistoryDays  = 30
)

// GetUserStats computes the derived statistics view for the user. Everything
// here is recomputable from cards and review history; nothing is persisted.
func (s *Service) GetUserStats(ctx context.Context, input GetStatsInput) (domain.UserStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UserStats{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.UserStats{}, err
	}

	forecastDays := input.ForecastDays
	if forecastDays == 0 {
		forecastDays = defaultForecastDays
	}
	historyDays := input.HistoryDays
	if historyDays == 0 {
		historyDays = defaultHistoryDays
	}

	now := s.now()
	dayStart := DayStart(now, s.tz)
	nextDay := NextDayStart(now, s.tz)

	statusCounts, err := s.cards.CountByStatus(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count by status: %w", err)
	}

	overdue, err := s.cards.CountDueBefore(ctx, userID, dayStart)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count overdue: %w", err)
	}

	dueToday, err := s.cards.CountDueBetween(ctx, userID, dayStart, nextDay)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count due today: %w", err)
	}

	dueThisWeek, err := s.cards.CountDueBetween(ctx, userID, dayStart, dayStart.AddDate(0, 0, 7))
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count due this week: %w", err)
	}

	avgEase, err := s.cards.AverageEase(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("average ease: %w", err)
	}

	retention, err := s.retentionRate(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	reviewsToday, err := s.reviews.CountSince(ctx, userID, dayStart)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count reviews today: %w", err)
	}

	reviewsWeek, err := s.reviews.CountSince(ctx, userID, dayStart.AddDate(0, 0, -6))
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count reviews this week: %w", err)
	}

	reviewsMonth, err := s.reviews.CountSince(ctx, userID, dayStart.AddDate(0, 0, -29))
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("count reviews this month: %w", err)
	}

	totalTime, err := s.reviews.TotalResponseTime(ctx, userID)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("total response time: %w", err)
	}

	// Per-day review counts, most recent first, in the stats timezone.
	days, err := s.reviews.DayCounts(ctx, userID, s.tz.String())
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("day counts: %w", err)
	}

	nowInTz := now.In(s.tz)
	today := time.Date(nowInTz.Year(), nowInTz.Month(), nowInTz.Day(), 0, 0, 0, 0, s.tz)

	dueByDay, err := s.cards.DueCountsByDay(ctx, userID, dayStart, dayStart.AddDate(0, 0, forecastDays), s.tz.String())
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("due counts by day: %w", err)
	}

	stats := domain.UserStats{
		StatusCounts:      statusCounts,
		DueToday:          dueToday,
		DueThisWeek:       dueThisWeek,
		Overdue:           overdue,
		AverageEaseFactor: avgEase,
		RetentionRate:     retention,
		CurrentStreak:     calculateStreak(days, today),
		LongestStreak:     longestStreak(days),
		ReviewsToday:      reviewsToday,
		ReviewsThisWeek:   reviewsWeek,
		ReviewsThisMonth:  reviewsMonth,
		TotalTimeMs:       totalTime,
		DailyHistory:      fillHistory(days, today, historyDays),
		Forecast:          fillForecast(dueByDay, today, forecastDays),
	}

	s.log.InfoContext(ctx, "user stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("total_cards", statusCounts.Total),
		slog.Int("due_today", dueToday),
		slog.Int("streak", stats.CurrentStreak),
	)

	return stats, nil
}

// retentionRate is the share of the most recent reviews rated successful,
// as a percentage in [0, 100]. No reviews means 0.
func (s *Service) retentionRate(ctx context.Context, userID uuid.UUID) (float64, error) {
	recent, err := s.reviews.GetRecent(ctx, userID, s.srsConfig.RetentionWindow)
	if err != nil {
		return 0, fmt.Errorf("get recent reviews: %w", err)
	}
	if len(recent) == 0 {
		return 0, nil
	}

	successes := 0
	for _, r := range recent {
		if r.Quality.IsSuccess() {
			successes++
		}
	}
	return float64(successes) / float64(len(recent)) * 100, nil
}

// ---------------------------------------------------------------------------
// Helper Functions
// ---------------------------------------------------------------------------

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// calculateStreak calculates the current review streak in days.
// days must be sorted DESC by date (most recent first).
// Today without reviews does not break the streak; it anchors on yesterday.
func calculateStreak(days []domain.DayReviewCount, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	expected := today
	if !sameDay(days[0].Date, today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !sameDay(d.Date, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the longest run of consecutive review days.
// days must be sorted DESC by date.
func longestStreak(days []domain.DayReviewCount) int {
	longest := 0
	run := 0
	for i, d := range days {
		if i == 0 || sameDay(days[i-1].Date.AddDate(0, 0, -1), d.Date) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// fillHistory expands sparse per-day counts into a dense window of n days
// ending today, oldest first. Days without reviews get a zero entry.
func fillHistory(days []domain.DayReviewCount, today time.Time, n int) []domain.DayReviewCount {
	byDay := make(map[string]int, len(days))
	for _, d := range days {
		byDay[d.Date.Format("2006-01-02")] = d.Count
	}

	out := make([]domain.DayReviewCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		out = append(out, domain.DayReviewCount{
			Date:  date,
			Count: byDay[date.Format("2006-01-02")],
		})
	}
	return out
}

// fillForecast expands sparse due-by-day counts into a dense window of n days
// starting today.
func fillForecast(days []domain.DayDueCount, today time.Time, n int) []domain.DayDueCount {
	byDay := make(map[string]int, len(days))
	for _, d := range days {
		byDay[d.Date.Format("2006-01-02")] = d.Count
	}

	out := make([]domain.DayDueCount, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, i)
		out = append(out, domain.DayDueCount{
			Date:  date,
			Count: byDay[date.Format("2006-01-02")],
		})
	}
	return out
}
