package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
)

// dateFormat is the wire format for day-bucketed dates.
const dateFormat = "2006-01-02"

type cardResponse struct {
	ID        uuid.UUID `json:"id"`
	CardType  string    `json:"card_type"`
	ContentID string    `json:"content_id"`

	Front         string  `json:"front"`
	Back          string  `json:"back"`
	Pronunciation *string `json:"pronunciation,omitempty"`
	Example       *string `json:"example,omitempty"`
	AudioRef      *string `json:"audio_ref,omitempty"`

	Status         string     `json:"status"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	Streak         int        `json:"streak"`
	Lapses         int        `json:"lapses"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewAt   *time.Time `json:"last_review_at,omitempty"`
	QualityHistory []int      `json:"quality_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCardResponse(c domain.Card) cardResponse {
	history := make([]int, len(c.QualityHistory))
	for i, q := range c.QualityHistory {
		history[i] = int(q)
	}
	return cardResponse{
		ID:             c.ID,
		CardType:       c.CardType.String(),
		ContentID:      c.ContentID,
		Front:          c.Front,
		Back:           c.Back,
		Pronunciation:  c.Pronunciation,
		Example:        c.Example,
		AudioRef:       c.AudioRef,
		Status:         c.Status.String(),
		EaseFactor:     c.EaseFactor,
		IntervalDays:   c.IntervalDays,
		Repetitions:    c.Repetitions,
		Streak:         c.Streak,
		Lapses:         c.Lapses,
		NextReviewAt:   c.NextReviewAt,
		LastReviewAt:   c.LastReviewAt,
		QualityHistory: history,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	return out
}

type snapshotResponse struct {
	Status       string     `json:"status"`
	EaseFactor   float64    `json:"ease_factor"`
	IntervalDays int        `json:"interval_days"`
	Repetitions  int        `json:"repetitions"`
	Streak       int        `json:"streak"`
	Lapses       int        `json:"lapses"`
	NextReviewAt time.Time  `json:"next_review_at"`
	LastReviewAt *time.Time `json:"last_review_at,omitempty"`
}

func toSnapshotResponse(s domain.CardSnapshot) snapshotResponse {
	return snapshotResponse{
		Status:       s.Status.String(),
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
		Streak:       s.Streak,
		Lapses:       s.Lapses,
		NextReviewAt: s.NextReviewAt,
		LastReviewAt: s.LastReviewAt,
	}
}

type reviewResponse struct {
	ID             uuid.UUID        `json:"id"`
	CardID         uuid.UUID        `json:"card_id"`
	SessionID      *uuid.UUID       `json:"session_id,omitempty"`
	Quality        int              `json:"quality"`
	ResponseTimeMs *int             `json:"response_time_ms,omitempty"`
	PrevState      snapshotResponse `json:"prev_state"`
	NewState       snapshotResponse `json:"new_state"`
	ReviewedAt     time.Time        `json:"reviewed_at"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:             r.ID,
		CardID:         r.CardID,
		SessionID:      r.SessionID,
		Quality:        int(r.Quality),
		ResponseTimeMs: r.ResponseTimeMs,
		PrevState:      toSnapshotResponse(r.PrevState),
		NewState:       toSnapshotResponse(r.NewState),
		ReviewedAt:     r.ReviewedAt,
	}
}

type sessionSummaryResponse struct {
	CardsReviewed   int     `json:"cards_reviewed"`
	CorrectCount    int     `json:"correct_count"`
	IncorrectCount  int     `json:"incorrect_count"`
	Accuracy        int     `json:"accuracy"`
	AverageQuality  float64 `json:"average_quality"`
	TotalTimeMs     int64   `json:"total_time_ms"`
	DurationMinutes int     `json:"duration_minutes"`
}

type sessionResponse struct {
	ID             uuid.UUID  `json:"id"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`

	CardsReviewed  int   `json:"cards_reviewed"`
	CorrectCount   int   `json:"correct_count"`
	IncorrectCount int   `json:"incorrect_count"`
	TotalTimeMs    int64 `json:"total_time_ms"`

	Result *sessionSummaryResponse `json:"result,omitempty"`
}

func toSessionResponse(s *domain.ReviewSession) sessionResponse {
	resp := sessionResponse{
		ID:             s.ID,
		Status:         s.Status.String(),
		StartedAt:      s.StartedAt,
		LastActivityAt: s.LastActivityAt,
		FinishedAt:     s.FinishedAt,
		CardsReviewed:  s.CardsReviewed,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
		TotalTimeMs:    s.TotalTimeMs,
	}
	if s.Result != nil {
		resp.Result = &sessionSummaryResponse{
			CardsReviewed:   s.Result.CardsReviewed,
			CorrectCount:    s.Result.CorrectCount,
			IncorrectCount:  s.Result.IncorrectCount,
			Accuracy:        s.Result.Accuracy,
			AverageQuality:  s.Result.AverageQuality,
			TotalTimeMs:     s.Result.TotalTimeMs,
			DurationMinutes: s.Result.DurationMinutes,
		}
	}
	return resp
}

type dayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type statsResponse struct {
	StatusCounts struct {
		New      int `json:"new"`
		Learning int `json:"learning"`
		Review   int `json:"review"`
		Mastered int `json:"mastered"`
		Total    int `json:"total"`
	} `json:"status_counts"`

	DueToday    int `json:"due_today"`
	DueThisWeek int `json:"due_this_week"`
	Overdue     int `json:"overdue"`

	AverageEaseFactor float64 `json:"average_ease_factor"`
	RetentionRate     float64 `json:"retention_rate"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	ReviewsToday     int   `json:"reviews_today"`
	ReviewsThisWeek  int   `json:"reviews_this_week"`
	ReviewsThisMonth int   `json:"reviews_this_month"`
	TotalTimeMs      int64 `json:"total_time_ms"`

	DailyHistory []dayCountResponse `json:"daily_history"`
	Forecast     []dayCountResponse `json:"forecast"`
}

func toStatsResponse(s domain.UserStats) statsResponse {
	var resp statsResponse
	resp.StatusCounts.New = s.StatusCounts.New
	resp.StatusCounts.Learning = s.StatusCounts.Learning
	resp.StatusCounts.Review = s.StatusCounts.Review
	resp.StatusCounts.Mastered = s.StatusCounts.Mastered
	resp.StatusCounts.Total = s.StatusCounts.Total

	resp.DueToday = s.DueToday
	resp.DueThisWeek = s.DueThisWeek
	resp.Overdue = s.Overdue
	resp.AverageEaseFactor = s.AverageEaseFactor
	resp.RetentionRate = s.RetentionRate
	resp.CurrentStreak = s.CurrentStreak
	resp.LongestStreak = s.LongestStreak
	resp.ReviewsToday = s.ReviewsToday
	resp.ReviewsThisWeek = s.ReviewsThisWeek
	resp.ReviewsThisMonth = s.ReviewsThisMonth
	resp.TotalTimeMs = s.TotalTimeMs

	resp.DailyHistory = make([]dayCountResponse, len(s.DailyHistory))
	for i, d := range s.DailyHistory {
		resp.DailyHistory[i] = dayCountResponse{Date: d.Date.Format(dateFormat), Count: d.Count}
	}
	resp.Forecast = make([]dayCountResponse, len(s.Forecast))
	for i, d := range s.Forecast {
		resp.Forecast[i] = dayCountResponse{Date: d.Date.Format(dateFormat), Count: d.Count}
	}
	return resp
}

type cardStatsResponse struct {
	TotalReviews        int     `json:"total_reviews"`
	AccuracyRate        float64 `json:"accuracy_rate"`
	AverageTimeMs       *int    `json:"average_time_ms,omitempty"`
	QualityDistribution []int   `json:"quality_distribution"`

	CurrentStatus string    `json:"current_status"`
	EaseFactor    float64   `json:"ease_factor"`
	IntervalDays  int       `json:"interval_days"`
	Repetitions   int       `json:"repetitions"`
	Lapses        int       `json:"lapses"`
	NextReviewAt  time.Time `json:"next_review_at"`
}

func toCardStatsResponse(s domain.CardStats) cardStatsResponse {
	dist := make([]int, len(s.QualityDistribution))
	copy(dist, s.QualityDistribution[:])
	return cardStatsResponse{
		TotalReviews:        s.TotalReviews,
		AccuracyRate:        s.AccuracyRate,
		AverageTimeMs:       s.AverageTimeMs,
		QualityDistribution: dist,
		CurrentStatus:       s.CurrentStatus.String(),
		EaseFactor:          s.EaseFactor,
		IntervalDays:        s.IntervalDays,
		Repetitions:         s.Repetitions,
		Lapses:              s.Lapses,
		NextReviewAt:        s.NextReviewAt,
	}
}

// listResponse is the envelope for paginated collections.
type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
