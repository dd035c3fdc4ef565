package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is the per-(user, content) scheduling record. The display payload
// (Front, Back, ...) is carried for the UI and never consulted by scheduling.
type Card struct {
	ID     uuid.UUID
	UserID uuid.UUID

	CardType  CardType
	ContentID string

	Front         string
	Back          string
	Pronunciation *string
	Example       *string
	AudioRef      *string

	Status         LearningStatus
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	Streak         int
	Lapses         int
	NextReviewAt   time.Time
	LastReviewAt   *time.Time
	QualityHistory []Quality

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDue reports whether the card should be offered for review at the given time.
// NEW cards are due immediately; others when NextReviewAt has arrived.
func (c *Card) IsDue(now time.Time) bool {
	if c.Status == LearningStatusNew {
		return true
	}
	return !c.NextReviewAt.After(now)
}

// Snapshot captures the scheduling fields of the card for audit trails.
func (c *Card) Snapshot() CardSnapshot {
	return CardSnapshot{
		Status:       c.Status,
		EaseFactor:   c.EaseFactor,
		IntervalDays: c.IntervalDays,
		Repetitions:  c.Repetitions,
		Streak:       c.Streak,
		Lapses:       c.Lapses,
		NextReviewAt: c.NextReviewAt,
		LastReviewAt: c.LastReviewAt,
	}
}

// CardSnapshot is the scheduling state of a card at a point in time.
// Review records store one snapshot from before and one from after the review.
type CardSnapshot struct {
	Status       LearningStatus `json:"status"`
	EaseFactor   float64        `json:"ease_factor"`
	IntervalDays int            `json:"interval_days"`
	Repetitions  int            `json:"repetitions"`
	Streak       int            `json:"streak"`
	Lapses       int            `json:"lapses"`
	NextReviewAt time.Time      `json:"next_review_at"`
	LastReviewAt *time.Time     `json:"last_review_at,omitempty"`
}

// Review is an append-only record of one submitted review.
// Never mutated after creation.
type Review struct {
	ID             uuid.UUID
	CardID         uuid.UUID
	UserID         uuid.UUID
	SessionID      *uuid.UUID
	Quality        Quality
	ResponseTimeMs *int
	PrevState      CardSnapshot
	NewState       CardSnapshot
	ReviewedAt     time.Time
}

// ReviewSession groups a contiguous run of reviews under one user-initiated
// session. Counters are running totals bumped as reviews land; Result is set
// only once the session is finished and is frozen from then on.
type ReviewSession struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status SessionStatus

	StartedAt time.Time
	// LastActivityAt moves with every recorded review; the stale-session
	// sweeper decides idleness by it, not by StartedAt.
	LastActivityAt time.Time
	FinishedAt     *time.Time

	CardsReviewed  int
	CorrectCount   int
	IncorrectCount int
	TotalTimeMs    int64
	QualitySum     int

	Result    *SessionSummary
	CreatedAt time.Time
}

// CardStats is the derived per-card statistics view.
type CardStats struct {
	TotalReviews        int
	AccuracyRate        float64
	AverageTimeMs       *int
	QualityDistribution [QualityMax + 1]int

	CurrentStatus LearningStatus
	EaseFactor    float64
	IntervalDays  int
	Repetitions   int
	Lapses        int
	NextReviewAt  time.Time
}

// SessionSummary holds the frozen aggregates of a finished session.
type SessionSummary struct {
	CardsReviewed   int     `json:"cards_reviewed"`
	CorrectCount    int     `json:"correct_count"`
	IncorrectCount  int     `json:"incorrect_count"`
	Accuracy        int     `json:"accuracy"`
	AverageQuality  float64 `json:"average_quality"`
	TotalTimeMs     int64   `json:"total_time_ms"`
	DurationMinutes int     `json:"duration_minutes"`
}
