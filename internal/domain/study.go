package domain

import "time"

// SRSConfig holds the spaced-repetition policy constants (pure domain type).
// The mastered thresholds are policy, not law — see config defaults.
type SRSConfig struct {
	InitialEaseFactor    float64
	MinEaseFactor        float64
	FirstInterval        int // days after the 1st consecutive success
	SecondInterval       int // days after the 2nd consecutive success
	LapseInterval        int // days after any failure
	MasteredIntervalDays int
	MasteredRepetitions  int
	RetentionWindow      int // recent reviews counted for retention rate
	MaxQueueSize         int
	NewCardsPerSession   int
}

// SRSUpdateParams holds the scheduling fields written back to a card
// after review processing.
type SRSUpdateParams struct {
	Status         LearningStatus
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	Streak         int
	Lapses         int
	NextReviewAt   time.Time
	LastReviewAt   time.Time
	QualityHistory []Quality
}

// CardFilter narrows card listings.
type CardFilter struct {
	CardType *CardType
	Status   *LearningStatus
}

// CardStatusCounts holds the count of cards per lifecycle status.
type CardStatusCounts struct {
	New      int
	Learning int
	Review   int
	Mastered int
	Total    int
}

// UserStats is the derived statistics view, recomputable at any time from
// cards and review history.
type UserStats struct {
	StatusCounts CardStatusCounts

	DueToday    int
	DueThisWeek int
	Overdue     int

	AverageEaseFactor float64
	// RetentionRate is a percentage in [0, 100]: the share of the most
	// recent reviews (retention window) rated successful. 0 with no reviews.
	RetentionRate float64

	CurrentStreak int
	LongestStreak int

	ReviewsToday     int
	ReviewsThisWeek  int
	ReviewsThisMonth int
	TotalTimeMs      int64

	DailyHistory []DayReviewCount
	Forecast     []DayDueCount
}

// DayReviewCount holds the review count for a specific calendar day.
type DayReviewCount struct {
	Date  time.Time
	Count int
}

// DayDueCount holds the number of cards coming due on a specific day.
type DayDueCount struct {
	Date  time.Time
	Count int
}
