package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguahub/srs-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCard creates a NEW vocabulary card for the user and returns it.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	card := domain.Card{
		ID:           uuid.New(),
		UserID:       userID,
		CardType:     domain.CardTypeVocabulary,
		ContentID:    "content-" + suffix,
		Front:        "front-" + suffix,
		Back:         "back-" + suffix,
		Status:       domain.LearningStatusNew,
		EaseFactor:   2.5,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	insertCard(t, pool, card)
	return card
}

// SeedDueCard creates a REVIEW-status card that became due `overdue` ago.
func SeedDueCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, overdue time.Duration) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	last := now.Add(-overdue).AddDate(0, 0, -6)

	card := domain.Card{
		ID:             uuid.New(),
		UserID:         userID,
		CardType:       domain.CardTypeVocabulary,
		ContentID:      "content-" + suffix,
		Front:          "front-" + suffix,
		Back:           "back-" + suffix,
		Status:         domain.LearningStatusReview,
		EaseFactor:     2.5,
		IntervalDays:   6,
		Repetitions:    2,
		Streak:         2,
		NextReviewAt:   now.Add(-overdue),
		LastReviewAt:   &last,
		QualityHistory: []domain.Quality{4, 4},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	insertCard(t, pool, card)
	return card
}

func insertCard(t *testing.T, pool *pgxpool.Pool, card domain.Card) {
	t.Helper()
	ctx := context.Background()

	history, err := json.Marshal(card.QualityHistory)
	if err != nil {
		t.Fatalf("testhelper: marshal quality history: %v", err)
	}
	if card.QualityHistory == nil {
		history = []byte("[]")
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO cards (id, user_id, card_type, content_id, front, back, status,
		                    ease_factor, interval_days, repetitions, streak, lapses,
		                    next_review_at, last_review_at, quality_history, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		card.ID, card.UserID, string(card.CardType), card.ContentID, card.Front, card.Back, string(card.Status),
		card.EaseFactor, card.IntervalDays, card.Repetitions, card.Streak, card.Lapses,
		card.NextReviewAt, card.LastReviewAt, history, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert card: %v", err)
	}
}

// SeedSession creates an ACTIVE review session for the user.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ReviewSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.ReviewSession{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         domain.SessionStatusActive,
		StartedAt:      now,
		LastActivityAt: now,
		CreatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO study_sessions (id, user_id, status, started_at, last_activity_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.UserID, string(session.Status), session.StartedAt, session.LastActivityAt, session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert session: %v", err)
	}

	return session
}

// SeedReview appends a review record for the card at the given time.
func SeedReview(t *testing.T, pool *pgxpool.Pool, card domain.Card, quality domain.Quality, reviewedAt time.Time) domain.Review {
	t.Helper()
	ctx := context.Background()

	snapshot := card.Snapshot()
	snapJSON, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("testhelper: marshal snapshot: %v", err)
	}

	review := domain.Review{
		ID:         uuid.New(),
		CardID:     card.ID,
		UserID:     card.UserID,
		Quality:    quality,
		PrevState:  snapshot,
		NewState:   snapshot,
		ReviewedAt: reviewedAt.UTC().Truncate(time.Microsecond),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO reviews (id, card_id, user_id, quality, prev_state, new_state, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		review.ID, review.CardID, review.UserID, int(review.Quality), snapJSON, snapJSON, review.ReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert review: %v", err)
	}

	return review
}
