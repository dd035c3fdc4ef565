// Package review implements the append-only Review repository using
// PostgreSQL. Reviews are never updated or deleted individually; the card
// state snapshots are stored as JSONB.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/linguahub/srs-backend/internal/adapter/postgres"
	"github.com/linguahub/srs-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reviewColumns = `id, card_id, user_id, session_id, quality, response_time_ms, prev_state, new_state, reviewed_at`

const createSQL = `
INSERT INTO reviews (id, card_id, user_id, session_id, quality, response_time_ms, prev_state, new_state, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + reviewColumns

const getByCardIDSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE card_id = $1
ORDER BY reviewed_at DESC
LIMIT $2 OFFSET $3`

const getByCardIDAllSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE card_id = $1
ORDER BY reviewed_at DESC`

const countByCardIDSQL = `
SELECT count(*) FROM reviews WHERE card_id = $1`

const getRecentSQL = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE user_id = $1
ORDER BY reviewed_at DESC
LIMIT $2`

const countSinceSQL = `
SELECT count(*) FROM reviews WHERE user_id = $1 AND reviewed_at >= $2`

const totalResponseTimeSQL = `
SELECT COALESCE(sum(response_time_ms), 0) FROM reviews WHERE user_id = $1`

const dayCountsSQL = `
SELECT (reviewed_at AT TIME ZONE $2)::date AS day, count(*)
FROM reviews
WHERE user_id = $1
GROUP BY day
ORDER BY day DESC`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends a review record and returns the persisted domain.Review.
func (r *Repo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	prevJSON, err := json.Marshal(review.PrevState)
	if err != nil {
		return nil, fmt.Errorf("review %s: marshal prev state: %w", review.ID, err)
	}
	newJSON, err := json.Marshal(review.NewState)
	if err != nil {
		return nil, fmt.Errorf("review %s: marshal new state: %w", review.ID, err)
	}

	row := querier.QueryRow(ctx, createSQL,
		review.ID,
		review.CardID,
		review.UserID,
		review.SessionID,
		int(review.Quality),
		review.ResponseTimeMs,
		prevJSON,
		newJSON,
		review.ReviewedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanReview(row)
	if err != nil {
		return nil, mapError(err, "review", review.ID)
	}
	return created, nil
}

// GetByCardID returns a card's reviews newest first with pagination.
// limit=0 means no limit. Returns reviews, total count, and error.
func (r *Repo) GetByCardID(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.Review, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByCardIDSQL, cardID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews by card_id: %w", err)
	}

	var (
		rows pgx.Rows
		err  error
	)
	if limit == 0 {
		rows, err = querier.Query(ctx, getByCardIDAllSQL, cardID)
	} else {
		rows, err = querier.Query(ctx, getByCardIDSQL, cardID, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("get reviews by card_id: %w", err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("get reviews by card_id: %w", err)
	}

	return reviews, total, nil
}

// GetRecent returns the user's most recent reviews across all cards.
func (r *Repo) GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Review, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getRecentSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent reviews: %w", err)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, fmt.Errorf("get recent reviews: %w", err)
	}
	return reviews, nil
}

// CountSince counts the user's reviews submitted at or after the given time.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSinceSQL, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews since: %w", err)
	}
	return count, nil
}

// TotalResponseTime returns the sum of recorded response times in milliseconds.
func (r *Repo) TotalResponseTime(ctx context.Context, userID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int64
	if err := querier.QueryRow(ctx, totalResponseTimeSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total response time: %w", err)
	}
	return total, nil
}

// DayCounts returns per-day review counts bucketed by calendar day in the
// given timezone, most recent day first. Days without reviews are absent.
func (r *Repo) DayCounts(ctx context.Context, userID uuid.UUID, tz string) ([]domain.DayReviewCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dayCountsSQL, userID, tz)
	if err != nil {
		return nil, fmt.Errorf("day counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.DayReviewCount
	for rows.Next() {
		var c domain.DayReviewCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("day counts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day counts: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReview(row pgx.Row) (*domain.Review, error) {
	var (
		review   domain.Review
		quality  int
		prevJSON []byte
		newJSON  []byte
	)

	err := row.Scan(
		&review.ID,
		&review.CardID,
		&review.UserID,
		&review.SessionID,
		&quality,
		&review.ResponseTimeMs,
		&prevJSON,
		&newJSON,
		&review.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Quality = domain.Quality(quality)

	if err := json.Unmarshal(prevJSON, &review.PrevState); err != nil {
		return nil, fmt.Errorf("review %s: unmarshal prev state: %w", review.ID, err)
	}
	if err := json.Unmarshal(newJSON, &review.NewState); err != nil {
		return nil, fmt.Errorf("review %s: unmarshal new state: %w", review.ID, err)
	}

	return &review, nil
}

func scanReviews(rows pgx.Rows) ([]*domain.Review, error) {
	var reviews []*domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if reviews == nil {
		reviews = []*domain.Review{}
	}
	return reviews, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
