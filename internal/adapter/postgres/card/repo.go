// Package card implements the Card repository using PostgreSQL.
// Fixed queries use raw SQL constants; listing and queue selection build
// their WHERE clauses dynamically with squirrel.
package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/linguahub/srs-backend/internal/adapter/postgres"
	"github.com/linguahub/srs-backend/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const cardColumns = `id, user_id, card_type, content_id, front, back, pronunciation, example, audio_ref,
status, ease_factor, interval_days, repetitions, streak, lapses,
next_review_at, last_review_at, quality_history, created_at, updated_at`

const createSQL = `
INSERT INTO cards (id, user_id, card_type, content_id, front, back, pronunciation, example, audio_ref,
                   status, ease_factor, next_review_at, quality_history, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE id = $1 AND user_id = $2`

const getByContentSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND card_type = $2 AND content_id = $3`

const deleteSQL = `
DELETE FROM cards
WHERE id = $1 AND user_id = $2`

const updateSRSSQL = `
UPDATE cards
SET status = $3, ease_factor = $4, interval_days = $5, repetitions = $6, streak = $7, lapses = $8,
    next_review_at = $9, last_review_at = $10, quality_history = $11, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + cardColumns

const countByStatusSQL = `
SELECT status, count(*)
FROM cards
WHERE user_id = $1
GROUP BY status`

const countDueBeforeSQL = `
SELECT count(*)
FROM cards
WHERE user_id = $1 AND status != 'NEW' AND next_review_at < $2`

const countDueBetweenSQL = `
SELECT count(*)
FROM cards
WHERE user_id = $1 AND status != 'NEW' AND next_review_at >= $2 AND next_review_at < $3`

// NEW cards all carry the initial ease, so they are excluded from the average.
const averageEaseSQL = `
SELECT COALESCE(avg(ease_factor), 0)
FROM cards
WHERE user_id = $1 AND status != 'NEW'`

const dueCountsByDaySQL = `
SELECT (next_review_at AT TIME ZONE $4)::date AS day, count(*)
FROM cards
WHERE user_id = $1 AND status != 'NEW' AND next_review_at >= $2 AND next_review_at < $3
GROUP BY day
ORDER BY day`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key filtered by user_id.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	card, err := scanCard(querier.QueryRow(ctx, getByIDSQL, cardID, userID))
	if err != nil {
		return domain.Card{}, mapError(err, "card", cardID)
	}
	return card, nil
}

// GetByContent returns the card for a (card_type, content_id) pair.
func (r *Repo) GetByContent(ctx context.Context, userID uuid.UUID, cardType domain.CardType, contentID string) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	card, err := scanCard(querier.QueryRow(ctx, getByContentSQL, userID, string(cardType), contentID))
	if err != nil {
		return domain.Card{}, mapError(err, "card", uuid.Nil)
	}
	return card, nil
}

// List returns the user's cards, optionally filtered by type and status,
// newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.Select(cardColumns).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.CardType != nil {
		q = q.Where(sq.Eq{"card_type": string(*filter.CardType)})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetDueCards returns non-NEW cards whose next_review_at has arrived, most
// overdue first. Ties are broken by content_id so the queue is deterministic.
func (r *Repo) GetDueCards(ctx context.Context, userID uuid.UUID, now time.Time, limit int, cardType *domain.CardType) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.Select(cardColumns).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"status": string(domain.LearningStatusNew)}).
		Where(sq.LtOrEq{"next_review_at": now}).
		OrderBy("next_review_at ASC", "content_id ASC").
		Limit(uint64(limit))

	if cardType != nil {
		q = q.Where(sq.Eq{"card_type": string(*cardType)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due cards query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetNewCards returns NEW cards in creation order.
func (r *Repo) GetNewCards(ctx context.Context, userID uuid.UUID, limit int, cardType *domain.CardType) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.Select(cardColumns).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"status": string(domain.LearningStatusNew)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit))

	if cardType != nil {
		q = q.Where(sq.Eq{"card_type": string(*cardType)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build new cards query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get new cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new card and returns the persisted domain.Card.
// A unique constraint on (user_id, card_type, content_id) makes a duplicate
// insert return domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	historyJSON, err := marshalHistory(card.QualityHistory)
	if err != nil {
		return domain.Card{}, fmt.Errorf("card %s: %w", card.ID, err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		card.ID,
		card.UserID,
		string(card.CardType),
		card.ContentID,
		card.Front,
		card.Back,
		card.Pronunciation,
		card.Example,
		card.AudioRef,
		string(card.Status),
		card.EaseFactor,
		card.NextReviewAt.UTC().Truncate(time.Microsecond),
		historyJSON,
		now,
	)

	created, err := scanCard(row)
	if err != nil {
		return domain.Card{}, mapError(err, "card", card.ID)
	}
	return created, nil
}

// UpdateSRS writes the scheduling fields computed by review processing.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	historyJSON, err := marshalHistory(params.QualityHistory)
	if err != nil {
		return domain.Card{}, fmt.Errorf("card %s: %w", cardID, err)
	}

	row := querier.QueryRow(ctx, updateSRSSQL,
		cardID,
		userID,
		string(params.Status),
		params.EaseFactor,
		params.IntervalDays,
		params.Repetitions,
		params.Streak,
		params.Lapses,
		params.NextReviewAt.UTC().Truncate(time.Microsecond),
		params.LastReviewAt.UTC().Truncate(time.Microsecond),
		historyJSON,
	)

	updated, err := scanCard(row)
	if err != nil {
		return domain.Card{}, mapError(err, "card", cardID)
	}
	return updated, nil
}

// Delete removes a card; its reviews go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, cardID, userID)
	if err != nil {
		return mapError(err, "card", cardID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Aggregation
// ---------------------------------------------------------------------------

// CountByStatus returns the number of cards per lifecycle status.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return domain.CardStatusCounts{}, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	var counts domain.CardStatusCounts
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return domain.CardStatusCounts{}, fmt.Errorf("count by status: %w", err)
		}
		switch domain.LearningStatus(status) {
		case domain.LearningStatusNew:
			counts.New = count
		case domain.LearningStatusLearning:
			counts.Learning = count
		case domain.LearningStatusReview:
			counts.Review = count
		case domain.LearningStatusMastered:
			counts.Mastered = count
		}
		counts.Total += count
	}
	if err := rows.Err(); err != nil {
		return domain.CardStatusCounts{}, fmt.Errorf("count by status: %w", err)
	}

	return counts, nil
}

// CountDueBefore counts scheduled cards due strictly before the given time.
func (r *Repo) CountDueBefore(ctx context.Context, userID uuid.UUID, before time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueBeforeSQL, userID, before).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due before: %w", err)
	}
	return count, nil
}

// CountDueBetween counts scheduled cards due in [from, to).
func (r *Repo) CountDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countDueBetweenSQL, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due between: %w", err)
	}
	return count, nil
}

// AverageEase returns the mean ease factor across the user's scheduled cards.
func (r *Repo) AverageEase(ctx context.Context, userID uuid.UUID) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var avg float64
	if err := querier.QueryRow(ctx, averageEaseSQL, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average ease: %w", err)
	}
	return avg, nil
}

// DueCountsByDay returns per-day counts of cards coming due in [from, to),
// bucketed by calendar day in the given timezone. Days with no due cards are
// absent from the result.
func (r *Repo) DueCountsByDay(ctx context.Context, userID uuid.UUID, from, to time.Time, tz string) ([]domain.DayDueCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, dueCountsByDaySQL, userID, from, to, tz)
	if err != nil {
		return nil, fmt.Errorf("due counts by day: %w", err)
	}
	defer rows.Close()

	var counts []domain.DayDueCount
	for rows.Next() {
		var c domain.DayDueCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("due counts by day: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("due counts by day: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (domain.Card, error) {
	var (
		card        domain.Card
		cardType    string
		status      string
		historyJSON []byte
	)

	err := row.Scan(
		&card.ID,
		&card.UserID,
		&cardType,
		&card.ContentID,
		&card.Front,
		&card.Back,
		&card.Pronunciation,
		&card.Example,
		&card.AudioRef,
		&status,
		&card.EaseFactor,
		&card.IntervalDays,
		&card.Repetitions,
		&card.Streak,
		&card.Lapses,
		&card.NextReviewAt,
		&card.LastReviewAt,
		&historyJSON,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return domain.Card{}, err
	}

	card.CardType = domain.CardType(cardType)
	card.Status = domain.LearningStatus(status)

	history, err := unmarshalHistory(historyJSON)
	if err != nil {
		return domain.Card{}, fmt.Errorf("card %s: %w", card.ID, err)
	}
	card.QualityHistory = history

	return card, nil
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for the quality history
// ---------------------------------------------------------------------------

// marshalHistory converts the quality history to JSON bytes for JSONB storage.
// An empty history is stored as an empty array, never NULL.
func marshalHistory(history []domain.Quality) ([]byte, error) {
	if history == nil {
		history = []domain.Quality{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal quality history: %w", err)
	}
	return data, nil
}

func unmarshalHistory(data []byte) ([]domain.Quality, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var history []domain.Quality
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("unmarshal quality history: %w", err)
	}
	return history, nil
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
