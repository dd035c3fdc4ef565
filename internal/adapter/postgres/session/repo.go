// Package session implements the ReviewSession repository using PostgreSQL.
// The frozen result column is JSONB; the running counters are plain columns
// bumped by a guarded UPDATE so they can only move while the session is ACTIVE.
package session

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

// Repo provides review session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, status, started_at, last_activity_at,
finished_at, cards_reviewed, correct_count, incorrect_count, total_time_ms,
quality_sum, result, created_at`

const createSQL = `
INSERT INTO study_sessions (id, user_id, status, started_at, last_activity_at, created_at)
VALUES ($1, $2, $3, $4, $4, $5)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

const getActiveSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1 AND status = 'ACTIVE'`

const recordReviewSQL = `
UPDATE study_sessions
SET cards_reviewed = cards_reviewed + 1,
    correct_count = correct_count + $3,
    incorrect_count = incorrect_count + $4,
    total_time_ms = total_time_ms + $5,
    quality_sum = quality_sum + $6,
    last_activity_at = now()
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`

const finishSQL = `
UPDATE study_sessions
SET status = 'FINISHED', finished_at = now(), result = $3
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'
RETURNING ` + sessionColumns

const abandonSQL = `
UPDATE study_sessions
SET status = 'ABANDONED', finished_at = now()
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`

const abandonStaleSQL = `
UPDATE study_sessions
SET status = 'ABANDONED', finished_at = now()
WHERE status = 'ACTIVE' AND last_activity_at < $1`

const countByUserIDSQL = `
SELECT count(*) FROM study_sessions WHERE user_id = $1`

const listByUserIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, mapError(err, "session", sessionID)
	}
	return session, nil
}

// GetActive returns the current ACTIVE session for a user.
// Returns domain.ErrNotFound if no active session exists.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getActiveSQL, userID))
	if err != nil {
		return nil, mapError(err, "session", uuid.Nil)
	}
	return session, nil
}

// List returns sessions for a user with pagination (ordered by created_at DESC).
// Returns sessions, total count, and error.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ReviewSession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByUserIDSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions by user_id: %w", err)
	}

	rows, err := querier.Query(ctx, listByUserIDSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new review session and returns the persisted domain.ReviewSession.
// A partial unique index allows only one ACTIVE session per user; attempting
// to create a second one results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	startedAt := session.StartedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		string(session.Status),
		startedAt,
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "session", session.ID)
	}
	return created, nil
}

// RecordReview bumps the session's running counters for one submitted review
// and refreshes last_activity_at, keeping a busy session out of the stale
// sweep. The update is guarded on status = 'ACTIVE': recording against a
// closed or missing session affects zero rows and returns domain.ErrConflict,
// which rolls back the surrounding review transaction.
func (r *Repo) RecordReview(ctx context.Context, userID, sessionID uuid.UUID, quality domain.Quality, responseTimeMs int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	correct, incorrect := 0, 1
	if quality.IsSuccess() {
		correct, incorrect = 1, 0
	}

	ct, err := querier.Exec(ctx, recordReviewSQL,
		sessionID,
		userID,
		correct,
		incorrect,
		responseTimeMs,
		int(quality),
	)
	if err != nil {
		return mapError(err, "session", sessionID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s is not active: %w", sessionID, domain.ErrConflict)
	}
	return nil
}

// Finish completes an ACTIVE session, setting its status to FINISHED and
// freezing the result. Returns domain.ErrNotFound if the session does not
// exist, belongs to another user, or is not ACTIVE.
func (r *Repo) Finish(ctx context.Context, userID, sessionID uuid.UUID, result domain.SessionSummary) (*domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("session %s: marshal result: %w", sessionID, err)
	}

	finished, err := scanSession(querier.QueryRow(ctx, finishSQL, sessionID, userID, resultJSON))
	if err != nil {
		return nil, mapError(err, "session", sessionID)
	}
	return finished, nil
}

// Abandon marks an ACTIVE session as ABANDONED.
// Returns domain.ErrNotFound if the session does not exist, belongs to another
// user, or is not ACTIVE.
func (r *Repo) Abandon(ctx context.Context, userID, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, abandonSQL, sessionID, userID)
	if err != nil {
		return mapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}
	return nil
}

// AbandonStale abandons every ACTIVE session whose last activity precedes the
// cutoff, across all users. A session kept busy by reviews never matches, no
// matter how long ago it started. Returns the number of sessions abandoned.
func (r *Repo) AbandonStale(ctx context.Context, cutoff time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, abandonStaleSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.ReviewSession, error) {
	var (
		session    domain.ReviewSession
		status     string
		resultJSON []byte
	)

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&status,
		&session.StartedAt,
		&session.LastActivityAt,
		&session.FinishedAt,
		&session.CardsReviewed,
		&session.CorrectCount,
		&session.IncorrectCount,
		&session.TotalTimeMs,
		&session.QualitySum,
		&resultJSON,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Status = domain.SessionStatus(status)

	if len(resultJSON) > 0 {
		var result domain.SessionSummary
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("session %s: unmarshal result: %w", session.ID, err)
		}
		session.Result = &result
	}

	return &session, nil
}

func scanSessions(rows pgx.Rows) ([]*domain.ReviewSession, error) {
	var sessions []*domain.ReviewSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []*domain.ReviewSession{}
	}
	return sessions, nil
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
