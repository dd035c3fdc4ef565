package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/pkg/ctxutil"
)

// GetActiveSession returns the user's active review session, or nil if none.
func (s *Service) GetActiveSession(ctx context.Context) (*domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return session, nil
}

// StartSession starts a new review session or returns the existing ACTIVE one
// (idempotent per user).
func (s *Service) StartSession(ctx context.Context) (*domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.sessions.GetActive(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check active session: %w", err)
	}

	session := &domain.ReviewSession{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    domain.SessionStatusActive,
		StartedAt: s.now(),
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		// Another request may have created a session between check and create.
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.sessions.GetActive(ctx, userID)
			if getErr != nil {
				return nil, fmt.Errorf("get active after race: %w", getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
	)

	return created, nil
}

// FinishActiveSession finishes the user's current ACTIVE session.
func (s *Service) FinishActiveSession(ctx context.Context) (*domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}

	return s.finishSession(ctx, userID, session)
}

// FinishSession finishes a specific session by ID.
func (s *Service) FinishSession(ctx context.Context, input FinishSessionInput) (*domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return s.finishSession(ctx, userID, session)
}

// finishSession freezes the running counters into a summary and closes the
// session. A session that is no longer ACTIVE is rejected without touching its
// frozen aggregates.
func (s *Service) finishSession(ctx context.Context, userID uuid.UUID, session *domain.ReviewSession) (*domain.ReviewSession, error) {
	if session.Status != domain.SessionStatusActive {
		return nil, fmt.Errorf("session %s already closed: %w", session.ID, domain.ErrConflict)
	}

	summary := summarize(session)

	finished, err := s.sessions.Finish(ctx, userID, session.ID, summary)
	if err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	s.log.InfoContext(ctx, "session finished",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("cards_reviewed", summary.CardsReviewed),
		slog.Int("accuracy", summary.Accuracy),
	)

	return finished, nil
}

// AbandonSession abandons the current ACTIVE session. Idempotent noop when no
// active session exists; already-applied reviews keep their effect on cards.
func (s *Service) AbandonSession(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get active session: %w", err)
	}

	if err := s.sessions.Abandon(ctx, userID, session.ID); err != nil {
		return fmt.Errorf("abandon session: %w", err)
	}

	s.log.InfoContext(ctx, "session abandoned",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
	)

	return nil
}

// ListSessions returns the user's sessions (newest first) with pagination.
func (s *Service) ListSessions(ctx context.Context, limit, offset int) ([]*domain.ReviewSession, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.sessions.List(ctx, userID, limit, offset)
}

// SweepStaleSessions abandons ACTIVE sessions whose last activity is older
// than idleWindow. Run periodically by the background scheduler.
func (s *Service) SweepStaleSessions(ctx context.Context, idleWindow time.Duration) (int, error) {
	cutoff := s.now().Add(-idleWindow)

	swept, err := s.sessions.AbandonStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("abandon stale sessions: %w", err)
	}

	if swept > 0 {
		s.log.InfoContext(ctx, "stale sessions abandoned", slog.Int("count", swept))
	}

	return swept, nil
}

// summarize freezes a session's running counters into its final summary.
func summarize(session *domain.ReviewSession) domain.SessionSummary {
	summary := domain.SessionSummary{
		CardsReviewed:  session.CardsReviewed,
		CorrectCount:   session.CorrectCount,
		IncorrectCount: session.IncorrectCount,
		TotalTimeMs:    session.TotalTimeMs,
	}

	if session.CardsReviewed > 0 {
		summary.Accuracy = int(math.Round(float64(session.CorrectCount) / float64(session.CardsReviewed) * 100))
		summary.AverageQuality = float64(session.QualitySum) / float64(session.CardsReviewed)
	}
	summary.DurationMinutes = int(math.Round(float64(session.TotalTimeMs) / 60_000))

	return summary
}
