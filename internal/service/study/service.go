package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
	GetByContent(ctx context.Context, userID uuid.UUID, cardType domain.CardType, contentID string) (domain.Card, error)
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error

	GetDueCards(ctx context.Context, userID uuid.UUID, now time.Time, limit int, cardType *domain.CardType) ([]domain.Card, error)
	GetNewCards(ctx context.Context, userID uuid.UUID, limit int, cardType *domain.CardType) ([]domain.Card, error)
	UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (domain.Card, error)

	CountByStatus(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error)
	CountDueBefore(ctx context.Context, userID uuid.UUID, before time.Time) (int, error)
	CountDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	AverageEase(ctx context.Context, userID uuid.UUID) (float64, error)
	DueCountsByDay(ctx context.Context, userID uuid.UUID, from, to time.Time, tz string) ([]domain.DayDueCount, error)
}

type reviewRepo interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByCardID(ctx context.Context, cardID uuid.UUID, limit, offset int) ([]*domain.Review, int, error)
	GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Review, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	TotalResponseTime(ctx context.Context, userID uuid.UUID) (int64, error)
	DayCounts(ctx context.Context, userID uuid.UUID, tz string) ([]domain.DayReviewCount, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.ReviewSession) (*domain.ReviewSession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReviewSession, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.ReviewSession, error)
	RecordReview(ctx context.Context, userID, sessionID uuid.UUID, quality domain.Quality, responseTimeMs int) error
	Finish(ctx context.Context, userID, sessionID uuid.UUID, result domain.SessionSummary) (*domain.ReviewSession, error)
	Abandon(ctx context.Context, userID, sessionID uuid.UUID) error
	AbandonStale(ctx context.Context, cutoff time.Time) (int, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ReviewSession, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Pagination bounds shared by the list operations. Callers that echo a page
// size back (the REST envelope) apply the same normalization.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service implements the spaced-repetition scheduling logic: review
// processing, queue selection, session aggregation, and statistics.
type Service struct {
	cards     cardRepo
	reviews   reviewRepo
	sessions  sessionRepo
	tx        txManager
	log       *slog.Logger
	srsConfig domain.SRSConfig
	tz        *time.Location

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewService creates a new study service. tz is the timezone used for
// day-bucketed statistics; nil falls back to UTC.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewRepo,
	sessions sessionRepo,
	tx txManager,
	srsConfig domain.SRSConfig,
	tz *time.Location,
) *Service {
	if tz == nil {
		tz = time.UTC
	}
	return &Service{
		cards:     cards,
		reviews:   reviews,
		sessions:  sessions,
		tx:        tx,
		log:       log.With("service", "study"),
		srsConfig: srsConfig,
		tz:        tz,
		now:       time.Now,
	}
}
