package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/pkg/ctxutil"
)

// CreateCard creates a study card for a piece of learnable content. At most
// one card may exist per (user, card_type, content_id).
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	now := s.now()

	card := domain.Card{
		ID:            uuid.New(),
		UserID:        userID,
		CardType:      input.CardType,
		ContentID:     input.ContentID,
		Front:         input.Front,
		Back:          input.Back,
		Pronunciation: input.Pronunciation,
		Example:       input.Example,
		AudioRef:      input.AudioRef,
		Status:        domain.LearningStatusNew,
		EaseFactor:    s.srsConfig.InitialEaseFactor,
		// NEW cards are due immediately.
		NextReviewAt: now,
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Card{}, fmt.Errorf("card for %s/%s: %w", input.CardType, input.ContentID, domain.ErrAlreadyExists)
		}
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", created.ID.String()),
		slog.String("card_type", string(created.CardType)),
		slog.String("content_id", created.ContentID),
	)

	return created, nil
}

// GetCard returns a single card owned by the user.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return domain.Card{}, domain.NewValidationError("card_id", "required")
	}

	card, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// ListCards returns the user's cards, optionally filtered by type and status.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, userID, domain.CardFilter{
		CardType: input.CardType,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}

// DeleteCard deletes a card. Its review history goes with it (CASCADE).
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, userID, input.CardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}

// GetCardHistory returns the review history of a card with pagination,
// newest first.
func (s *Service) GetCardHistory(ctx context.Context, input GetCardHistoryInput) ([]*domain.Review, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	// Check ownership
	if _, err := s.cards.GetByID(ctx, userID, input.CardID); err != nil {
		return nil, 0, fmt.Errorf("get card: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	reviews, total, err := s.reviews.GetByCardID(ctx, input.CardID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get reviews: %w", err)
	}

	return reviews, total, nil
}

// GetCardStats returns aggregated statistics for a single card.
func (s *Service) GetCardStats(ctx context.Context, input GetCardHistoryInput) (domain.CardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CardStats{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.CardStats{}, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return domain.CardStats{}, fmt.Errorf("get card: %w", err)
	}

	// Load the full history (limit=0 means no limit).
	reviews, total, err := s.reviews.GetByCardID(ctx, input.CardID, 0, 0)
	if err != nil {
		return domain.CardStats{}, fmt.Errorf("get reviews: %w", err)
	}

	stats := domain.CardStats{
		TotalReviews:  total,
		CurrentStatus: card.Status,
		EaseFactor:    card.EaseFactor,
		IntervalDays:  card.IntervalDays,
		Repetitions:   card.Repetitions,
		Lapses:        card.Lapses,
		NextReviewAt:  card.NextReviewAt,
	}

	if total == 0 {
		return stats, nil
	}

	successes := 0
	totalTime := 0
	timed := 0
	for _, r := range reviews {
		stats.QualityDistribution[r.Quality]++
		if r.Quality.IsSuccess() {
			successes++
		}
		if r.ResponseTimeMs != nil {
			totalTime += *r.ResponseTimeMs
			timed++
		}
	}

	stats.AccuracyRate = float64(successes) / float64(total) * 100
	if timed > 0 {
		avg := totalTime / timed
		stats.AverageTimeMs = &avg
	}

	return stats, nil
}
