package study

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/pkg/ctxutil"
)

// ReviewCard records a review and advances the card's scheduling state.
//
// The SM-2 computation itself is pure (ProcessReview); this method owns the
// boundary work: validation before any mutation, and a single transaction that
// writes the card update, the append-only review record, and — when the review
// belongs to a session — the session's running counters. Nothing is partially
// applied: if any write fails the card stays on its previous schedule.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	now := s.now()

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get card: %w", err)
	}

	prevState := card.Snapshot()

	out := ProcessReview(SM2Input{
		Status:       card.Status,
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetitions:  card.Repetitions,
		Streak:       card.Streak,
		Lapses:       card.Lapses,
		Quality:      input.Quality,
		Now:          now,
		Config:       s.srsConfig,
	})

	history := append(slices.Clone(card.QualityHistory), input.Quality)

	var updated domain.Card

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.cards.UpdateSRS(txCtx, userID, card.ID, domain.SRSUpdateParams{
			Status:         out.Status,
			EaseFactor:     out.EaseFactor,
			IntervalDays:   out.IntervalDays,
			Repetitions:    out.Repetitions,
			Streak:         out.Streak,
			Lapses:         out.Lapses,
			NextReviewAt:   out.NextReviewAt,
			LastReviewAt:   out.LastReviewAt,
			QualityHistory: history,
		})
		if updateErr != nil {
			return fmt.Errorf("update card: %w", updateErr)
		}

		_, logErr := s.reviews.Create(txCtx, &domain.Review{
			ID:             uuid.New(),
			CardID:         card.ID,
			UserID:         userID,
			SessionID:      input.SessionID,
			Quality:        input.Quality,
			ResponseTimeMs: input.ResponseTimeMs,
			PrevState:      prevState,
			NewState:       updated.Snapshot(),
			ReviewedAt:     now,
		})
		if logErr != nil {
			return fmt.Errorf("create review record: %w", logErr)
		}

		if input.SessionID != nil {
			responseTime := 0
			if input.ResponseTimeMs != nil {
				responseTime = *input.ResponseTimeMs
			}
			if recErr := s.sessions.RecordReview(txCtx, userID, *input.SessionID, input.Quality, responseTime); recErr != nil {
				return fmt.Errorf("record review in session: %w", recErr)
			}
		}

		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.Int("quality", int(input.Quality)),
		slog.String("old_status", string(card.Status)),
		slog.String("new_status", string(updated.Status)),
		slog.Int("interval_days", updated.IntervalDays),
	)

	return updated, nil
}
