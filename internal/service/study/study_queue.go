package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/pkg/ctxutil"
)

// GetStudyQueue selects and orders the cards for one review session.
//
// Due cards (status other than NEW with next_review_at in the past) come
// first, most overdue leading; NEW cards fill the remaining slots in creation
// order when IncludeNew is set, capped by NewCardLimit. An empty queue is a
// normal result, not an error.
func (s *Service) GetStudyQueue(ctx context.Context, input GetQueueInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.srsConfig.MaxQueueSize
	}
	newLimit := input.NewCardLimit
	if newLimit == 0 {
		newLimit = s.srsConfig.NewCardsPerSession
	}

	now := s.now()

	dueCards, err := s.cards.GetDueCards(ctx, userID, now, limit, input.CardType)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	queue := dueCards
	if input.IncludeNew && len(dueCards) < limit {
		remaining := min(limit-len(dueCards), newLimit)
		if remaining > 0 {
			newCards, err := s.cards.GetNewCards(ctx, userID, remaining, input.CardType)
			if err != nil {
				return nil, fmt.Errorf("get new cards: %w", err)
			}
			queue = append(queue, newCards...)
		}
	}

	s.log.InfoContext(ctx, "study queue selected",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", len(dueCards)),
		slog.Int("new_count", len(queue)-len(dueCards)),
		slog.Int("total", len(queue)),
	)

	if queue == nil {
		queue = []domain.Card{}
	}

	return queue, nil
}
