package study

import (
	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
)

// GetQueueInput holds the parameters for fetching the review queue.
type GetQueueInput struct {
	Limit        int
	IncludeNew   bool
	NewCardLimit int
	CardType     *domain.CardType
}

// Validate checks all fields and collects all errors.
func (i *GetQueueInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.NewCardLimit < 0 || i.NewCardLimit > 100 {
		errs = append(errs, domain.FieldError{Field: "new_card_limit", Message: "must be between 0 and 100"})
	}
	if i.CardType != nil && !i.CardType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card_type", Message: "unknown card type"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewCardInput holds the parameters for submitting a review.
type ReviewCardInput struct {
	CardID         uuid.UUID
	Quality        domain.Quality
	ResponseTimeMs *int
	SessionID      *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Quality.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be an integer between 0 and 5"})
	}
	if i.ResponseTimeMs != nil && *i.ResponseTimeMs < 0 {
		errs = append(errs, domain.FieldError{Field: "response_time_ms", Message: "must be non-negative"})
	}
	if i.ResponseTimeMs != nil && *i.ResponseTimeMs > 600_000 {
		errs = append(errs, domain.FieldError{Field: "response_time_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	CardType      domain.CardType
	ContentID     string
	Front         string
	Back          string
	Pronunciation *string
	Example       *string
	AudioRef      *string
}

// Validate checks all fields and collects all errors.
func (i *CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if !i.CardType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card_type", Message: "unknown card type"})
	}
	if i.ContentID == "" {
		errs = append(errs, domain.FieldError{Field: "content_id", Message: "required"})
	}
	if i.Front == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	}
	if i.Back == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeleteCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetCardHistoryInput holds the parameters for fetching card review history.
type GetCardHistoryInput struct {
	CardID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *GetCardHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCardsInput holds the parameters for listing a user's cards.
type ListCardsInput struct {
	CardType *domain.CardType
	Status   *domain.LearningStatus
}

// Validate checks all fields and collects all errors.
func (i *ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.CardType != nil && !i.CardType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card_type", Message: "unknown card type"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FinishSessionInput holds the parameters for finishing a review session.
type FinishSessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *FinishSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetStatsInput holds the parameters for computing user statistics.
type GetStatsInput struct {
	ForecastDays int
	HistoryDays  int
}

// Validate checks all fields and collects all errors.
func (i *GetStatsInput) Validate() error {
	var errs []domain.FieldError

	if i.ForecastDays < 0 || i.ForecastDays > 365 {
		errs = append(errs, domain.FieldError{Field: "forecast_days", Message: "must be between 0 and 365"})
	}
	if i.HistoryDays < 0 || i.HistoryDays > 365 {
		errs = append(errs, domain.FieldError{Field: "history_days", Message: "must be between 0 and 365"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
