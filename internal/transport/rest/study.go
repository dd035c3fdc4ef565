package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/internal/service/study"
)

//go:generate moq -out study_service_mock_test.go -pkg rest . studyService

// studyService is the slice of the study service the HTTP layer needs.
type studyService interface {
	GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]domain.Card, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (domain.Card, error)

	CreateCard(ctx context.Context, input study.CreateCardInput) (domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.Card, error)
	ListCards(ctx context.Context, input study.ListCardsInput) ([]domain.Card, error)
	DeleteCard(ctx context.Context, input study.DeleteCardInput) error
	GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) ([]*domain.Review, int, error)
	GetCardStats(ctx context.Context, input study.GetCardHistoryInput) (domain.CardStats, error)

	StartSession(ctx context.Context) (*domain.ReviewSession, error)
	GetActiveSession(ctx context.Context) (*domain.ReviewSession, error)
	FinishActiveSession(ctx context.Context) (*domain.ReviewSession, error)
	FinishSession(ctx context.Context, input study.FinishSessionInput) (*domain.ReviewSession, error)
	AbandonSession(ctx context.Context) error
	ListSessions(ctx context.Context, limit, offset int) ([]*domain.ReviewSession, int, error)

	GetUserStats(ctx context.Context, input study.GetStatsInput) (domain.UserStats, error)
}

// StudyHandler serves the study API: queue, reviews, cards, sessions, stats.
type StudyHandler struct {
	svc studyService
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService) *StudyHandler {
	return &StudyHandler{svc: svc}
}

// GetQueue handles GET /api/v1/study/queue.
func (h *StudyHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	newLimit, err := queryInt(r, "new_card_limit", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	includeNew, err := queryBool(r, "include_new", true)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	input := study.GetQueueInput{
		Limit:        limit,
		IncludeNew:   includeNew,
		NewCardLimit: newLimit,
		CardType:     cardTypeParam(r),
	}

	cards, err := h.svc.GetStudyQueue(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardResponses(cards),
		"count": len(cards),
	})
}

type submitReviewRequest struct {
	CardID         uuid.UUID  `json:"card_id"`
	Quality        int        `json:"quality"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty"`
	SessionID      *uuid.UUID `json:"session_id,omitempty"`
}

// SubmitReview handles POST /api/v1/study/reviews.
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	input := study.ReviewCardInput{
		CardID:         req.CardID,
		Quality:        domain.Quality(req.Quality),
		ResponseTimeMs: req.ResponseTimeMs,
		SessionID:      req.SessionID,
	}

	card, err := h.svc.ReviewCard(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// cardTypeParam reads the optional card_type query parameter. Validation of
// the value happens in the service layer.
func cardTypeParam(r *http.Request) *domain.CardType {
	raw := r.URL.Query().Get("card_type")
	if raw == "" {
		return nil
	}
	ct := domain.CardType(raw)
	return &ct
}
