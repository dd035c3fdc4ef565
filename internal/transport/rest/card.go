package rest

import (
	"encoding/json"
	"net/http"

	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/internal/service/study"
)

type createCardRequest struct {
	CardType      string  `json:"card_type"`
	ContentID     string  `json:"content_id"`
	Front         string  `json:"front"`
	Back          string  `json:"back"`
	Pronunciation *string `json:"pronunciation,omitempty"`
	Example       *string `json:"example,omitempty"`
	AudioRef      *string `json:"audio_ref,omitempty"`
}

// CreateCard handles POST /api/v1/cards.
func (h *StudyHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	input := study.CreateCardInput{
		CardType:      domain.CardType(req.CardType),
		ContentID:     req.ContentID,
		Front:         req.Front,
		Back:          req.Back,
		Pronunciation: req.Pronunciation,
		Example:       req.Example,
		AudioRef:      req.AudioRef,
	}

	card, err := h.svc.CreateCard(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// GetCard handles GET /api/v1/cards/{id}.
func (h *StudyHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	card, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// ListCards handles GET /api/v1/cards.
func (h *StudyHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	input := study.ListCardsInput{
		CardType: cardTypeParam(r),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.LearningStatus(raw)
		input.Status = &status
	}

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardResponses(cards),
		"count": len(cards),
	})
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *StudyHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.svc.DeleteCard(r.Context(), study.DeleteCardInput{CardID: cardID}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCardHistory handles GET /api/v1/cards/{id}/history.
func (h *StudyHandler) GetCardHistory(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	// An omitted limit falls back to the default page size; echo that, not 0.
	// Out-of-range values still fail input validation below.
	if limit == 0 {
		limit = study.DefaultListLimit
	}

	input := study.GetCardHistoryInput{CardID: cardID, Limit: limit, Offset: offset}
	reviews, total, err := h.svc.GetCardHistory(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]reviewResponse, len(reviews))
	for i, rev := range reviews {
		items[i] = toReviewResponse(rev)
	}

	writeJSON(w, http.StatusOK, listResponse[reviewResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetCardStats handles GET /api/v1/cards/{id}/stats.
func (h *StudyHandler) GetCardStats(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	stats, err := h.svc.GetCardStats(r.Context(), study.GetCardHistoryInput{CardID: cardID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardStatsResponse(stats))
}
