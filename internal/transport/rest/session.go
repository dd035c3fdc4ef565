package rest

import (
	"net/http"

	"github.com/linguahub/srs-backend/internal/service/study"
)

// StartSession handles POST /api/v1/sessions. Starting while a session is
// already active returns the existing one, so the endpoint is idempotent.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.StartSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// GetActiveSession handles GET /api/v1/sessions/active.
func (h *StudyHandler) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetActiveSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"session": toSessionResponse(session)})
}

// FinishActiveSession handles POST /api/v1/sessions/active/finish.
func (h *StudyHandler) FinishActiveSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.FinishActiveSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// FinishSession handles POST /api/v1/sessions/{id}/finish.
func (h *StudyHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "id")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	session, err := h.svc.FinishSession(r.Context(), study.FinishSessionInput{SessionID: sessionID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// AbandonSession handles DELETE /api/v1/sessions/active. Abandoning with no
// active session is a no-op.
func (h *StudyHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AbandonSession(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSessions handles GET /api/v1/sessions.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
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

	// Normalize here so the envelope echoes the page size actually used.
	if limit <= 0 || limit > study.MaxListLimit {
		limit = study.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	sessions, total, err := h.svc.ListSessions(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		items[i] = toSessionResponse(s)
	}

	writeJSON(w, http.StatusOK, listResponse[sessionResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
