package rest

import "net/http"

// NewRouter registers all HTTP routes on a fresh mux. Method-and-path
// patterns require Go 1.22+.
func NewRouter(studyH *StudyHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/v1/study/queue", studyH.GetQueue)
	mux.HandleFunc("POST /api/v1/study/reviews", studyH.SubmitReview)

	mux.HandleFunc("POST /api/v1/sessions", studyH.StartSession)
	mux.HandleFunc("GET /api/v1/sessions", studyH.ListSessions)
	mux.HandleFunc("GET /api/v1/sessions/active", studyH.GetActiveSession)
	mux.HandleFunc("DELETE /api/v1/sessions/active", studyH.AbandonSession)
	mux.HandleFunc("POST /api/v1/sessions/active/finish", studyH.FinishActiveSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/finish", studyH.FinishSession)

	mux.HandleFunc("GET /api/v1/stats", studyH.GetStats)

	mux.HandleFunc("POST /api/v1/cards", studyH.CreateCard)
	mux.HandleFunc("GET /api/v1/cards", studyH.ListCards)
	mux.HandleFunc("GET /api/v1/cards/{id}", studyH.GetCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", studyH.DeleteCard)
	mux.HandleFunc("GET /api/v1/cards/{id}/history", studyH.GetCardHistory)
	mux.HandleFunc("GET /api/v1/cards/{id}/stats", studyH.GetCardStats)

	return mux
}
