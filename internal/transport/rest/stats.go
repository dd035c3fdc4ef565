package rest

import (
	"net/http"

	"github.com/linguahub/srs-backend/internal/service/study"
)

// GetStats handles GET /api/v1/stats.
func (h *StudyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	forecastDays, err := queryInt(r, "forecast_days", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	historyDays, err := queryInt(r, "history_days", 0)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	input := study.GetStatsInput{
		ForecastDays: forecastDays,
		HistoryDays:  historyDays,
	}

	stats, err := h.svc.GetUserStats(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
