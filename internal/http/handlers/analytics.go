package handlers

import (
	"net/http"

	"placecell/internal/app"
	"placecell/internal/http/response"
)

type AnalyticsHandler struct {
	analytics *app.AnalyticsService
}

func NewAnalyticsHandler(analytics *app.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) PlacementSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.PlacementSummary(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) InternshipStatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.analytics.InternshipStatusCounts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, counts)
}

func (h *AnalyticsHandler) CompanyPlacementCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.analytics.CompanyPlacementCounts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, counts)
}
