package http

import (
	"net/http"

	"ptoshare-backend/internal/service"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

func (h *StatsHandler) Platform(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.GetPlatformStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) Companies(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.ListCompanyStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) TopDonors(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	donors, err := h.statsSvc.ListTopDonors(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, donors)
}
