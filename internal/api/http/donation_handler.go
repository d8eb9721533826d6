package http

import (
	"net/http"

	"ptoshare-backend/internal/service"
)

type DonationHandler struct {
	donationSvc service.DonationService
}

func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

type donateRequest struct {
	RequestID int32  `json:"request_id"`
	Hours     int32  `json:"hours"`
	Message   string `json:"message,omitempty"`
}

// Donate records a donation from the authenticated user.
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	donorID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req donateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	receipt, err := h.donationSvc.Donate(r.Context(), donorID, req.RequestID, req.Hours, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	donorID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	donations, err := h.donationSvc.ListMine(r.Context(), donorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, donations)
}
