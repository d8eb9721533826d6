package http

import (
	"net/http"

	"ptoshare-backend/internal/service"
)

type SupportRequestHandler struct {
	reqSvc service.SupportRequestService
}

func NewSupportRequestHandler(reqSvc service.SupportRequestService) *SupportRequestHandler {
	return &SupportRequestHandler{reqSvc: reqSvc}
}

type createSupportRequestRequest struct {
	HoursNeeded int32  `json:"hours_needed"`
	Urgency     string `json:"urgency"`
	Reason      string `json:"reason"`
}

func (h *SupportRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req createSupportRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.reqSvc.CreateRequest(r.Context(), userID, req.HoursNeeded, req.Urgency, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *SupportRequestHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	requests, err := h.reqSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *SupportRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	requests, err := h.reqSvc.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *SupportRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := h.reqSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *SupportRequestHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	donations, err := h.reqSvc.ListDonations(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, donations)
}
