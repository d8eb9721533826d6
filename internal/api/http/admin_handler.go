package http

import (
	"net/http"

	"ptoshare-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

type setHoursRequest struct {
	Hours int32 `json:"hours"`
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) SetHours(w http.ResponseWriter, r *http.Request) {
	adminID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req setHoursRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := h.adminSvc.SetAvailableHours(r.Context(), adminID, userID, req.Hours)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	adminID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.adminSvc.RemoveUser(r.Context(), adminID, userID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
