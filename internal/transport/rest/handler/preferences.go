package handler

import (
	"encoding/json"
	"net/http"

	"sarrisk/internal/model"
	"sarrisk/internal/service"
	"sarrisk/internal/transport/rest/middleware"
)

// PreferencesHandler handles per-team preference endpoints
type PreferencesHandler struct {
	prefsSvc *service.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefsSvc *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefsSvc: prefsSvc}
}

// Get handles GET /v1/preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefsSvc.Get(r.Context(), middleware.GetTeamID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Put handles PUT /v1/preferences
func (h *PreferencesHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req model.Preferences
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs, err := h.prefsSvc.Save(r.Context(), middleware.GetTeamID(r.Context()), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
