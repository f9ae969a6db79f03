package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sarrisk/internal/model"
	"sarrisk/internal/service"
	"sarrisk/internal/transport/rest/middleware"
)

// MissionHandler handles mission endpoints
type MissionHandler struct {
	missionSvc *service.MissionService
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(missionSvc *service.MissionService) *MissionHandler {
	return &MissionHandler{missionSvc: missionSvc}
}

// Create handles POST /v1/missions
func (h *MissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	coordinatorID := middleware.GetCoordinatorID(r.Context())
	if coordinatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.CreateMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mission, err := h.missionSvc.Create(r.Context(), coordinatorID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mission)
}

// List handles GET /v1/missions
func (h *MissionHandler) List(w http.ResponseWriter, r *http.Request) {
	missions, err := h.missionSvc.ListByCoordinator(r.Context(), middleware.GetCoordinatorID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if missions == nil {
		missions = []*model.Mission{}
	}
	writeJSON(w, http.StatusOK, missions)
}

// authorize checks the caller owns the mission in the path and returns its code
func (h *MissionHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	code := mux.Vars(r)["code"]
	if err := h.missionSvc.Authorize(r.Context(), code, middleware.GetCoordinatorID(r.Context())); err != nil {
		writeServiceError(w, err)
		return "", false
	}
	return code, true
}

// Get handles GET /v1/missions/{code}
func (h *MissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, ok := h.authorize(w, r)
	if !ok {
		return
	}
	mission, err := h.missionSvc.Get(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mission)
}

// Close handles POST /v1/missions/{code}/close
func (h *MissionHandler) Close(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	mission, err := h.missionSvc.Close(r.Context(), code, middleware.GetCoordinatorID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mission)
}

// Teams handles GET /v1/missions/{code}/teams
func (h *MissionHandler) Teams(w http.ResponseWriter, r *http.Request) {
	code, ok := h.authorize(w, r)
	if !ok {
		return
	}
	teams, err := h.missionSvc.Teams(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if teams == nil {
		teams = []*model.Team{}
	}
	writeJSON(w, http.StatusOK, teams)
}

// Board handles GET /v1/missions/{code}/board?limit=
func (h *MissionHandler) Board(w http.ResponseWriter, r *http.Request) {
	code, ok := h.authorize(w, r)
	if !ok {
		return
	}

	limit := service.DefaultBoardSize
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.missionSvc.Board(r.Context(), code, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Reports handles GET /v1/missions/{code}/reports
func (h *MissionHandler) Reports(w http.ResponseWriter, r *http.Request) {
	code, ok := h.authorize(w, r)
	if !ok {
		return
	}
	reports, err := h.missionSvc.Reports(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// Join handles POST /v1/missions/{code}/join
func (h *MissionHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req model.JoinMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.missionSvc.Join(r.Context(), mux.Vars(r)["code"], req.TeamName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
