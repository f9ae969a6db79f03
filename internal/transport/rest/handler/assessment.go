package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sarrisk/internal/model"
	"sarrisk/internal/service"
	"sarrisk/internal/transport/rest/middleware"
)

// AssessmentHandler handles the team-facing assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	view, err := h.assessmentSvc.Start(ctx, middleware.GetMissionCode(ctx), middleware.GetTeamID(ctx), req.Type, req.Variant)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// List handles GET /v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.assessmentSvc.ListByTeam(r.Context(), middleware.GetTeamID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.assessmentSvc.Get(r.Context(), middleware.GetTeamID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Score handles PUT /v1/assessments/{id}/entries/{title}
func (h *AssessmentHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	view, err := h.assessmentSvc.Score(r.Context(), middleware.GetTeamID(r.Context()), vars["id"], vars["title"], req.Score)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ChangeVariant handles PUT /v1/assessments/{id}/variant
func (h *AssessmentHandler) ChangeVariant(w http.ResponseWriter, r *http.Request) {
	var req model.VariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Variant == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.assessmentSvc.ChangeVariant(r.Context(), middleware.GetTeamID(r.Context()), mux.Vars(r)["id"], req.Variant)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Finalize handles POST /v1/assessments/{id}/finalize
func (h *AssessmentHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	report, err := h.assessmentSvc.Finalize(r.Context(), middleware.GetTeamID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Discard handles DELETE /v1/assessments/{id}
func (h *AssessmentHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentSvc.Discard(r.Context(), middleware.GetTeamID(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
