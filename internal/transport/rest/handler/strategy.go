package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sarrisk/internal/service"
	"sarrisk/internal/strategy"
)

// StrategyHandler exposes the scoring engine
type StrategyHandler struct {
	registry       *strategy.Registry
	questionnaires *service.QuestionnaireService
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler(registry *strategy.Registry, questionnaires *service.QuestionnaireService) *StrategyHandler {
	return &StrategyHandler{
		registry:       registry,
		questionnaires: questionnaires,
	}
}

// EvaluateRequest is the request body for a stateless evaluation
type EvaluateRequest struct {
	Entries []strategy.Entry `json:"entries"`
}

// List handles GET /v1/strategies
func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.All())
}

// Get handles GET /v1/strategies/{type}
func (h *StrategyHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.registry.Lookup(mux.Vars(r)["type"])
	if !ok {
		writeError(w, http.StatusNotFound, service.ErrUnknownType.Error())
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Evaluate handles POST /v1/strategies/{type}/evaluate
func (h *StrategyHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Entries == nil {
		req.Entries = []strategy.Entry{}
	}

	result, err := h.questionnaires.Evaluate(mux.Vars(r)["type"], req.Entries)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
