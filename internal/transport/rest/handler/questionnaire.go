package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"sarrisk/internal/service"
	"sarrisk/internal/theme"
)

// QuestionnaireHandler serves questionnaire definitions and color themes
type QuestionnaireHandler struct {
	questionnaires *service.QuestionnaireService
	themes         *theme.Resolver
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaires *service.QuestionnaireService, themes *theme.Resolver) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaires: questionnaires,
		themes:         themes,
	}
}

// Get handles GET /v1/questionnaires/{type}?variant=
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.questionnaires.Get(r.Context(), mux.Vars(r)["type"], r.URL.Query().Get("variant"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Theme handles GET /v1/themes/{scheme}
func (h *QuestionnaireHandler) Theme(w http.ResponseWriter, r *http.Request) {
	scheme := mux.Vars(r)["scheme"]
	if !h.themes.Has(scheme) {
		writeError(w, http.StatusNotFound, service.ErrUnknownScheme.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scheme": scheme,
		"tokens": h.themes.Palette(scheme),
	})
}
