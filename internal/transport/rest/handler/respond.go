package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sarrisk/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusOf maps service errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownType),
		errors.Is(err, service.ErrUnknownVariant),
		errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, service.ErrMissionNotFound),
		errors.Is(err, service.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrScoreOutOfRange),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrUnknownScheme):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrIncomplete),
		errors.Is(err, service.ErrMissionClosed):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotCoordinator),
		errors.Is(err, service.ErrNotAssessmentOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeError(w, status, message)
}
