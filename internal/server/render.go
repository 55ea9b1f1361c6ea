package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"conectacausa/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// writeError maps domain errors onto status codes. Anything unexpected is
// logged and reported as a 500 without details.
func (s *Service) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, types.ErrUserNotFound), errors.Is(err, types.ErrOpportunityNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, types.ErrEmailTaken), errors.Is(err, types.ErrDuplicateApplication):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, types.ErrInvalidInput):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, types.ErrStorageCorruption):
		s.logger.WithError(err).Error("persisted collection is corrupt")
	default:
		s.logger.WithError(err).Error("request failed")
	}

	s.writeJSON(w, status, errorResponse{Error: message})
}
