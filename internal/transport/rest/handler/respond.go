package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"interviewd/internal/service"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps service errors onto status codes. Store and model
// details are logged, never returned.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		storeErr   *service.StoreError
		summaryErr *service.SummaryGenerationError
	)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid candidate id")
	case errors.Is(err, service.ErrCandidateNotFound):
		writeError(w, http.StatusNotFound, "candidate not found")
	case errors.Is(err, service.ErrCleanupInProgress):
		writeError(w, http.StatusConflict, "duplicate cleanup already in progress")
	case errors.Is(err, service.ErrLeaderboardDisabled):
		writeError(w, http.StatusServiceUnavailable, "leaderboard is not available")
	case errors.As(err, &summaryErr):
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("summary generation failed")
		writeError(w, http.StatusInternalServerError, "failed to generate summary")
	case errors.As(err, &storeErr):
		zerolog.Ctx(r.Context()).Error().Err(err).Str("op", storeErr.Op).Msg("store operation failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unhandled error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
