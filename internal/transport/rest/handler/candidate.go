package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"interviewd/internal/export"
	"interviewd/internal/model"
	"interviewd/internal/service"
)

// CandidateService is what the candidate endpoints need from the service layer
type CandidateService interface {
	Create(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error)
	List(ctx context.Context, email string) ([]*model.Candidate, error)
	Update(ctx context.Context, id string, update *model.CandidateUpdate) (*model.Candidate, error)
	AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Candidate, error)
	CleanupDuplicates(ctx context.Context) (*model.ReconcileResult, error)
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

// CandidateHandler handles candidate endpoints
type CandidateHandler struct {
	svc CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// UpdateCandidateRequest is the request body for a partial update
type UpdateCandidateRequest struct {
	Updates *model.CandidateUpdate `json:"updates"`
}

// CleanupResponse reports what duplicate cleanup removed
type CleanupResponse struct {
	Message string                 `json:"message"`
	Removed int                    `json:"removed"`
	Groups  []model.DuplicateGroup `json:"groups,omitempty"`
}

// Create handles POST /candidates
// @Summary Create a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body model.Candidate true "Candidate"
// @Success 201 {object} model.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates [post]
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var candidate model.Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), &candidate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /candidates
// @Summary List candidates
// @Tags candidates
// @Produce json
// @Param email query string false "Exact email filter"
// @Success 200 {array} model.Candidate
// @Failure 500 {object} ErrorResponse
// @Router /candidates [get]
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.svc.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, candidates)
}

// Update handles PUT /candidates/{id}
// @Summary Partially update a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param body body UpdateCandidateRequest true "Fields to change"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates/{id} [put]
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.Updates)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// AppendAnswer handles POST /candidates/{id}/answers
// @Summary Append a scored answer
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param answer body model.Answer true "Answer"
// @Success 200 {object} model.Candidate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /candidates/{id}/answers [post]
func (h *CandidateHandler) AppendAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var answer model.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.AppendAnswer(r.Context(), id, answer)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// CleanupDuplicates handles POST /candidates/cleanup-duplicates
// @Summary Remove duplicate candidates, keeping the newest per email
// @Tags candidates
// @Produce json
// @Success 200 {object} CleanupResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /candidates/cleanup-duplicates [post]
func (h *CandidateHandler) CleanupDuplicates(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.CleanupDuplicates(r.Context())

	var storeErr *service.StoreError
	if errors.As(err, &storeErr) && result != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("removed", result.Removed).Msg("duplicate cleanup aborted")
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "duplicate cleanup aborted",
			"removed": result.Removed,
		})
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CleanupResponse{
		Message: fmt.Sprintf("Removed %d duplicate candidates", result.Removed),
		Removed: result.Removed,
		Groups:  result.Groups,
	})
}

// Leaderboard handles GET /candidates/leaderboard
// @Summary Top candidate scores
// @Tags candidates
// @Produce json
// @Param limit query int false "Number of entries"
// @Success 200 {array} model.LeaderboardEntry
// @Failure 503 {object} ErrorResponse
// @Router /candidates/leaderboard [get]
func (h *CandidateHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Export handles GET /candidates/export
// @Summary Export candidates as an Excel workbook
// @Tags candidates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /candidates/export [get]
func (h *CandidateHandler) Export(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.svc.List(r.Context(), "")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCandidates(&buf, candidates); err != nil {
		writeServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("candidates-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
