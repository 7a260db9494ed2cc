package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"interviewd/internal/interview"
	"interviewd/internal/model"
)

// InterviewService is what the AI endpoints need from the service layer
type InterviewService interface {
	GenerateQuestions(ctx context.Context) []model.Question
	EvaluateAnswer(ctx context.Context, in interview.AnswerInput) model.EvaluationResult
	FinalSummary(ctx context.Context, answers []model.Answer, resumeContext string) (string, error)
}

// InterviewHandler handles the AI-backed interview endpoints
type InterviewHandler struct {
	svc InterviewService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(svc InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

// QuestionsResponse wraps a generated question set
type QuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}

// SummaryRequest is the request body for the final summary
type SummaryRequest struct {
	Answers       []model.Answer `json:"answers"`
	ResumeContext string         `json:"resumeContext"`
}

// SummaryResponse wraps the final summary text
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// GenerateQuestions handles POST /generateQuestions. It always succeeds.
// @Summary Generate six interview questions
// @Tags interview
// @Produce json
// @Success 200 {object} QuestionsResponse
// @Router /generateQuestions [post]
func (h *InterviewHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuestionsResponse{Questions: h.svc.GenerateQuestions(r.Context())})
}

// EvaluateAnswer handles POST /evaluateAnswer
// @Summary Score one answer
// @Tags interview
// @Accept json
// @Produce json
// @Param body body interview.AnswerInput true "Answer to score"
// @Success 200 {object} model.EvaluationResult
// @Failure 400 {object} ErrorResponse
// @Router /evaluateAnswer [post]
func (h *InterviewHandler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var in interview.AnswerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.EvaluateAnswer(r.Context(), in))
}

// FinalSummary handles POST /finalSummary
// @Summary Write the final interview summary
// @Tags interview
// @Accept json
// @Produce json
// @Param body body SummaryRequest true "Scored answers"
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /finalSummary [post]
func (h *InterviewHandler) FinalSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.svc.FinalSummary(r.Context(), req.Answers, req.ResumeContext)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}
