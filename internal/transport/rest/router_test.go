package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewd/internal/interview"
	"interviewd/internal/model"
	"interviewd/internal/transport/ws"
)

type stubCandidates struct{}

func (stubCandidates) Create(_ context.Context, c *model.Candidate) (*model.Candidate, error) {
	return c, nil
}
func (stubCandidates) List(context.Context, string) ([]*model.Candidate, error) {
	return []*model.Candidate{}, nil
}
func (stubCandidates) Update(_ context.Context, id string, _ *model.CandidateUpdate) (*model.Candidate, error) {
	return &model.Candidate{ID: id}, nil
}
func (stubCandidates) AppendAnswer(_ context.Context, id string, a model.Answer) (*model.Candidate, error) {
	return &model.Candidate{ID: id, Answers: []model.Answer{a}}, nil
}
func (stubCandidates) CleanupDuplicates(context.Context) (*model.ReconcileResult, error) {
	return &model.ReconcileResult{}, nil
}
func (stubCandidates) Leaderboard(context.Context, int) ([]model.LeaderboardEntry, error) {
	return []model.LeaderboardEntry{}, nil
}

type stubInterview struct{}

func (stubInterview) GenerateQuestions(context.Context) []model.Question {
	return interview.FallbackQuestions()
}
func (stubInterview) EvaluateAnswer(_ context.Context, in interview.AnswerInput) model.EvaluationResult {
	return interview.HeuristicScore(in.Answer)
}
func (stubInterview) FinalSummary(context.Context, []model.Answer, string) (string, error) {
	return "ok", nil
}

func newTestRouter(t *testing.T) http.Handler {
	hub := ws.NewHub()
	t.Cleanup(hub.Close)
	return NewRouter(&Container{
		CandidateService:   stubCandidates{},
		InterviewService:   stubInterview{},
		WSHub:              hub,
		CORSAllowedOrigins: "https://app.example.com",
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/candidates", http.StatusOK},
		{http.MethodPost, "/candidates/cleanup-duplicates", http.StatusOK},
		{http.MethodGet, "/candidates/leaderboard", http.StatusOK},
		{http.MethodGet, "/candidates/export", http.StatusOK},
		{http.MethodPost, "/generateQuestions", http.StatusOK},
		{http.MethodGet, "/generateQuestions", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/candidates", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Contains(t, doc.Paths, "/evaluateAnswer")
	assert.Contains(t, doc.Paths, "/candidates/cleanup-duplicates")
}
