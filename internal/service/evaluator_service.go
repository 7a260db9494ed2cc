package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"interviewd/internal/config"
	"interviewd/internal/interview"
	"interviewd/internal/model"
)

// EvaluatorService runs the model-backed interview steps. Question generation and
// answer scoring never fail: they fall back to canned questions and heuristic
// scores, trading correctness for availability. Only the final summary surfaces
// model failures.
type EvaluatorService struct {
	config *config.AIConfig
	client ModelClient
}

// NewEvaluatorService creates a new evaluator service
func NewEvaluatorService(cfg *config.AIConfig, client ModelClient) *EvaluatorService {
	return &EvaluatorService{
		config: cfg,
		client: client,
	}
}

// GenerateQuestions returns the model's question set or the fallback set
func (s *EvaluatorService) GenerateQuestions(ctx context.Context) []model.Question {
	text, err := s.generate(ctx, "generate_questions", s.config.Models.Questions, interview.BuildQuestionsPrompt())
	if err != nil {
		log.Warn().Err(err).Msg("question generation failed, serving fallback set")
		return interview.FallbackQuestions()
	}
	return interview.NormalizeQuestions(text)
}

// EvaluateAnswer scores one answer. A failed model call degrades to the
// heuristic score rather than an error.
func (s *EvaluatorService) EvaluateAnswer(ctx context.Context, in interview.AnswerInput) model.EvaluationResult {
	text, err := s.generate(ctx, "evaluate_answer", s.config.Models.Evaluate, interview.BuildEvaluationPrompt(in))
	if err != nil {
		log.Warn().Err(err).Msg("answer evaluation failed, using heuristic score")
		text = ""
	}
	return interview.Evaluate(in, text)
}

// FinalSummary writes the narrative summary for a finished interview
func (s *EvaluatorService) FinalSummary(ctx context.Context, answers []model.Answer, resumeContext string) (string, error) {
	text, err := s.generate(ctx, "final_summary", s.config.Models.Summary, interview.BuildSummaryPrompt(answers, resumeContext))
	if err != nil {
		return "", &SummaryGenerationError{Err: err}
	}
	return interview.NormalizeSummary(text), nil
}

func (s *EvaluatorService) generate(ctx context.Context, task, modelName, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout())
	defer cancel()

	text, err := s.client.Generate(ctx, modelName, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyResponse
	}
	if err != nil {
		return "", &ModelCallError{Task: task, Err: err}
	}

	log.Debug().Str("task", task).Str("model", modelName).Int("chars", len(text)).Msg("model call completed")
	return text, nil
}
