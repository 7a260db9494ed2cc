package interview

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"interviewd/internal/model"
)

//go:embed fallback_questions.yaml
var fallbackYAML []byte

var fallbackQuestions = mustLoadFallback(fallbackYAML)

func mustLoadFallback(data []byte) []model.Question {
	var qs []model.Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		panic(fmt.Sprintf("fallback questions: %v", err))
	}
	return qs
}

// FallbackQuestions returns a copy of the built-in question set
func FallbackQuestions() []model.Question {
	out := make([]model.Question, len(fallbackQuestions))
	copy(out, fallbackQuestions)
	return out
}

// NormalizeQuestions accepts the model's question array as a whole or replaces it
// with the fallback set. There is no per-element recovery.
func NormalizeQuestions(modelText string) []model.Question {
	questions, err := parseQuestions(modelText)
	if err != nil {
		return FallbackQuestions()
	}
	return questions
}

func parseQuestions(modelText string) ([]model.Question, error) {
	result := ParseArray[map[string]json.RawMessage](modelText)
	items, ok := result.Get()
	if !ok {
		return nil, result.Err()
	}
	if len(items) == 0 {
		return nil, errors.New("empty question list")
	}

	questions := make([]model.Question, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("question %d is not an object", i)
		}
		text, _ := jsonString(item["q"])
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("question %d has no text", i)
		}
		difficulty, _ := jsonString(item["difficulty"])
		questions = append(questions, model.Question{
			Q:          text,
			Difficulty: model.Difficulty(strings.ToLower(strings.TrimSpace(difficulty))),
			Time:       coerceSeconds(item["time"]),
		})
	}
	return questions, nil
}

// coerceSeconds reads a JSON number or numeric string; anything else is 0
func coerceSeconds(raw json.RawMessage) int {
	if f, ok := jsonNumber(raw); ok {
		return wholeSeconds(f)
	}
	if s, ok := jsonString(raw); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return wholeSeconds(f)
		}
	}
	return 0
}

func wholeSeconds(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(math.Trunc(f))
}

// BuildQuestionsPrompt asks for the six-question interview set
func BuildQuestionsPrompt() string {
	return fmt.Sprintf(`Generate exactly 6 technical interview questions for a Full Stack (React/Node.js) developer.
- 2 easy questions, %d seconds each
- 2 medium questions, %d seconds each
- 2 hard questions, %d seconds each
Order them easy, medium, hard. Return ONLY a JSON array, no markdown:
[{"q": "question text", "difficulty": "easy", "time": %d}]`,
		model.EasyTimeSec, model.MediumTimeSec, model.HardTimeSec, model.EasyTimeSec)
}
