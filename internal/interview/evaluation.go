package interview

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"interviewd/internal/model"
)

// MaxScore is the upper bound of a single answer score
const MaxScore = 10

// NoFeedback replaces an empty feedback string from the model
const NoFeedback = "No feedback generated."

const (
	feedbackNoUnderstanding = "The answer is incomplete or vague and shows no understanding of the question."
	feedbackTooBrief        = "The answer is too brief and lacks detail."
	feedbackLacksDepth      = "The answer is somewhat relevant but lacks depth."
	feedbackUnevaluated     = "The answer shows some understanding but could not be fully evaluated."
)

// non-answer markers, matched against the lower-cased answer
var nonAnswerMarkers = []string{"blah", "not sure", "don't know"}

// AnswerInput is what the candidate was asked and what they replied
type AnswerInput struct {
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	ResumeContext string `json:"resumeContext"`
}

type scoreReply struct {
	Score    json.RawMessage `json:"score"`
	Feedback json.RawMessage `json:"feedback"`
}

// Evaluate turns the model's reply into a bounded score. modelText may be empty
// when the model call failed; the heuristic fallback is used whenever the reply
// cannot be decoded or carries no score.
func Evaluate(in AnswerInput, modelText string) model.EvaluationResult {
	reply, ok := ParseObject[scoreReply](modelText).Get()
	if !ok || len(reply.Score) == 0 {
		return HeuristicScore(in.Answer)
	}

	score, isNumber := jsonNumber(reply.Score)
	if !isNumber || score < 0 || score > MaxScore {
		score = 0
	}

	feedback, _ := jsonString(reply.Feedback)
	if feedback == "" {
		feedback = NoFeedback
	}

	return model.EvaluationResult{Score: score, Feedback: feedback}
}

// HeuristicScore scores an answer from its text alone. Thresholds are checked in
// ascending order and the first match wins.
func HeuristicScore(answer string) model.EvaluationResult {
	text := strings.ToLower(strings.TrimSpace(answer))
	length := utf8.RuneCountInString(text)

	switch {
	case text == "" || containsAny(text, nonAnswerMarkers) || length < 10:
		return model.EvaluationResult{Score: 0, Feedback: feedbackNoUnderstanding}
	case length < 50:
		return model.EvaluationResult{Score: 2, Feedback: feedbackTooBrief}
	case length < 100:
		return model.EvaluationResult{Score: 4, Feedback: feedbackLacksDepth}
	default:
		return model.EvaluationResult{Score: 5, Feedback: feedbackUnevaluated}
	}
}

// BuildEvaluationPrompt asks the model for a strict JSON score object
func BuildEvaluationPrompt(in AnswerInput) string {
	answer := in.Answer
	if strings.TrimSpace(answer) == "" {
		answer = "(no answer given)"
	}
	return fmt.Sprintf(`You are a strict technical interviewer for a Full Stack (React/Node.js) role.
Score the candidate's answer from 0 to 10. Return ONLY valid JSON, no markdown:
{"score": <number 0-10>, "feedback": "<one or two sentences>"}

Scoring rules:
- 0: empty, off-topic, or the candidate admits not knowing
- 1-3: vague or mostly incorrect
- 4-6: partially correct, missing important details
- 7-8: correct and reasonably complete
- 9-10: excellent, precise, with examples or trade-offs

Candidate resume context: %s

Question: %s
Answer: %s`, orNone(in.ResumeContext), in.Question, answer)
}

func jsonNumber(raw json.RawMessage) (float64, bool) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func jsonString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not provided"
	}
	return s
}
