package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateKeepsValidModelScore(t *testing.T) {
	for _, score := range []string{"0", "3.5", "7", "10"} {
		res := Evaluate(AnswerInput{Answer: "anything"}, `{"score": `+score+`, "feedback": "Good use of hooks."}`)
		assert.Equal(t, "Good use of hooks.", res.Feedback)
		assert.InDelta(t, mustFloat(score), res.Score, 1e-9)
	}
}

func TestEvaluateClampsInvalidScore(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"above range", `{"score": 11, "feedback": "x"}`},
		{"negative", `{"score": -1, "feedback": "x"}`},
		{"string score", `{"score": "8", "feedback": "x"}`},
		{"null score", `{"score": null, "feedback": "x"}`},
		{"object score", `{"score": {"value": 8}, "feedback": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(AnswerInput{Answer: strings.Repeat("a", 120)}, tt.reply)
			assert.Equal(t, 0.0, res.Score)
			assert.Equal(t, "x", res.Feedback)
		})
	}
}

func TestEvaluateMissingFeedbackGetsPlaceholder(t *testing.T) {
	res := Evaluate(AnswerInput{Answer: "whatever"}, "```json\n{\"score\": 6}\n```")
	assert.Equal(t, 6.0, res.Score)
	assert.Equal(t, NoFeedback, res.Feedback)

	res = Evaluate(AnswerInput{Answer: "whatever"}, `{"score": 6, "feedback": ""}`)
	assert.Equal(t, NoFeedback, res.Feedback)
}

func TestEvaluateNonEmptyFeedbackUnchanged(t *testing.T) {
	res := Evaluate(AnswerInput{Answer: "whatever"}, `{"score": 6, "feedback": "   "}`)
	assert.Equal(t, "   ", res.Feedback)
}

func TestEvaluateFallsBackToHeuristic(t *testing.T) {
	answer := strings.Repeat("b", 63)

	for _, modelText := range []string{"", "not json at all", `{"feedback": "no score here"}`, "[1,2]"} {
		res := Evaluate(AnswerInput{Answer: answer}, modelText)
		assert.Equal(t, 4.0, res.Score, "model text %q", modelText)
		assert.Equal(t, feedbackLacksDepth, res.Feedback)
	}
}

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t", 0},
		{"not sure", "not sure", 0},
		{"not sure upper case long", "I am NOT SURE but maybe it is something about the virtual DOM diffing algorithm", 0},
		{"don't know", "I don't know what closures are, sorry about that.", 0},
		{"blah", "blah blah blah blah blah", 0},
		{"nine chars", "123456789", 0},
		{"ten chars", "1234567890", 2},
		{"forty nine chars", strings.Repeat("x", 49), 2},
		{"fifty chars", strings.Repeat("x", 50), 4},
		{"sixty three chars", strings.Repeat("y", 63), 4},
		{"ninety nine chars", strings.Repeat("x", 99), 4},
		{"hundred chars", strings.Repeat("x", 100), 5},
		{"surrounding space ignored", "  " + strings.Repeat("x", 9) + "  ", 0},
		{"multibyte counted as runes", strings.Repeat("é", 10), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := HeuristicScore(tt.answer)
			assert.Equal(t, tt.want, res.Score)
			assert.NotEmpty(t, res.Feedback)
		})
	}
}

func TestBuildEvaluationPrompt(t *testing.T) {
	p := BuildEvaluationPrompt(AnswerInput{Question: "What is a closure?", Answer: "", ResumeContext: ""})
	assert.Contains(t, p, "Question: What is a closure?")
	assert.Contains(t, p, "(no answer given)")
	assert.Contains(t, p, "not provided")
}

func mustFloat(s string) float64 {
	f, ok := jsonNumber([]byte(s))
	if !ok {
		panic(s)
	}
	return f
}
