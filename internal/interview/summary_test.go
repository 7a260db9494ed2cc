package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"interviewd/internal/model"
)

func TestNormalizeSummary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced json", "```json\n{\"summary\":\"Good candidate.\"}\n```", "Good candidate."},
		{"bare json", `{"summary": "Strong in React."}`, "Strong in React."},
		{"plain prose", "The candidate showed solid fundamentals.", "The candidate showed solid fundamentals."},
		{"fenced prose", "```\nSolid fundamentals.\n```", "Solid fundamentals."},
		{"single line fenced prose", "```Solid candidate overall.```", "Solid candidate overall."},
		{"broken json falls back to regex", `{"summary": "Knows Node well", "score": }`, "Knows Node well"},
		{"empty summary field", `{"summary": ""}`, FallbackSummary},
		{"non-string summary", `{"summary": 42}`, FallbackSummary},
		{"blank", "   ", FallbackSummary},
		{"object without summary kept verbatim", `{"verdict": "hire"}`, `{"verdict": "hire"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSummary(tt.in))
		})
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	p := BuildSummaryPrompt([]model.Answer{
		{Question: "What is JSX?", Answer: "Syntax sugar for createElement", Score: 7, Feedback: "Correct."},
		{Question: "Explain the event loop", Answer: "", Score: 0, Feedback: "No answer."},
	}, "5 years of Node.js")

	assert.Contains(t, p, "1. Question: What is JSX?")
	assert.Contains(t, p, "Score: 7/10")
	assert.Contains(t, p, "2. Question: Explain the event loop")
	assert.Contains(t, p, "(no answer)")
	assert.Contains(t, p, "5 years of Node.js")
	assert.Contains(t, p, "3-4 line")
}
