package interview

import (
	"fmt"
	"strings"

	"interviewd/internal/model"
)

// FallbackSummary is returned when the model's summary text cannot be recovered
const FallbackSummary = "The candidate completed the interview. An automated summary could not be produced, so please review the individual answers and scores."

type summaryReply struct {
	Summary string `json:"summary"`
}

// BuildSummaryPrompt lists every answer with its score and asks for a short
// plain-prose performance summary.
func BuildSummaryPrompt(answers []model.Answer, resumeContext string) string {
	var sb strings.Builder
	for i, a := range answers {
		answer := a.Answer
		if strings.TrimSpace(answer) == "" {
			answer = "(no answer)"
		}
		fmt.Fprintf(&sb, "%d. Question: %s\n   Answer: %s\n   Score: %g/10\n   Feedback: %s\n",
			i+1, a.Question, answer, a.Score, a.Feedback)
	}

	return fmt.Sprintf(`You are summarising a technical interview for a Full Stack (React/Node.js) role.
Candidate resume context: %s

Interview results:
%s
Write a 3-4 line summary of the candidate's performance covering strengths, weaknesses and an overall
recommendation. Respond in plain prose only: no JSON, no markdown, no headings.`, orNone(resumeContext), sb.String())
}

// NormalizeSummary unwraps code fences and JSON wrapping around the summary text
func NormalizeSummary(modelText string) string {
	text := Sanitize(modelText)
	if text == "" {
		return FallbackSummary
	}
	if !looksLikeSummaryObject(text) {
		return text
	}

	if reply, ok := ParseObject[summaryReply](text).Get(); ok && strings.TrimSpace(reply.Summary) != "" {
		return strings.TrimSpace(reply.Summary)
	}
	if s, ok := ExtractStringField(text, "summary"); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return FallbackSummary
}

func looksLikeSummaryObject(text string) bool {
	return strings.HasPrefix(text, "{") && strings.Contains(text, `"summary"`)
}
