package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewd/internal/model"
)

func TestFallbackQuestionSet(t *testing.T) {
	qs := FallbackQuestions()
	require.Len(t, qs, 6)

	var difficulties []model.Difficulty
	var times []int
	for _, q := range qs {
		assert.NotEmpty(t, q.Q)
		difficulties = append(difficulties, q.Difficulty)
		times = append(times, q.Time)
	}
	assert.Equal(t, []model.Difficulty{"easy", "easy", "medium", "medium", "hard", "hard"}, difficulties)
	assert.Equal(t, []int{20, 20, 60, 60, 120, 120}, times)
}

func TestFallbackQuestionsReturnsCopy(t *testing.T) {
	qs := FallbackQuestions()
	qs[0].Q = "changed"
	assert.NotEqual(t, "changed", FallbackQuestions()[0].Q)
}

func TestNormalizeQuestionsMalformed(t *testing.T) {
	inputs := map[string]string{
		"bare string":         `"just a string"`,
		"object not array":    `{"q": "What is React?", "difficulty": "easy", "time": 20}`,
		"empty":               "",
		"invalid json":        "[{\"q\": \"x\",",
		"empty array":         "[]",
		"element not object":  `[{"q": "ok", "difficulty": "easy", "time": 20}, "oops"]`,
		"element null":        `[null]`,
		"missing text":        `[{"difficulty": "easy", "time": 20}]`,
		"array inside object": `{"questions": [{"q": "x", "difficulty": "easy", "time": 20}]}`,
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, FallbackQuestions(), NormalizeQuestions(in))
		})
	}
}

func TestNormalizeQuestionsCoercesTime(t *testing.T) {
	in := "```json\n" + `[
		{"q": "A", "difficulty": "easy", "time": 20},
		{"q": "B", "difficulty": "Medium", "time": "60"},
		{"q": "C", "difficulty": "hard", "time": "two minutes"},
		{"q": "D", "difficulty": "hard", "time": 120.7},
		{"q": "E", "difficulty": "easy"}
	]` + "\n```"

	qs := NormalizeQuestions(in)
	require.Len(t, qs, 5)
	assert.Equal(t, model.Question{Q: "A", Difficulty: "easy", Time: 20}, qs[0])
	assert.Equal(t, model.Question{Q: "B", Difficulty: "medium", Time: 60}, qs[1])
	assert.Equal(t, 0, qs[2].Time)
	assert.Equal(t, 120, qs[3].Time)
	assert.Equal(t, 0, qs[4].Time)
}

func TestBuildQuestionsPrompt(t *testing.T) {
	p := BuildQuestionsPrompt()
	assert.Contains(t, p, "exactly 6")
	assert.Contains(t, p, "120 seconds")
}
