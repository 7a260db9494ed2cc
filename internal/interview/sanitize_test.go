package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"trims whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"fence without newline", "```{\"a\":1}```", `{"a":1}`},
		{"language tag only", "```json", ""},
		{"nested fences", "```json\n```json\n{}\n```\n```", "{}"},
		{"opening fence only", "```javascript\nconst x = 1", "const x = 1"},
		{"inner fence kept", "see ```code``` here", "see ```code``` here"},
		{"single line fenced prose", "```Solid candidate overall.```", "Solid candidate overall."},
		{"tag with trailing space", "```json \n{}\n```", "{}"},
		{"crlf after tag", "```json\r\n{}\r\n```", "{}"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"```",
		"``````",
		"```json\n```\n",
		"```json\n{\"score\": 7}\n```",
		"  ```py\nprint(1)\n```  ",
		"``` json \n {} ```",
		"````",
		"plain",
		"```\n```json\n```",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestParseObject(t *testing.T) {
	type reply struct {
		Score int `json:"score"`
	}

	t.Run("fenced object", func(t *testing.T) {
		v, ok := ParseObject[reply]("```json\n{\"score\": 7}\n```").Get()
		require.True(t, ok)
		assert.Equal(t, 7, v.Score)
	})

	t.Run("object inside prose", func(t *testing.T) {
		v, ok := ParseObject[reply]("Sure! Here it is: {\"score\": 3} Hope that helps").Get()
		require.True(t, ok)
		assert.Equal(t, 3, v.Score)
	})

	t.Run("array is not an object", func(t *testing.T) {
		r := ParseObject[reply]("[1,2,3]")
		_, ok := r.Get()
		assert.False(t, ok)

		var perr *ParseError
		require.ErrorAs(t, r.Err(), &perr)
		assert.Equal(t, "[1,2,3]", perr.Raw)
	})

	t.Run("empty output", func(t *testing.T) {
		r := ParseObject[reply]("   ")
		_, ok := r.Get()
		assert.False(t, ok)
		assert.ErrorIs(t, r.Err(), errEmptyOutput)
	})
}

func TestParseArray(t *testing.T) {
	v, ok := ParseArray[int]("```\n[1, 2, 3]\n```").Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)

	_, ok = ParseArray[int](`{"a": 1}`).Get()
	assert.False(t, ok)

	_, ok = ParseArray[int](`{"items": [1, 2]}`).Get()
	assert.False(t, ok)

	_, ok = ParseArray[int]("Here you go: [1, 2]").Get()
	assert.False(t, ok)
}

func TestExtractStringField(t *testing.T) {
	v, ok := ExtractStringField(`{"summary": "Solid \"React\" skills", broken`, "summary")
	require.True(t, ok)
	assert.Equal(t, `Solid "React" skills`, v)

	_, ok = ExtractStringField(`{"other": "x"}`, "summary")
	assert.False(t, ok)
}
