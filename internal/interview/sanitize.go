// Package interview holds the prompt builders and the response policies that turn
// loosely structured model output into questions, scores and summaries.
package interview

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const fence = "```"

// langTag matches the info string after an opening fence, e.g. "json\n". It only
// counts as a tag when a newline or the end of input follows it.
var langTag = regexp.MustCompile(`^[ \t]*[\w+-]*[ \t]*(?:\r?\n|$)`)

var errEmptyOutput = errors.New("empty model output")

// Sanitize strips leading and trailing code fences and surrounding whitespace.
// Fences are stripped until none remain, so Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := strings.TrimSpace(stripClosingFence(stripOpeningFence(s)))
		if next == s {
			return s
		}
		s = next
	}
}

func stripOpeningFence(s string) string {
	if !strings.HasPrefix(s, fence) {
		return s
	}
	rest := s[len(fence):]
	if loc := langTag.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}
	return rest
}

func stripClosingFence(s string) string {
	return strings.TrimSuffix(s, fence)
}

// ParseError describes model output that could not be decoded
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "unparseable model output: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseResult is either a decoded value or the raw text that failed to decode.
// Callers must check Get's second return before using the value.
type ParseResult[T any] struct {
	value T
	err   *ParseError
}

// Parsed wraps a successfully decoded value
func Parsed[T any](v T) ParseResult[T] {
	return ParseResult[T]{value: v}
}

// Unparsed records a decode failure together with the raw text
func Unparsed[T any](raw string, err error) ParseResult[T] {
	return ParseResult[T]{err: &ParseError{Raw: raw, Err: err}}
}

// Get returns the decoded value and whether decoding succeeded
func (r ParseResult[T]) Get() (T, bool) {
	return r.value, r.err == nil
}

// Err returns the *ParseError of a failed result, or nil
func (r ParseResult[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// ParseObject sanitizes raw and decodes it as a JSON object. When the text has
// prose around the object, the span from the first '{' to the last '}' is tried too.
func ParseObject[T any](raw string) ParseResult[T] {
	return parseDelimited[T](raw, '{', '}', true)
}

// ParseArray sanitizes raw and decodes it as a JSON array. The text must be the
// array itself: an array embedded in an object or prose is a failure.
func ParseArray[T any](raw string) ParseResult[[]T] {
	return parseDelimited[[]T](raw, '[', ']', false)
}

func parseDelimited[T any](raw string, open, closing byte, embedded bool) ParseResult[T] {
	text := Sanitize(raw)
	if text == "" {
		return Unparsed[T](raw, errEmptyOutput)
	}

	v, err := decodeDelimited[T](text, open)
	if err == nil {
		return Parsed(v)
	}

	if !embedded {
		return Unparsed[T](raw, err)
	}

	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start >= 0 && end > start && (start > 0 || end < len(text)-1) {
		if inner, innerErr := decodeDelimited[T](text[start:end+1], open); innerErr == nil {
			return Parsed(inner)
		}
	}
	return Unparsed[T](raw, err)
}

func decodeDelimited[T any](text string, open byte) (T, error) {
	var v T
	if text == "" || text[0] != open {
		return v, errors.New("expected JSON starting with " + strconv.QuoteRune(rune(open)))
	}
	err := json.Unmarshal([]byte(text), &v)
	return v, err
}

// ExtractStringField finds `"field": "value"` in text without requiring the
// surrounding text to be valid JSON.
func ExtractStringField(text, field string) (string, bool) {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(field) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if unquoted, err := strconv.Unquote(`"` + m[1] + `"`); err == nil {
		return unquoted, true
	}
	return m[1], true
}
