// Package extract pulls structure out of free-form LLM replies.
//
// Coordinator prompts ask for a bracketed list of topics or a JSON feedback
// object, but models decorate their answers with prose, markdown fences, and
// Python-style quoting. Extraction is tolerant: it scans for the first
// plausible span and degrades to a fallback instead of failing the lesson.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ListResult is the outcome of extracting a string list.
type ListResult struct {
	// Values holds the extracted strings, or the fallback when extraction
	// failed entirely.
	Values []string

	// UsedFallback reports that no usable list was found in the text.
	UsedFallback bool

	// Warning describes a degradation (fallback or count mismatch).
	// Empty on a clean parse.
	Warning string
}

// StringList extracts a list of quoted strings from text. The first balanced
// [...] span is parsed, accepting both single- and double-quoted elements.
// When no list can be parsed, fallback is returned verbatim. A parsed list
// whose length differs from len(fallback) is kept as-is with a warning.
func StringList(text string, fallback []string) ListResult {
	span, ok := bracketSpan(text)
	if !ok {
		return ListResult{
			Values:       fallback,
			UsedFallback: true,
			Warning:      "no bracketed list found in response, using defaults",
		}
	}

	values, err := parseQuotedList(span)
	if err != nil || len(values) == 0 {
		return ListResult{
			Values:       fallback,
			UsedFallback: true,
			Warning:      "bracketed span is not a list of strings, using defaults",
		}
	}

	res := ListResult{Values: values}
	if len(values) != len(fallback) {
		res.Warning = fmt.Sprintf("expected %d items, response contained %d", len(fallback), len(values))
	}
	return res
}

// bracketSpan returns the contents of the first balanced [...] span.
// Quoted sections are skipped so brackets inside strings don't close the span.
func bracketSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	var quote byte
	for i := start; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start+1 : i], true
			}
		}
	}
	return "", false
}

// parseQuotedList parses the inside of a bracketed list: quoted strings
// separated by commas, in either Python or JSON quoting.
func parseQuotedList(span string) ([]string, error) {
	var values []string
	i := 0
	for i < len(span) {
		c := span[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			i++
			continue
		}
		if c != '\'' && c != '"' {
			return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
		}

		quote := c
		i++
		var b strings.Builder
		closed := false
		for i < len(span) {
			c = span[i]
			if c == '\\' && i+1 < len(span) {
				b.WriteByte(unescape(span[i+1]))
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("unterminated string at offset %d", i)
		}
		values = append(values, b.String())
	}
	return values, nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	default:
		return c
	}
}

// FeedbackResult is the outcome of extracting a feedback object.
type FeedbackResult struct {
	// PerParticipant maps participant name to feedback text.
	// Empty (never nil) when the response could not be parsed.
	PerParticipant map[string]string

	// Parsed reports whether a valid feedback object was found.
	Parsed bool

	// Raw preserves the original response text for diagnostics.
	Raw string
}

// feedbackSchema validates that the extracted object is a flat map of
// participant name to feedback string.
var feedbackSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def := map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://feedback.json", def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://feedback.json")
})

// FeedbackMap extracts a JSON object mapping participant names to feedback
// from text. The substring from the first '{' to the last '}' is parsed; on
// any failure the result is an empty map with the raw text preserved.
func FeedbackMap(text string) FeedbackResult {
	res := FeedbackResult{
		PerParticipant: map[string]string{},
		Raw:            text,
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return res
	}

	var parsed any
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return res
	}

	schema, err := feedbackSchema()
	if err != nil {
		return res
	}
	if err := schema.Validate(parsed); err != nil {
		return res
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return res
	}
	for k, v := range obj {
		if s, ok := v.(string); ok {
			res.PerParticipant[k] = s
		}
	}
	res.Parsed = true
	return res
}
