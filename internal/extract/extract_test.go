package extract

import (
	"reflect"
	"testing"
)

func defaults(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Default"
	}
	return out
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		fallback     []string
		want         []string
		wantFallback bool
		wantWarning  bool
	}{
		{
			name:     "double quoted",
			text:     `Here you go: ["The Spinning Jenny", "The Steam Engine"]`,
			fallback: defaults(2),
			want:     []string{"The Spinning Jenny", "The Steam Engine"},
		},
		{
			name:     "single quoted python style",
			text:     `['Watt and Boulton', 'Factory Systems']`,
			fallback: defaults(2),
			want:     []string{"Watt and Boulton", "Factory Systems"},
		},
		{
			name:     "surrounding prose and trailing bracket",
			text:     "Sure! The focal points are ['A', 'B'], enjoy [really].",
			fallback: defaults(2),
			want:     []string{"A", "B"},
		},
		{
			name:     "bracket inside string",
			text:     `["Coal [and iron]", "Railways"]`,
			fallback: defaults(2),
			want:     []string{"Coal [and iron]", "Railways"},
		},
		{
			name:     "escaped quote",
			text:     `['Watt\'s engine', 'Textiles']`,
			fallback: defaults(2),
			want:     []string{"Watt's engine", "Textiles"},
		},
		{
			name:         "no list at all",
			text:         "I would rather talk about something else.",
			fallback:     []string{"x", "y"},
			want:         []string{"x", "y"},
			wantFallback: true,
			wantWarning:  true,
		},
		{
			name:         "bracketed span but not strings",
			text:         "[1, 2, 3]",
			fallback:     []string{"x", "y"},
			want:         []string{"x", "y"},
			wantFallback: true,
			wantWarning:  true,
		},
		{
			name:         "unterminated list",
			text:         `["A", "B"`,
			fallback:     []string{"x", "y"},
			want:         []string{"x", "y"},
			wantFallback: true,
			wantWarning:  true,
		},
		{
			name:        "count mismatch keeps parsed values",
			text:        `["Only one"]`,
			fallback:    defaults(2),
			want:        []string{"Only one"},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringList(tt.text, tt.fallback)
			if !reflect.DeepEqual(got.Values, tt.want) {
				t.Errorf("values = %v, want %v", got.Values, tt.want)
			}
			if got.UsedFallback != tt.wantFallback {
				t.Errorf("usedFallback = %v, want %v", got.UsedFallback, tt.wantFallback)
			}
			if (got.Warning != "") != tt.wantWarning {
				t.Errorf("warning = %q, wantWarning %v", got.Warning, tt.wantWarning)
			}
		})
	}
}

func TestFeedbackMap(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got := FeedbackMap(`{"David": "Good work.", "Marc": "Check your dates."}`)
		if !got.Parsed {
			t.Fatal("expected parsed")
		}
		if got.PerParticipant["David"] != "Good work." {
			t.Errorf("David = %q", got.PerParticipant["David"])
		}
		if got.PerParticipant["Marc"] != "Check your dates." {
			t.Errorf("Marc = %q", got.PerParticipant["Marc"])
		}
	})

	t.Run("object wrapped in prose and fences", func(t *testing.T) {
		text := "Here is my feedback:\n```json\n{\"Paola\": \"Concise and correct.\"}\n```\nThanks!"
		got := FeedbackMap(text)
		if !got.Parsed {
			t.Fatal("expected parsed")
		}
		if got.PerParticipant["Paola"] != "Concise and correct." {
			t.Errorf("Paola = %q", got.PerParticipant["Paola"])
		}
	})

	t.Run("no braces", func(t *testing.T) {
		got := FeedbackMap("Everyone did great!")
		if got.Parsed {
			t.Fatal("expected unparsed")
		}
		if len(got.PerParticipant) != 0 {
			t.Errorf("expected empty map, got %v", got.PerParticipant)
		}
		if got.Raw != "Everyone did great!" {
			t.Errorf("raw = %q", got.Raw)
		}
	})

	t.Run("invalid json between braces", func(t *testing.T) {
		got := FeedbackMap("{David: unquoted}")
		if got.Parsed {
			t.Fatal("expected unparsed")
		}
		if len(got.PerParticipant) != 0 {
			t.Errorf("expected empty map, got %v", got.PerParticipant)
		}
	})

	t.Run("non-string values rejected", func(t *testing.T) {
		got := FeedbackMap(`{"David": 7}`)
		if got.Parsed {
			t.Fatal("expected unparsed")
		}
	})

	t.Run("empty object parses", func(t *testing.T) {
		got := FeedbackMap("{}")
		if !got.Parsed {
			t.Fatal("expected parsed")
		}
		if len(got.PerParticipant) != 0 {
			t.Errorf("expected empty map, got %v", got.PerParticipant)
		}
	})
}
