package report

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/classroom/internal/lesson"
)

func sampleInput() lesson.ReportInput {
	return lesson.ReportInput{
		StudentName:   "David",
		Subject:       "First Industrial Revolution",
		Topic:         "The Invention of the Steam Engine",
		LearningStyle: "Visual and Auditory",
		Topics:        []string{"Newcomen's engine", "Watt's improvements"},
		FeedbackLog: map[string]string{
			"topic_0_quiz":              "Solid recall of the pumping cycle.",
			"topic_1_critical_thinking": "Thoughtful take on efficiency.",
			lesson.FinalFeedbackKey:     "You understood the condenser well.",
		},
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleInput(), time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"# Study Report: The Invention of the Steam Engine",
		"**Student:** David",
		"March 14, 2025",
		"### 1. Newcomen's engine",
		"**Quiz feedback:** Solid recall of the pumping cycle.",
		"### 2. Watt's improvements",
		"**Critical thinking feedback:** Thoughtful take on efficiency.",
		"## Final Test",
		"You understood the condenser well.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestRenderMissingFeedback(t *testing.T) {
	in := sampleInput()
	in.FeedbackLog = map[string]string{}

	got := Render(in, time.Now())
	if !strings.Contains(got, "No feedback was recorded for this focal point.") {
		t.Error("missing per-topic placeholder")
	}
	if !strings.Contains(got, "The final test was not completed.") {
		t.Error("missing final test placeholder")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	w := NewWriter(t.TempDir())
	w.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	path, err := w.Generate(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasSuffix(path, "study_report_2025-03-14_100000.md") {
		t.Errorf("path = %q", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "# Study Report") {
		t.Errorf("report content:\n%s", b)
	}
}
