package summary

import (
	"strings"
	"testing"

	"github.com/abhisek/classroom/internal/lesson"
)

func TestViewShowsFeedback(t *testing.T) {
	s := New(lesson.ReportInput{
		StudentName: "David",
		Subject:     "First Industrial Revolution",
		Topic:       "The Invention of the Steam Engine",
		Topics:      []string{"Newcomen's engine", "Watt's improvements"},
		FeedbackLog: map[string]string{
			"topic_0_quiz":              "Solid recall.",
			"topic_1_critical_thinking": "Thoughtful take.",
			lesson.FinalFeedbackKey:     "Well done overall.",
		},
	}, "/tmp/report.md")

	view := s.View(100, 40)
	for _, want := range []string{
		"The Invention of the Steam Engine",
		"1. Newcomen's engine",
		"Solid recall.",
		"2. Watt's improvements",
		"Thoughtful take.",
		"Well done overall.",
		"/tmp/report.md",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewMissingFeedback(t *testing.T) {
	s := New(lesson.ReportInput{
		Topic:       "Topic",
		Topics:      []string{"Only one"},
		FeedbackLog: map[string]string{},
	}, "")

	view := s.View(100, 40)
	if !strings.Contains(view, "No feedback was recorded.") {
		t.Error("missing per-topic placeholder")
	}
	if !strings.Contains(view, "The final test was not completed.") {
		t.Error("missing final test placeholder")
	}
}
