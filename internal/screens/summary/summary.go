// Package summary shows the end-of-lesson study report.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/classroom/internal/lesson"
	"github.com/abhisek/classroom/internal/router"
	"github.com/abhisek/classroom/internal/ui/layout"
	"github.com/abhisek/classroom/internal/ui/theme"
)

// Screen implements router.Screen for the study report view.
type Screen struct {
	input lesson.ReportInput
	path  string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

func New(in lesson.ReportInput, path string) *Screen {
	return &Screen{input: in, path: path}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Study Report"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to class"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.input.Topic))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s · %s", s.input.StudentName, s.input.Subject)))
	b.WriteString("\n\n")

	for i, topic := range s.input.Topics {
		b.WriteString(theme.Coordinator.Render(fmt.Sprintf("%d. %s", i+1, topic)))
		b.WriteString("\n")
		b.WriteString(feedbackLine(s.input.FeedbackLog, i))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Coordinator.Render("Final test"))
	b.WriteString("\n")
	if fb, ok := s.input.FeedbackLog[lesson.FinalFeedbackKey]; ok {
		b.WriteString(theme.Body.Render(fb))
	} else {
		b.WriteString(theme.Hint.Render("The final test was not completed."))
	}
	b.WriteString("\n")

	if s.path != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Saved to " + s.path))
	}

	return lipgloss.NewStyle().Width(width).Padding(1, 2).Render(b.String())
}

func feedbackLine(log map[string]string, topicIdx int) string {
	if fb, ok := log[fmt.Sprintf("topic_%d_%s", topicIdx, lesson.ActivityQuiz)]; ok {
		return theme.Body.Render(fb)
	}
	if fb, ok := log[fmt.Sprintf("topic_%d_%s", topicIdx, lesson.ActivityCriticalThinking)]; ok {
		return theme.Body.Render(fb)
	}
	return theme.Hint.Render("No feedback was recorded.")
}
