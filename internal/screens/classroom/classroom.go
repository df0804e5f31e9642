// Package classroom renders the live lesson: a scrolling transcript on top
// and the answer prompt at the bottom.
package classroom

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/classroom/internal/lesson"
	"github.com/abhisek/classroom/internal/router"
	"github.com/abhisek/classroom/internal/screens/summary"
	"github.com/abhisek/classroom/internal/ui/components"
	"github.com/abhisek/classroom/internal/ui/layout"
	"github.com/abhisek/classroom/internal/ui/theme"
)

// stepDoneMsg carries the outcome of one machine invocation.
type stepDoneMsg struct {
	result *lesson.StepResult
	err    error
}

// Screen implements router.Screen for the active lesson.
type Screen struct {
	machine *lesson.Machine
	input   components.TextInput
	lines   []string
	status  lesson.Status
	busy    bool
	errMsg  string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)
var _ router.StatusProvider = (*Screen)(nil)

// New creates the lesson screen around a ready machine.
func New(m *lesson.Machine) *Screen {
	s := &Screen{
		machine: m,
		input:   components.NewTextInput(`Type "start lesson" to begin...`, 500),
		status:  lesson.StatusIdle,
	}
	s.lines = append(s.lines, theme.System.Render("· Welcome to the classroom."))
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.machine.State().Stage != lesson.StageAwaitingStart {
		// Resumed session; run the pending stage straight away.
		return tea.Batch(s.step(""), s.input.Init())
	}
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "Lesson"
}

func (s *Screen) HeaderStatus() string {
	return strings.ReplaceAll(string(s.machine.State().Stage), "_", " ")
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// step invokes the machine off the UI goroutine.
func (s *Screen) step(input string) tea.Cmd {
	m := s.machine
	return func() tea.Msg {
		res, err := m.Step(context.Background(), input)
		return stepDoneMsg{result: res, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		return s.handleStepDone(msg)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if s.busy {
				return s, nil
			}
			text := strings.TrimSpace(s.input.Value())
			s.input.Clear()
			s.errMsg = ""
			s.busy = true
			return s, s.step(text)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleStepDone(msg stepDoneMsg) (router.Screen, tea.Cmd) {
	s.busy = false
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, s.input.Focus()
	}

	for _, e := range msg.result.Events {
		s.lines = append(s.lines, renderEvent(e))
	}
	s.status = msg.result.Status

	switch msg.result.Status {
	case lesson.StatusContinue:
		s.busy = true
		return s, s.step("")
	case lesson.StatusComplete:
		st := s.machine.State()
		sum := summary.New(s.machine.ReportInput(), st.ReportPath)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: sum} }
	}
	return s, s.input.Focus()
}

func (s *Screen) View(width, height int) string {
	promptHeight := 2
	transcriptHeight := height - promptHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	wrap := lipgloss.NewStyle().Width(width - 2)
	var wrapped []string
	for _, line := range s.lines {
		wrapped = append(wrapped, wrap.Render(line))
	}

	rows := strings.Split(strings.Join(wrapped, "\n"), "\n")
	if len(rows) > transcriptHeight {
		rows = rows[len(rows)-transcriptHeight:]
	}
	transcript := strings.Join(rows, "\n")

	prompt := s.input.View()
	if s.busy {
		prompt = theme.Hint.Render("The class is thinking...")
	}
	if s.errMsg != "" {
		prompt = theme.Alert.Render(s.errMsg)
	}

	return transcript + "\n\n" + prompt
}

func renderEvent(e lesson.Event) string {
	switch e.Kind {
	case lesson.EventCoordinator:
		return theme.Coordinator.Render(e.Speaker+":") + " " + e.Text
	case lesson.EventStudent:
		return theme.Student.Render(e.Speaker+":") + " " + e.Text
	case lesson.EventHuman:
		return theme.Human.Render(e.Speaker+":") + " " + e.Text
	case lesson.EventWarning:
		return theme.Warning.Render("! " + strings.TrimSpace(e.Speaker+" "+e.Text))
	case lesson.EventError:
		return theme.Alert.Render("✗ " + e.Text)
	default:
		return theme.System.Render("· " + e.Text)
	}
}
