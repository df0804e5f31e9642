package classroom

import (
	"strings"
	"testing"

	"github.com/abhisek/classroom/internal/lesson"
	"github.com/abhisek/classroom/internal/llm"
	"github.com/abhisek/classroom/internal/participant"
	"github.com/abhisek/classroom/internal/router"
)

func testMachine(t *testing.T) *lesson.Machine {
	t.Helper()
	roster, err := participant.NewRoster(
		participant.NewHuman("David", "You are David."),
	)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	m, err := lesson.New(lesson.Config{
		Coordinator: participant.NewCoordinator("Teacher", "You are the teacher.", llm.NewMockProvider()),
		Students:    roster,
	})
	if err != nil {
		t.Fatalf("machine: %v", err)
	}
	return m
}

func TestStepDoneAppendsTranscript(t *testing.T) {
	s := New(testMachine(t))

	updated, _ := s.Update(stepDoneMsg{result: &lesson.StepResult{
		Status: lesson.StatusAwaitingInput,
		Events: []lesson.Event{
			{Kind: lesson.EventCoordinator, Speaker: "Teacher", Text: "Welcome, class!"},
			{Kind: lesson.EventSystem, Text: "David, your answer?"},
		},
	}})
	s = updated.(*Screen)

	view := s.View(100, 30)
	if !strings.Contains(view, "Welcome, class!") {
		t.Error("coordinator line missing from transcript")
	}
	if !strings.Contains(view, "David, your answer?") {
		t.Error("system line missing from transcript")
	}
}

func TestContinueStatusStepsAgain(t *testing.T) {
	s := New(testMachine(t))

	_, cmd := s.Update(stepDoneMsg{result: &lesson.StepResult{Status: lesson.StatusContinue}})
	if cmd == nil {
		t.Fatal("continue status should schedule another step")
	}
	if !s.busy {
		t.Error("screen should stay busy while stepping")
	}
}

func TestCompleteStatusPushesSummary(t *testing.T) {
	s := New(testMachine(t))

	_, cmd := s.Update(stepDoneMsg{result: &lesson.StepResult{Status: lesson.StatusComplete}})
	if cmd == nil {
		t.Fatal("complete status should push the summary screen")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil || push.Screen.Title() != "Study Report" {
		t.Errorf("unexpected pushed screen: %+v", push.Screen)
	}
}

func TestStepErrorIsShownNotFatal(t *testing.T) {
	s := New(testMachine(t))

	perr := &lesson.ProtocolError{Stage: lesson.StageQuizAnswers, Reason: "no question is pending"}
	updated, _ := s.Update(stepDoneMsg{err: perr})
	s = updated.(*Screen)

	if s.busy {
		t.Error("screen should not stay busy after an error")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "no question is pending") {
		t.Error("error message not shown")
	}
}

func TestHeaderStatusHumanizesStage(t *testing.T) {
	s := New(testMachine(t))
	if got := s.HeaderStatus(); got != "awaiting start" {
		t.Errorf("HeaderStatus = %q", got)
	}
}
