package lesson

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/classroom/internal/llm"
	"github.com/abhisek/classroom/internal/participant"
)

func testRoster(t *testing.T, marc llm.Provider) *participant.Roster {
	t.Helper()
	david := participant.NewHuman("David", "You are David, a curious student.")
	marcP := participant.NewScripted("Marc", "You are Marc, the class clown.", marc)
	roster, err := participant.NewRoster(david, marcP)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	return roster
}

func newTestMachine(t *testing.T, params Params, coord llm.Provider, students *participant.Roster, pick ActivityPicker) *Machine {
	t.Helper()
	m, err := New(Config{
		Params:      params,
		Coordinator: participant.NewCoordinator("Teacher", "You are the teacher.", coord),
		Students:    students,
		Pick:        pick,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// drive runs the machine until completion, feeding inputs whenever it
// suspends on the human. The first input opens the lesson.
func drive(t *testing.T, m *Machine, first string, inputs []string) []Event {
	t.Helper()
	var events []Event
	input := first
	next := 0
	for i := 0; i < 200; i++ {
		res, err := m.Step(context.Background(), input)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		events = append(events, res.Events...)
		input = ""
		switch res.Status {
		case StatusContinue:
		case StatusAwaitingInput:
			if next >= len(inputs) {
				t.Fatalf("machine wants input but the script is exhausted (stage %s)", m.State().Stage)
			}
			input = inputs[next]
			next++
		case StatusComplete:
			if next != len(inputs) {
				t.Fatalf("lesson ended with %d unused inputs", len(inputs)-next)
			}
			return events
		case StatusIdle:
			t.Fatalf("machine went idle mid-lesson (stage %s)", m.State().Stage)
		}
	}
	t.Fatalf("machine never completed (stage %s)", m.State().Stage)
	return nil
}

func TestCriticalThinkingLesson(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `Here you go: ["Watt and the separate condenser"]`},
		llm.MockResponse{Text: "Welcome, class! Today we study the steam engine."},
		llm.MockResponse{Text: "Picture a mine in Cornwall, slowly flooding..."},
		llm.MockResponse{Text: "The separate condenser kept the cylinder hot."},
		llm.MockResponse{Text: "Could industry have grown without the steam engine?"},
		llm.MockResponse{Text: `{"David": "Sharp reasoning.", "Marc": "Funny but shallow."}`},
		llm.MockResponse{Text: "What problem did the separate condenser solve?"},
		llm.MockResponse{Text: "You clearly understood the condenser. Review coal economics."},
	)
	marc := llm.NewMockProvider(
		llm.MockResponse{Text: "No way, we'd all still be riding horses!"},
		llm.MockResponse{Text: "David has a point, water wheels were everywhere."},
	)

	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 1}, coord, testRoster(t, marc),
		func() Activity { return ActivityCriticalThinking })

	events := drive(t, m, "start lesson", []string{
		"Factories could have kept using water power near rivers.",
		"Building on Marc's point, horses could never power a factory.",
		"It stopped wasting heat by condensing steam outside the cylinder.",
	})

	st := m.State()
	if st.Stage != StageAwaitingStart {
		t.Errorf("final stage = %s, want %s", st.Stage, StageAwaitingStart)
	}
	if got := st.FeedbackLog["topic_0_critical_thinking"]; got != "Sharp reasoning." {
		t.Errorf("feedback log entry = %q", got)
	}
	if got := st.FeedbackLog[FinalFeedbackKey]; !strings.Contains(got, "condenser") {
		t.Errorf("final feedback = %q", got)
	}
	if len(st.FinalQuestions) != 1 || len(st.FinalAnswers) != 1 {
		t.Errorf("final test recorded %d questions, %d answers", len(st.FinalQuestions), len(st.FinalAnswers))
	}
	if coord.CallCount() != 8 {
		t.Errorf("coordinator calls = %d, want 8", coord.CallCount())
	}
	if marc.CallCount() != 2 {
		t.Errorf("marc calls = %d, want 2", marc.CallCount())
	}

	var marcSpoke bool
	for _, e := range events {
		if e.Kind == EventStudent && e.Speaker == "Marc" {
			marcSpoke = true
		}
	}
	if !marcSpoke {
		t.Error("no student transcript line from Marc")
	}
}

func TestQuizCarriesPreviousAnswers(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["Beam engines"]`},
		llm.MockResponse{Text: "Welcome!"},
		llm.MockResponse{Text: "Imagine a beam rocking above an engine house."},
		llm.MockResponse{Text: "Beam engines translated piston strokes into pumping."},
		llm.MockResponse{Text: "What did a beam engine pump?"},
		llm.MockResponse{Text: "And where were they most used?"},
		llm.MockResponse{Text: `{"David": "Both answers were solid.", "Marc": "Try harder."}`},
		llm.MockResponse{Text: "Describe a beam engine."},
		llm.MockResponse{Text: "Good recall overall."},
	)
	marc := llm.NewMockProvider(
		llm.MockResponse{Text: "Water, obviously! Or was it lemonade?"},
		llm.MockResponse{Text: "In mines! Deep dark mines!"},
	)

	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 2}, coord, testRoster(t, marc),
		func() Activity { return ActivityQuiz })

	drive(t, m, "start lesson", []string{
		"Water out of flooded mines.",
		"Mostly in Cornish tin mines.",
		"A rocking beam linking a steam cylinder to a pump rod.",
	})

	if got := m.State().FeedbackLog["topic_0_quiz"]; got != "Both answers were solid." {
		t.Errorf("feedback log entry = %q", got)
	}

	// The second quiz question prompt must carry the first round's answers.
	secondQ := coord.Calls[5]
	prompt := secondQ.Messages[len(secondQ.Messages)-1].Content
	if !strings.Contains(prompt, "Water out of flooded mines.") {
		t.Errorf("second question prompt does not mention the previous human answer:\n%s", prompt)
	}
	if !strings.Contains(prompt, "lemonade") {
		t.Errorf("second question prompt does not mention the previous scripted answer:\n%s", prompt)
	}
}

func TestTwoTopicsAlternateActivities(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["Newcomen's engine", "Watt's improvements"]`},
		llm.MockResponse{Text: "Welcome!"},
		llm.MockResponse{Text: "An example."},
		llm.MockResponse{Text: "First focal point."},
		llm.MockResponse{Text: "Quiz question one?"},
		llm.MockResponse{Text: `{"David": "Good.", "Marc": "Loud."}`},
		llm.MockResponse{Text: "Second focal point."},
		llm.MockResponse{Text: "A question to ponder?"},
		llm.MockResponse{Text: `{"David": "Thoughtful.", "Marc": "Chaotic."}`},
		llm.MockResponse{Text: "Final question on Newcomen?"},
		llm.MockResponse{Text: "Final question on Watt?"},
		llm.MockResponse{Text: "Well done overall."},
	)
	marc := llm.NewMockProvider(
		llm.MockResponse{Text: "Answer one!"},
		llm.MockResponse{Text: "Answer two!"},
		llm.MockResponse{Text: "Elaboration!"},
	)

	activities := []Activity{ActivityQuiz, ActivityCriticalThinking}
	var picks int
	pick := func() Activity {
		a := activities[picks%len(activities)]
		picks++
		return a
	}

	m := newTestMachine(t, Params{TopicCount: 2, QuestionCount: 1}, coord, testRoster(t, marc), pick)

	drive(t, m, "start lesson", []string{
		"Quiz answer.",
		"Discussion answer.",
		"Elaborating on Marc.",
		"Final answer one.",
		"Final answer two.",
	})

	st := m.State()
	if _, ok := st.FeedbackLog["topic_0_quiz"]; !ok {
		t.Error("missing feedback for topic 0 quiz")
	}
	if _, ok := st.FeedbackLog["topic_1_critical_thinking"]; !ok {
		t.Error("missing feedback for topic 1 critical thinking")
	}
	if len(st.FinalQuestions) != 2 {
		t.Errorf("final questions = %d, want one per focal point", len(st.FinalQuestions))
	}
}

func TestSuspendedMachineIsIdempotent(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["One topic"]`},
		llm.MockResponse{Text: "Welcome!"},
		llm.MockResponse{Text: "An example."},
		llm.MockResponse{Text: "The topic."},
		llm.MockResponse{Text: "A quiz question?"},
	)
	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 1}, coord,
		testRoster(t, llm.NewMockProvider()), func() Activity { return ActivityQuiz })

	ctx := context.Background()
	input := "start lesson"
	for {
		res, err := m.Step(ctx, input)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		input = ""
		if res.Status == StatusAwaitingInput {
			break
		}
	}

	before, err := m.State().Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}

	for i := 0; i < 3; i++ {
		res, err := m.Step(ctx, "")
		if err != nil {
			t.Fatalf("no-op step: %v", err)
		}
		if res.Status != StatusAwaitingInput {
			t.Fatalf("no-op step status = %s", res.Status)
		}
		if len(res.Events) != 0 {
			t.Fatalf("no-op step emitted %d events: %+v", len(res.Events), res.Events)
		}
	}

	after, err := m.State().Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("state changed across no-op steps:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestScriptedStudentFailureGetsPlaceholder(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["One topic"]`},
		llm.MockResponse{Text: "Welcome!"},
		llm.MockResponse{Text: "An example."},
		llm.MockResponse{Text: "The topic."},
		llm.MockResponse{Text: "A quiz question?"},
	)
	// Marc's provider has an empty queue, so every generation fails.
	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 1}, coord,
		testRoster(t, llm.NewMockProvider()), func() Activity { return ActivityQuiz })

	ctx := context.Background()
	input := "start lesson"
	var sawWarning bool
	for m.State().Stage != StageQuizFeedback {
		res, err := m.Step(ctx, input)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		input = ""
		if res.Status == StatusAwaitingInput {
			input = "My answer."
		}
		for _, e := range res.Events {
			if e.Kind == EventWarning && e.Speaker == "Marc" {
				sawWarning = true
			}
		}
	}

	if got := m.State().Answers[1]["Marc"]; got != "(Marc stays quiet)" {
		t.Errorf("placeholder answer = %q", got)
	}
	if !sawWarning {
		t.Error("no warning event for Marc's failed generation")
	}
}

func TestCoordinatorFailureLeavesStageUnchanged(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["One topic"]`},
		// Queue empty after this; the introduction will fail.
	)
	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 1}, coord,
		testRoster(t, llm.NewMockProvider()), func() Activity { return ActivityQuiz })

	ctx := context.Background()
	if _, err := m.Step(ctx, "start lesson"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if m.State().Stage != StageIntroduction {
		t.Fatalf("stage = %s", m.State().Stage)
	}

	res, err := m.Step(ctx, "")
	if err != nil {
		t.Fatalf("failed step returned error: %v", err)
	}
	if res.Status != StatusAwaitingInput {
		t.Errorf("status = %s, want %s", res.Status, StatusAwaitingInput)
	}
	if m.State().Stage != StageIntroduction {
		t.Errorf("stage moved to %s despite generation failure", m.State().Stage)
	}
	var sawError bool
	for _, e := range res.Events {
		if e.Kind == EventError {
			sawError = true
		}
	}
	if !sawError {
		t.Error("no error event for the failed generation")
	}

	// Refill the queue; the same stage runs on the next invocation.
	coord.AddResponse(llm.MockResponse{Text: "Welcome back!"})
	if _, err := m.Step(ctx, ""); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if m.State().Stage != StageExample {
		t.Errorf("stage after retry = %s, want %s", m.State().Stage, StageExample)
	}
}

func TestAnswerWithoutQuestionIsProtocolError(t *testing.T) {
	m := newTestMachine(t, Params{}, llm.NewMockProvider(),
		testRoster(t, llm.NewMockProvider()), func() Activity { return ActivityQuiz })

	st := m.State()
	st.Stage = StageQuizAnswers
	st.Topics = []string{"Topic"}

	_, err := m.Step(context.Background(), "an answer")
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ProtocolError", err)
	}
	if m.State().Stage != StageQuizAnswers {
		t.Errorf("stage changed to %s on protocol error", m.State().Stage)
	}
}

func TestLessonWaitsForStartSignal(t *testing.T) {
	m := newTestMachine(t, Params{}, llm.NewMockProvider(),
		testRoster(t, llm.NewMockProvider()), nil)

	ctx := context.Background()
	res, err := m.Step(ctx, "")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Status != StatusIdle || len(res.Events) != 0 {
		t.Errorf("empty input: status %s, %d events", res.Status, len(res.Events))
	}

	res, err = m.Step(ctx, "hello?")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Status != StatusIdle {
		t.Errorf("chatter status = %s, want %s", res.Status, StatusIdle)
	}
	var sawHint bool
	for _, e := range res.Events {
		if e.Kind == EventSystem && strings.Contains(e.Text, "start lesson") {
			sawHint = true
		}
	}
	if !sawHint {
		t.Error("no hint about the start signal")
	}
	if m.State().Stage != StageAwaitingStart {
		t.Errorf("stage = %s", m.State().Stage)
	}
}

func TestStartSignalIsCaseInsensitiveSubstring(t *testing.T) {
	coord := llm.NewMockProvider(llm.MockResponse{Text: `["A"]`})
	m := newTestMachine(t, Params{TopicCount: 1}, coord,
		testRoster(t, llm.NewMockProvider()), nil)

	res, err := m.Step(context.Background(), "ok, let's START LESSON now")
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if res.Status != StatusContinue {
		t.Errorf("status = %s", res.Status)
	}
	if m.State().Stage != StageIntroduction {
		t.Errorf("stage = %s", m.State().Stage)
	}
	if m.State().SessionID == "" {
		t.Error("no session id assigned")
	}
}

func TestTopicFallbackWhenListUnparseable(t *testing.T) {
	coord := llm.NewMockProvider(llm.MockResponse{Text: "I would rather not make a list today."})
	m := newTestMachine(t, Params{TopicCount: 2}, coord,
		testRoster(t, llm.NewMockProvider()), nil)

	res, err := m.Step(context.Background(), "start lesson")
	if err != nil {
		t.Fatalf("step: %v", err)
	}

	st := m.State()
	if len(st.Topics) != 2 {
		t.Fatalf("topics = %v", st.Topics)
	}
	if st.Topics[0] != "Focal point 1" {
		t.Errorf("fallback topic = %q", st.Topics[0])
	}
	var sawWarning bool
	for _, e := range res.Events {
		if e.Kind == EventWarning {
			sawWarning = true
		}
	}
	if !sawWarning {
		t.Error("no warning about the fallback")
	}
}

func TestUnparseableFeedbackKeepsRawText(t *testing.T) {
	coord := llm.NewMockProvider(
		llm.MockResponse{Text: `["One topic"]`},
		llm.MockResponse{Text: "Welcome!"},
		llm.MockResponse{Text: "An example."},
		llm.MockResponse{Text: "The topic."},
		llm.MockResponse{Text: "A quiz question?"},
		llm.MockResponse{Text: "Everyone did great, no notes!"},
	)
	marc := llm.NewMockProvider(llm.MockResponse{Text: "An answer!"})
	m := newTestMachine(t, Params{TopicCount: 1, QuestionCount: 1}, coord,
		testRoster(t, marc), func() Activity { return ActivityQuiz })

	ctx := context.Background()
	input := "start lesson"
	for m.State().Stage != StageFinalTestSetup {
		res, err := m.Step(ctx, input)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		input = ""
		if res.Status == StatusAwaitingInput {
			input = "My answer."
		}
	}

	got := m.State().FeedbackLog["topic_0_quiz"]
	if !strings.HasPrefix(got, "Feedback could not be parsed.") {
		t.Errorf("feedback log entry = %q", got)
	}
	if !strings.Contains(got, "no notes!") {
		t.Errorf("raw text not preserved: %q", got)
	}
}
