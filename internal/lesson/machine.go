package lesson

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/classroom/internal/extract"
	"github.com/abhisek/classroom/internal/llm"
	"github.com/abhisek/classroom/internal/participant"
	"github.com/abhisek/classroom/internal/store"
)

// ActivityPicker chooses the exercise kind for the next topic.
type ActivityPicker func() Activity

// RandomActivity is the production picker.
func RandomActivity() Activity {
	if rand.IntN(2) == 0 {
		return ActivityQuiz
	}
	return ActivityCriticalThinking
}

// ReportInput is everything the reporter needs to render a study report.
type ReportInput struct {
	StudentName   string
	Subject       string
	Topic         string
	LearningStyle string
	Topics        []string
	FeedbackLog   map[string]string
}

// Reporter renders the end-of-lesson study report and returns where it
// was written.
type Reporter interface {
	Generate(ctx context.Context, in ReportInput) (string, error)
}

// Config wires a lesson machine. Coordinator and Students are required;
// everything else is optional.
type Config struct {
	Params      Params
	Coordinator *participant.Participant
	Students    *participant.Roster

	// Pick chooses each topic's activity. Defaults to RandomActivity.
	Pick ActivityPicker

	// Reporter writes the study report at the end of the lesson. When nil
	// the reporting stage is a no-op.
	Reporter Reporter

	// Sessions and Events persist protocol state and transcript lines.
	// Either may be nil; the lesson then runs in memory only.
	Sessions store.SessionRepo
	Events   store.EventRepo
}

// Machine drives the lesson protocol. Each call to Step runs exactly one
// stage handler, so the machine can suspend on human input and be
// re-invoked when it arrives.
type Machine struct {
	state       *State
	coordinator *participant.Participant
	students    *participant.Roster
	pick        ActivityPicker
	reporter    Reporter
	sessions    store.SessionRepo
	events      store.EventRepo
}

func New(cfg Config) (*Machine, error) {
	if cfg.Coordinator == nil {
		return nil, errors.New("lesson: coordinator is required")
	}
	if cfg.Students == nil || cfg.Students.Len() == 0 {
		return nil, errors.New("lesson: at least one student is required")
	}
	pick := cfg.Pick
	if pick == nil {
		pick = RandomActivity
	}
	return &Machine{
		state:       newState(cfg.Params.withDefaults()),
		coordinator: cfg.Coordinator,
		students:    cfg.Students,
		pick:        pick,
		reporter:    cfg.Reporter,
		sessions:    cfg.Sessions,
		events:      cfg.Events,
	}, nil
}

// State exposes the live protocol state. Callers must treat it as read-only.
func (m *Machine) State() *State {
	return m.state
}

// Restore replaces the machine's state, typically with one loaded from the
// session store.
func (m *Machine) Restore(st *State) {
	if st.FeedbackLog == nil {
		st.FeedbackLog = map[string]string{}
	}
	m.state = st
}

// stepCtx carries one invocation's input and collects its output events.
// Handlers consume the input by clearing it.
type stepCtx struct {
	ctx    context.Context
	input  string
	events []Event
}

func (sc *stepCtx) emit(kind EventKind, speaker, text string) {
	sc.events = append(sc.events, Event{Kind: kind, Speaker: speaker, Text: text})
}

var stageHandlers = map[Stage]func(*Machine, *stepCtx) (Status, error){
	StageAwaitingStart:     (*Machine).stepAwaitingStart,
	StageIntroduction:      (*Machine).stepIntroduction,
	StageExample:           (*Machine).stepExample,
	StageDescribeTopic:     (*Machine).stepDescribeTopic,
	StageQuizAsk:           (*Machine).stepQuizAsk,
	StageQuizAnswers:       (*Machine).stepQuizAnswers,
	StageQuizFeedback:      (*Machine).stepQuizFeedback,
	StageThinkAsk:          (*Machine).stepThinkAsk,
	StageThinkAnswers:      (*Machine).stepThinkAnswers,
	StageThinkElaborate:    (*Machine).stepThinkElaborate,
	StageThinkFeedback:     (*Machine).stepThinkFeedback,
	StageFinalTestSetup:    (*Machine).stepFinalTestSetup,
	StageFinalTestAsk:      (*Machine).stepFinalTestAsk,
	StageFinalTestAnswer:   (*Machine).stepFinalTestAnswer,
	StageFinalTestFeedback: (*Machine).stepFinalTestFeedback,
	StageReporting:         (*Machine).stepReporting,
	StageComplete:          (*Machine).stepComplete,
}

// Step runs one stage handler. input is the human's pending line, or empty
// when there is none. On error the state is unchanged and the same
// invocation can simply be retried.
func (m *Machine) Step(ctx context.Context, input string) (*StepResult, error) {
	handler, ok := stageHandlers[m.state.Stage]
	if !ok {
		return nil, &ProtocolError{Stage: m.state.Stage, Reason: "unknown stage"}
	}

	sc := &stepCtx{ctx: ctx, input: strings.TrimSpace(input)}
	stage := m.state.Stage
	status, err := handler(m, sc)
	if err != nil {
		return nil, err
	}
	m.persist(ctx, stage, sc)
	return &StepResult{Status: status, Events: sc.events}, nil
}

// persist saves the session state and appends the step's events to the
// transcript. Persistence failures never fail the step.
func (m *Machine) persist(ctx context.Context, stage Stage, sc *stepCtx) {
	if m.state.SessionID == "" {
		return
	}
	if m.sessions != nil {
		if rec, err := m.state.toRecord(); err == nil {
			if err := m.sessions.Save(ctx, rec); err != nil {
				sc.emit(EventWarning, "", "could not save session: "+err.Error())
			}
		}
	}
	if m.events == nil {
		return
	}
	for _, e := range sc.events {
		_ = m.events.AppendTranscript(ctx, store.TranscriptEventData{
			SessionID: m.state.SessionID,
			Stage:     string(stage),
			Speaker:   e.Speaker,
			Kind:      string(e.Kind),
			Text:      e.Text,
		})
	}
}

// coordinatorAsk prompts the coordinator without speaking the reply into
// the room. The coordinator's history is reset after every prompt so each
// request stands alone. A failed generation leaves the stage unchanged so
// the next invocation retries it.
func (m *Machine) coordinatorAsk(sc *stepCtx, purpose, prompt string) (string, bool) {
	ctx := llm.WithPurpose(sc.ctx, purpose)
	text, err := m.coordinator.Respond(ctx, prompt)
	m.coordinator.Reset()
	if err != nil {
		sc.emit(EventError, "", fmt.Sprintf("%s could not respond (%v); press enter to retry", m.coordinator.Name, err))
		return "", false
	}
	return text, true
}

// coordinatorSay is coordinatorAsk plus a transcript line.
func (m *Machine) coordinatorSay(sc *stepCtx, purpose, prompt string) (string, bool) {
	text, ok := m.coordinatorAsk(sc, purpose, prompt)
	if ok {
		sc.emit(EventCoordinator, m.coordinator.Name, text)
	}
	return text, ok
}

func (m *Machine) humanName() string {
	if h := m.students.Human(); h != nil {
		return h.Name
	}
	return "you"
}

func (m *Machine) resetStudents() {
	for i := 0; i < m.students.Len(); i++ {
		m.students.At(i).Reset()
	}
}

func (m *Machine) stepAwaitingStart(sc *stepCtx) (Status, error) {
	if sc.input == "" {
		return StatusIdle, nil
	}
	sc.emit(EventHuman, m.humanName(), sc.input)
	if !strings.Contains(strings.ToLower(sc.input), "start lesson") {
		sc.emit(EventSystem, "", `The lesson has not begun. Type "start lesson" when you are ready.`)
		return StatusIdle, nil
	}

	params := m.state.Params
	text, ok := m.coordinatorAsk(sc, "focal-points", topicsPrompt(params))
	if !ok {
		return StatusAwaitingInput, nil
	}

	res := extract.StringList(text, defaultTopics(params))
	if res.Warning != "" {
		sc.emit(EventWarning, "", "focal points: "+res.Warning)
	}

	st := newState(params)
	st.SessionID = uuid.New().String()
	st.Topics = res.Values
	st.Stage = StageIntroduction
	m.state = st
	m.resetStudents()

	sc.emit(EventSystem, "", "Class is in session. Focal points: "+strings.Join(st.Topics, "; "))
	return StatusContinue, nil
}

func (m *Machine) stepIntroduction(sc *stepCtx) (Status, error) {
	if _, ok := m.coordinatorSay(sc, "introduction", introductionPrompt(m.state)); !ok {
		return StatusAwaitingInput, nil
	}
	m.state.Stage = StageExample
	return StatusContinue, nil
}

func (m *Machine) stepExample(sc *stepCtx) (Status, error) {
	if _, ok := m.coordinatorSay(sc, "example", examplePrompt(m.state)); !ok {
		return StatusAwaitingInput, nil
	}
	m.state.Stage = StageDescribeTopic
	return StatusContinue, nil
}

func (m *Machine) stepDescribeTopic(sc *stepCtx) (Status, error) {
	st := m.state
	if len(st.Topics) == 0 {
		return "", &ProtocolError{Stage: st.Stage, Reason: "no focal points"}
	}
	if st.TopicIndex >= len(st.Topics) {
		st.Stage = StageFinalTestSetup
		return StatusContinue, nil
	}
	if _, ok := m.coordinatorSay(sc, "describe-topic", describePrompt(st)); !ok {
		return StatusAwaitingInput, nil
	}

	st.resetActivity()
	st.Activity = m.pick()
	switch st.Activity {
	case ActivityCriticalThinking:
		sc.emit(EventSystem, "", fmt.Sprintf("Time to think critically about %q.", st.Topics[st.TopicIndex]))
		st.Stage = StageThinkAsk
	default:
		st.Activity = ActivityQuiz
		sc.emit(EventSystem, "", fmt.Sprintf("A quick quiz on %q.", st.Topics[st.TopicIndex]))
		st.Stage = StageQuizAsk
	}
	return StatusContinue, nil
}

// recordActivityFeedback parses the coordinator's feedback reply, speaks one
// line per student, stores the human's line in the feedback log and advances
// to the next topic. An unparseable reply is kept raw rather than dropped.
func (m *Machine) recordActivityFeedback(sc *stepCtx, text string) {
	st := m.state
	key := st.feedbackKey()
	fb := extract.FeedbackMap(text)
	if !fb.Parsed {
		sc.emit(EventWarning, "", "feedback was not in the expected format; keeping the raw text")
		sc.emit(EventCoordinator, m.coordinator.Name, text)
		st.FeedbackLog[key] = "Feedback could not be parsed. Raw response: " + fb.Raw
	} else {
		logged := false
		for i := 0; i < m.students.Len(); i++ {
			p := m.students.At(i)
			line := fb.PerParticipant[p.Name]
			if line == "" {
				line = fmt.Sprintf("No specific feedback for %s this round.", p.Name)
			}
			sc.emit(EventCoordinator, m.coordinator.Name, fmt.Sprintf("%s: %s", p.Name, line))
			if p.Kind == participant.KindHuman && !logged {
				st.FeedbackLog[key] = line
				logged = true
			}
		}
		if !logged {
			st.FeedbackLog[key] = text
		}
	}

	m.resetStudents()
	st.TopicIndex++
	st.resetActivity()
	st.Stage = StageDescribeTopic
}

// ReportInput assembles the reporter's input from the current state.
func (m *Machine) ReportInput() ReportInput {
	st := m.state
	return ReportInput{
		StudentName:   m.humanName(),
		Subject:       st.Params.Subject,
		Topic:         st.Params.Topic,
		LearningStyle: st.Params.LearningStyle,
		Topics:        st.Topics,
		FeedbackLog:   st.FeedbackLog,
	}
}

func (m *Machine) stepReporting(sc *stepCtx) (Status, error) {
	st := m.state
	if m.reporter != nil {
		path, err := m.reporter.Generate(sc.ctx, m.ReportInput())
		if err != nil {
			sc.emit(EventWarning, "", "could not write the study report: "+err.Error())
		} else {
			st.ReportPath = path
			sc.emit(EventSystem, "", "Study report saved to "+path)
		}
	}
	st.Stage = StageComplete
	return StatusContinue, nil
}

func (m *Machine) stepComplete(sc *stepCtx) (Status, error) {
	sc.emit(EventSystem, "", `That is the end of the lesson. Type "start lesson" to run another.`)
	m.state.Stage = StageAwaitingStart
	return StatusComplete, nil
}
