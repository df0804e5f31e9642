package lesson

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/classroom/internal/store"
)

// Stage identifies where the lesson protocol currently sits. Exactly one
// stage handler runs per machine invocation.
type Stage string

const (
	StageAwaitingStart     Stage = "awaiting_start"
	StageIntroduction      Stage = "introduction"
	StageExample           Stage = "example"
	StageDescribeTopic     Stage = "describe_topic"
	StageQuizAsk           Stage = "quiz_ask"
	StageQuizAnswers       Stage = "quiz_answers"
	StageQuizFeedback      Stage = "quiz_feedback"
	StageThinkAsk          Stage = "critical_thinking_ask"
	StageThinkAnswers      Stage = "critical_thinking_answers"
	StageThinkElaborate    Stage = "critical_thinking_elaborate"
	StageThinkFeedback     Stage = "critical_thinking_feedback"
	StageFinalTestSetup    Stage = "final_test_setup"
	StageFinalTestAsk      Stage = "final_test_ask"
	StageFinalTestAnswer   Stage = "final_test_answer"
	StageFinalTestFeedback Stage = "final_test_feedback"
	StageReporting         Stage = "reporting"
	StageComplete          Stage = "complete"
)

// Activity is the per-topic exercise kind.
type Activity string

const (
	ActivityQuiz             Activity = "quiz"
	ActivityCriticalThinking Activity = "critical_thinking"
)

// FinalFeedbackKey is the reserved feedback log key for the final test.
const FinalFeedbackKey = "final_test"

// Elaboration records one participant building on another's answer during
// the critical thinking round.
type Elaboration struct {
	On   string `json:"on"`
	Text string `json:"text"`
}

// State is the full serializable protocol state of one lesson session.
// Everything the machine needs to resume after a suspension lives here;
// participant chat histories are rebuilt from prompts and stay in memory.
type State struct {
	SessionID string `json:"session_id"`
	Stage     Stage  `json:"stage"`
	Params    Params `json:"params"`

	Topics     []string `json:"topics,omitempty"`
	TopicIndex int      `json:"topic_index"`

	// Current activity working set. Cleared when the activity's feedback
	// is recorded.
	Activity     Activity                  `json:"activity,omitempty"`
	QuestionNum  int                       `json:"question_num"`
	QuestionText string                    `json:"question_text,omitempty"`
	Questions    map[int]string            `json:"questions,omitempty"`
	Answers      map[int]map[string]string `json:"answers,omitempty"`
	TurnIndex    int                       `json:"turn_index"`
	WaitingFor   string                    `json:"waiting_for,omitempty"`
	Elaborations map[string]Elaboration    `json:"elaborations,omitempty"`

	FinalQuestions []string `json:"final_questions,omitempty"`
	FinalAnswers   []string `json:"final_answers,omitempty"`

	// FeedbackLog accumulates one entry per activity, keyed
	// "topic_<i>_quiz" or "topic_<i>_critical_thinking", plus the
	// reserved final test key.
	FeedbackLog map[string]string `json:"feedback_log,omitempty"`

	ReportPath string `json:"report_path,omitempty"`
}

func newState(params Params) *State {
	return &State{
		Stage:       StageAwaitingStart,
		Params:      params,
		FeedbackLog: map[string]string{},
	}
}

// feedbackKey names the feedback log entry for the current topic/activity.
func (s *State) feedbackKey() string {
	return fmt.Sprintf("topic_%d_%s", s.TopicIndex, s.Activity)
}

// resetActivity clears the per-activity working set.
func (s *State) resetActivity() {
	s.Activity = ""
	s.QuestionNum = 0
	s.QuestionText = ""
	s.Questions = nil
	s.Answers = nil
	s.TurnIndex = 0
	s.WaitingFor = ""
	s.Elaborations = nil
}

// Clone deep-copies the state through its JSON form.
func (s *State) Clone() (*State, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out State
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// toRecord serializes the state for the session store.
func (s *State) toRecord() (*store.SessionRecord, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("remarshal state: %w", err)
	}
	return &store.SessionRecord{
		SessionID: s.SessionID,
		Stage:     string(s.Stage),
		Data:      data,
	}, nil
}

// StateFromRecord rebuilds protocol state from a stored session record.
func StateFromRecord(rec *store.SessionRecord) (*State, error) {
	b, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal record data: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	if st.FeedbackLog == nil {
		st.FeedbackLog = map[string]string{}
	}
	return &st, nil
}
