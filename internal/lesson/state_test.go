package lesson

import (
	"testing"
)

func TestStateRecordRoundTrip(t *testing.T) {
	st := newState(DefaultParams())
	st.SessionID = "abc-123"
	st.Stage = StageQuizAnswers
	st.Topics = []string{"Newcomen's engine", "Watt's improvements"}
	st.TopicIndex = 1
	st.Activity = ActivityQuiz
	st.QuestionNum = 1
	st.QuestionText = "What changed?"
	st.Questions = map[int]string{1: "What changed?"}
	st.Answers = map[int]map[string]string{1: {"David": "The condenser."}}
	st.TurnIndex = 1
	st.WaitingFor = "David"
	st.FeedbackLog["topic_0_quiz"] = "Good work."

	rec, err := st.toRecord()
	if err != nil {
		t.Fatalf("toRecord: %v", err)
	}
	if rec.SessionID != "abc-123" || rec.Stage != string(StageQuizAnswers) {
		t.Fatalf("record = %+v", rec)
	}

	got, err := StateFromRecord(rec)
	if err != nil {
		t.Fatalf("StateFromRecord: %v", err)
	}
	if got.Stage != st.Stage || got.TopicIndex != st.TopicIndex || got.WaitingFor != st.WaitingFor {
		t.Errorf("restored state = %+v", got)
	}
	if got.Answers[1]["David"] != "The condenser." {
		t.Errorf("answers lost in round trip: %+v", got.Answers)
	}
	if got.Questions[1] != "What changed?" {
		t.Errorf("questions lost in round trip: %+v", got.Questions)
	}
	if got.FeedbackLog["topic_0_quiz"] != "Good work." {
		t.Errorf("feedback log lost in round trip: %+v", got.FeedbackLog)
	}
}

func TestCloneIsDeep(t *testing.T) {
	st := newState(DefaultParams())
	st.Topics = []string{"A"}
	st.Answers = map[int]map[string]string{1: {"David": "x"}}

	cp, err := st.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	cp.Topics[0] = "B"
	cp.Answers[1]["David"] = "y"

	if st.Topics[0] != "A" || st.Answers[1]["David"] != "x" {
		t.Error("clone shares memory with the original")
	}
}

func TestFeedbackKey(t *testing.T) {
	st := newState(DefaultParams())
	st.TopicIndex = 2
	st.Activity = ActivityCriticalThinking
	if got := st.feedbackKey(); got != "topic_2_critical_thinking" {
		t.Errorf("feedbackKey = %q", got)
	}
	st.Activity = ActivityQuiz
	if got := st.feedbackKey(); got != "topic_2_quiz" {
		t.Errorf("feedbackKey = %q", got)
	}
}

func TestParamsDefaults(t *testing.T) {
	p := Params{TopicCount: -1}.withDefaults()
	def := DefaultParams()
	if p != def {
		t.Errorf("withDefaults = %+v, want %+v", p, def)
	}

	p = Params{Subject: "Math", TopicCount: 3}.withDefaults()
	if p.Subject != "Math" || p.TopicCount != 3 {
		t.Errorf("explicit values overridden: %+v", p)
	}
	if p.Topic != def.Topic {
		t.Errorf("missing topic not defaulted: %+v", p)
	}
}
