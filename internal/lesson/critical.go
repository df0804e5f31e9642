package lesson

import "github.com/abhisek/classroom/internal/participant"

// The critical thinking activity asks one open question, collects everyone's
// answer, then sends a second round where each participant elaborates on the
// next participant's answer.

func (m *Machine) stepThinkAsk(sc *stepCtx) (Status, error) {
	st := m.state
	text, ok := m.coordinatorSay(sc, "ct-question", criticalQuestionPrompt(st))
	if !ok {
		return StatusAwaitingInput, nil
	}

	st.QuestionText = text
	st.Questions = map[int]string{1: text}
	st.Answers = map[int]map[string]string{1: {}}
	st.TurnIndex = 0
	st.WaitingFor = ""
	st.Stage = StageThinkAnswers
	return StatusContinue, nil
}

func (m *Machine) stepThinkAnswers(sc *stepCtx) (Status, error) {
	st := m.state
	if st.QuestionText == "" || st.Answers[1] == nil {
		return "", &ProtocolError{Stage: st.Stage, Reason: "no question is pending"}
	}

	prompt := func(*participant.Participant) string {
		return studentThinkPrompt(st.QuestionText)
	}
	done, status := m.answerTurns(sc, 1, prompt)
	if !done {
		return status, nil
	}

	st.QuestionNum = 1
	st.TurnIndex = 0
	st.WaitingFor = ""
	st.Elaborations = map[string]Elaboration{}
	sc.emit(EventSystem, "", "Now each of you will build on a classmate's answer.")
	st.Stage = StageThinkElaborate
	return StatusContinue, nil
}

func (m *Machine) stepThinkElaborate(sc *stepCtx) (Status, error) {
	st := m.state
	if st.Answers[1] == nil || st.Elaborations == nil {
		return "", &ProtocolError{Stage: st.Stage, Reason: "no discussion in progress"}
	}

	done, status := m.elaborationTurns(sc)
	if !done {
		return status, nil
	}

	st.TurnIndex = 0
	st.Stage = StageThinkFeedback
	return StatusContinue, nil
}

func (m *Machine) stepThinkFeedback(sc *stepCtx) (Status, error) {
	text, ok := m.coordinatorAsk(sc, "ct-feedback", criticalFeedbackPrompt(m.state, m.students))
	if !ok {
		return StatusAwaitingInput, nil
	}
	m.recordActivityFeedback(sc, text)
	return StatusContinue, nil
}
