package lesson

import "fmt"

// The final test asks the human one question per focal point. Scripted
// students sit it out.

func (m *Machine) stepFinalTestSetup(sc *stepCtx) (Status, error) {
	st := m.state
	if m.students.Human() == nil {
		sc.emit(EventSystem, "", "No human student present; skipping the final test.")
		st.Stage = StageReporting
		return StatusContinue, nil
	}

	sc.emit(EventSystem, "", fmt.Sprintf(
		"Time for the final test, %s. One question per focal point; you are on your own.",
		m.humanName()))
	st.FinalQuestions = nil
	st.FinalAnswers = nil
	st.WaitingFor = ""
	st.Stage = StageFinalTestAsk
	return StatusContinue, nil
}

func (m *Machine) stepFinalTestAsk(sc *stepCtx) (Status, error) {
	st := m.state
	i := len(st.FinalQuestions)
	if i >= len(st.Topics) {
		st.Stage = StageFinalTestFeedback
		return StatusContinue, nil
	}

	text, ok := m.coordinatorSay(sc, "final-question", finalQuestionPrompt(st, i))
	if !ok {
		return StatusAwaitingInput, nil
	}

	st.FinalQuestions = append(st.FinalQuestions, text)
	if human := m.students.Human(); human != nil {
		human.Hear(text)
		st.WaitingFor = human.Name
	}
	st.Stage = StageFinalTestAnswer
	return StatusAwaitingInput, nil
}

func (m *Machine) stepFinalTestAnswer(sc *stepCtx) (Status, error) {
	st := m.state
	if len(st.FinalQuestions) != len(st.FinalAnswers)+1 {
		return "", &ProtocolError{Stage: st.Stage, Reason: "no final question is pending"}
	}
	human := m.students.Human()
	if human == nil {
		return "", &ProtocolError{Stage: st.Stage, Reason: "final test requires a human student"}
	}
	if sc.input == "" {
		return StatusAwaitingInput, nil
	}

	answer := sc.input
	sc.input = ""
	human.Say(answer)
	st.FinalAnswers = append(st.FinalAnswers, answer)
	sc.emit(EventHuman, human.Name, answer)
	st.WaitingFor = ""
	st.Stage = StageFinalTestAsk
	return StatusContinue, nil
}

func (m *Machine) stepFinalTestFeedback(sc *stepCtx) (Status, error) {
	st := m.state
	text, ok := m.coordinatorSay(sc, "final-feedback", finalFeedbackPrompt(st))
	if !ok {
		return StatusAwaitingInput, nil
	}

	st.FeedbackLog[FinalFeedbackKey] = text
	m.resetStudents()
	st.Stage = StageReporting
	return StatusContinue, nil
}
