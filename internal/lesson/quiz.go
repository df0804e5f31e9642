package lesson

import "github.com/abhisek/classroom/internal/participant"

func (m *Machine) stepQuizAsk(sc *stepCtx) (Status, error) {
	st := m.state
	q := st.QuestionNum + 1
	if q > st.Params.QuestionCount {
		st.Stage = StageQuizFeedback
		return StatusContinue, nil
	}

	text, ok := m.coordinatorSay(sc, "quiz-question", quizQuestionPrompt(st, q))
	if !ok {
		return StatusAwaitingInput, nil
	}

	st.QuestionText = text
	if st.Questions == nil {
		st.Questions = map[int]string{}
	}
	st.Questions[q] = text
	if st.Answers == nil {
		st.Answers = map[int]map[string]string{}
	}
	st.Answers[q] = map[string]string{}
	st.TurnIndex = 0
	st.WaitingFor = ""
	st.Stage = StageQuizAnswers
	return StatusContinue, nil
}

func (m *Machine) stepQuizAnswers(sc *stepCtx) (Status, error) {
	st := m.state
	q := st.QuestionNum + 1
	if st.QuestionText == "" || st.Answers[q] == nil {
		return "", &ProtocolError{Stage: st.Stage, Reason: "no question is pending"}
	}

	prompt := func(*participant.Participant) string {
		return studentQuizPrompt(st.QuestionText)
	}
	done, status := m.answerTurns(sc, q, prompt)
	if !done {
		return status, nil
	}

	st.QuestionNum = q
	st.TurnIndex = 0
	st.Stage = StageQuizAsk
	return StatusContinue, nil
}

func (m *Machine) stepQuizFeedback(sc *stepCtx) (Status, error) {
	text, ok := m.coordinatorAsk(sc, "quiz-feedback", quizFeedbackPrompt(m.state, m.students))
	if !ok {
		return StatusAwaitingInput, nil
	}
	m.recordActivityFeedback(sc, text)
	return StatusContinue, nil
}
