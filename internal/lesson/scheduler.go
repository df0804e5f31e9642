package lesson

import (
	"fmt"

	"github.com/abhisek/classroom/internal/llm"
	"github.com/abhisek/classroom/internal/participant"
)

// answerTurns walks the roster in order for question q of the current
// activity. The human goes first in roster order; when their answer has not
// arrived yet the machine suspends and this invocation ends. Scripted
// students answer synchronously, with a spoken placeholder when generation
// fails so the round always completes.
//
// Re-invoking with no input while suspended records nothing and emits
// nothing.
func (m *Machine) answerTurns(sc *stepCtx, q int, scriptedPrompt func(p *participant.Participant) string) (bool, Status) {
	st := m.state
	answers := st.Answers[q]

	for st.TurnIndex < m.students.Len() {
		p := m.students.At(st.TurnIndex)

		if p.Kind == participant.KindHuman {
			if sc.input == "" {
				if st.WaitingFor != p.Name {
					st.WaitingFor = p.Name
					sc.emit(EventSystem, "", fmt.Sprintf("%s, your answer?", p.Name))
				}
				return false, StatusAwaitingInput
			}
			answer := sc.input
			sc.input = ""
			p.Hear(st.QuestionText)
			p.Say(answer)
			answers[p.Name] = answer
			sc.emit(EventHuman, p.Name, answer)
			st.WaitingFor = ""
			st.TurnIndex++
			continue
		}

		ctx := llm.WithPurpose(sc.ctx, "student-answer")
		text, err := p.Respond(ctx, scriptedPrompt(p))
		if err != nil {
			sc.emit(EventWarning, p.Name, "did not answer: "+err.Error())
			text = fmt.Sprintf("(%s stays quiet)", p.Name)
		}
		answers[p.Name] = text
		sc.emit(EventStudent, p.Name, text)
		st.TurnIndex++
	}
	return true, StatusContinue
}

// elaborationTurns runs the second round of the critical thinking activity:
// each participant builds on the next participant's initial answer, with
// wrap-around. Scheduling mirrors answerTurns.
func (m *Machine) elaborationTurns(sc *stepCtx) (bool, Status) {
	st := m.state
	question := st.QuestionText

	for st.TurnIndex < m.students.Len() {
		p := m.students.At(st.TurnIndex)
		target := m.students.Next(st.TurnIndex)
		targetAnswer := st.Answers[1][target.Name]

		if p.Kind == participant.KindHuman {
			if sc.input == "" {
				if st.WaitingFor != p.Name {
					st.WaitingFor = p.Name
					sc.emit(EventSystem, "", fmt.Sprintf(
						"%s, build on %s's answer: %q", p.Name, target.Name, targetAnswer))
				}
				return false, StatusAwaitingInput
			}
			text := sc.input
			sc.input = ""
			p.Say(text)
			st.Elaborations[p.Name] = Elaboration{On: target.Name, Text: text}
			sc.emit(EventHuman, p.Name, text)
			st.WaitingFor = ""
			st.TurnIndex++
			continue
		}

		ctx := llm.WithPurpose(sc.ctx, "elaboration")
		text, err := p.Respond(ctx, elaborationPrompt(question, target.Name, targetAnswer))
		if err != nil {
			sc.emit(EventWarning, p.Name, "did not answer: "+err.Error())
			text = fmt.Sprintf("(%s stays quiet)", p.Name)
		}
		st.Elaborations[p.Name] = Elaboration{On: target.Name, Text: text}
		sc.emit(EventStudent, p.Name, text)
		st.TurnIndex++
	}
	return true, StatusContinue
}
