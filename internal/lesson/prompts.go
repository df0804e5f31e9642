package lesson

import (
	"fmt"
	"strings"

	"github.com/abhisek/classroom/internal/participant"
)

// Prompt builders for the coordinator and scripted students. Structure is
// requested sparingly (a bracketed list for focal points, a JSON object for
// feedback); everything else is plain conversation.

func topicsPrompt(p Params) string {
	return fmt.Sprintf(
		"You are preparing a lesson on %q for a class on %q. "+
			"Propose exactly %d focal points that the lesson should cover. "+
			"Reply with only a list of strings, like [\"First focal point\", \"Second focal point\"].",
		p.Topic, p.Subject, p.TopicCount)
}

func defaultTopics(p Params) []string {
	out := make([]string, p.TopicCount)
	for i := range out {
		out[i] = fmt.Sprintf("Focal point %d", i+1)
	}
	return out
}

func introductionPrompt(st *State) string {
	return fmt.Sprintf(
		"Open today's lesson for the class. The subject is %q and the lesson is about %q. "+
			"The focal points are: %s. The students prefer a %s learning style. "+
			"Greet the class and explain in a few sentences what you will cover and why it matters.",
		st.Params.Subject, st.Params.Topic,
		strings.Join(st.Topics, "; "), st.Params.LearningStyle)
}

func examplePrompt(st *State) string {
	return fmt.Sprintf(
		"Give the class one vivid, concrete example that brings %q to life, "+
			"suited to a %s learning style. A short story or scene works well. "+
			"Keep it under a paragraph.",
		st.Params.Topic, st.Params.LearningStyle)
}

func describePrompt(st *State) string {
	return fmt.Sprintf(
		"Introduce the next focal point of the lesson: %q. "+
			"Explain it to the class in a few sentences, suited to a %s learning style.",
		st.Topics[st.TopicIndex], st.Params.LearningStyle)
}

func quizQuestionPrompt(st *State, q int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Ask the class quiz question %d of %d about %q. "+
			"Ask exactly one clear question and nothing else.",
		q, st.Params.QuestionCount, st.Topics[st.TopicIndex])

	if q > 1 {
		b.WriteString("\n\nThe class has answered the previous questions as follows:\n")
		b.WriteString(answersSummary(st, q-1))
		b.WriteString("Take these into account and do not repeat a question.")
	}
	return b.String()
}

// answersSummary renders every recorded answer up to and including question n.
func answersSummary(st *State, n int) string {
	var b strings.Builder
	for q := 1; q <= n; q++ {
		answers := st.Answers[q]
		if answers == nil {
			continue
		}
		fmt.Fprintf(&b, "Question %d: %s\n", q, st.Questions[q])
		for name, answer := range answers {
			fmt.Fprintf(&b, "  %s: %s\n", name, answer)
		}
	}
	return b.String()
}

func studentQuizPrompt(question string) string {
	return fmt.Sprintf(
		"The teacher asks the class: %s\nGive your own answer in one or two sentences.",
		question)
}

func quizFeedbackPrompt(st *State, students *participant.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The quiz on %q is over. Here is what everyone answered:\n\n", st.Topics[st.TopicIndex])
	b.WriteString(activityTranscript(st))
	b.WriteString("\nGive each student one sentence of personal feedback. ")
	b.WriteString(feedbackFormatClause(students))
	return b.String()
}

func criticalQuestionPrompt(st *State) string {
	return fmt.Sprintf(
		"Pose one open-ended critical thinking question about %q. "+
			"It should have no single right answer and invite discussion. "+
			"Ask exactly one question and nothing else.",
		st.Topics[st.TopicIndex])
}

func studentThinkPrompt(question string) string {
	return fmt.Sprintf(
		"The teacher asks the class to think about: %s\nShare your own view in two or three sentences.",
		question)
}

func elaborationPrompt(question, targetName, targetAnswer string) string {
	return fmt.Sprintf(
		"The class is discussing: %s\n%s answered: %q\n"+
			"Build on what %s said. Agree, disagree, or extend the idea in your own words, in two or three sentences.",
		question, targetName, targetAnswer, targetName)
}

func criticalFeedbackPrompt(st *State, students *participant.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The discussion of %q is over. The question was: %s\n\nInitial answers:\n",
		st.Topics[st.TopicIndex], st.QuestionText)
	for name, answer := range st.Answers[1] {
		fmt.Fprintf(&b, "  %s: %s\n", name, answer)
	}
	b.WriteString("\nHow each student built on a classmate's answer:\n")
	for name, el := range st.Elaborations {
		fmt.Fprintf(&b, "  %s (on %s's answer): %s\n", name, el.On, el.Text)
	}
	b.WriteString("\nGive each student one sentence of personal feedback on their reasoning. ")
	b.WriteString(feedbackFormatClause(students))
	return b.String()
}

// activityTranscript renders the full question/answer record of the current
// activity.
func activityTranscript(st *State) string {
	var b strings.Builder
	for q := 1; q <= st.QuestionNum; q++ {
		fmt.Fprintf(&b, "Question %d: %s\n", q, st.Questions[q])
		for name, answer := range st.Answers[q] {
			fmt.Fprintf(&b, "  %s: %s\n", name, answer)
		}
	}
	return b.String()
}

func feedbackFormatClause(students *participant.Roster) string {
	names := students.Names()
	example := "{"
	for i, n := range names {
		if i > 0 {
			example += ", "
		}
		example += fmt.Sprintf("%q: \"...\"", n)
	}
	example += "}"
	return fmt.Sprintf("Reply with only a JSON object mapping each name to their feedback, like %s.", example)
}

func finalQuestionPrompt(st *State, i int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"The lesson is ending with a final test for the human student. "+
			"Ask final test question %d of %d. It must be about %q. "+
			"Ask exactly one clear question and nothing else.",
		i+1, len(st.Topics), st.Topics[i])

	if i > 0 {
		b.WriteString("\n\nEarlier in the test:\n")
		for j := 0; j < i && j < len(st.FinalAnswers); j++ {
			fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n", j+1, st.FinalQuestions[j], j+1, st.FinalAnswers[j])
		}
	}
	return b.String()
}

func finalFeedbackPrompt(st *State) string {
	var b strings.Builder
	b.WriteString("The final test is over. Here are the questions and answers:\n\n")
	for i := range st.FinalQuestions {
		answer := ""
		if i < len(st.FinalAnswers) {
			answer = st.FinalAnswers[i]
		}
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n\n", i+1, st.FinalQuestions[i], i+1, answer)
	}
	b.WriteString("Give the student an overall assessment in a short paragraph: ")
	b.WriteString("what they understood well and what to review.")
	return b.String()
}
