// Package participant models the people in the classroom: the coordinator
// running the lesson, scripted LLM students, and the human learner.
package participant

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/classroom/internal/llm"
)

// Kind distinguishes how a participant produces answers.
type Kind string

const (
	// KindCoordinator runs the lesson and produces prompts, questions,
	// and feedback.
	KindCoordinator Kind = "coordinator"

	// KindScripted answers synchronously through an LLM persona.
	KindScripted Kind = "scripted"

	// KindHuman answers only when the person at the terminal types one.
	KindHuman Kind = "human"
)

// Message is one entry in a participant's conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const defaultMaxTokens = 1024

// Participant is one member of the classroom. Each participant owns its own
// conversation history (the first entry is always its system instruction)
// and a scratch state map for values that outlive a single exchange.
type Participant struct {
	Name        string
	Kind        Kind
	Instruction string

	// Temperature for LLM-backed participants. Personas read better with
	// some randomness; the coordinator stays close to deterministic.
	Temperature float64

	MaxTokens int

	history  []Message
	State    map[string]string
	provider llm.Provider
}

// NewCoordinator creates the participant that drives the lesson.
func NewCoordinator(name, instruction string, p llm.Provider) *Participant {
	return newParticipant(name, KindCoordinator, instruction, p, 0.2)
}

// NewScripted creates an LLM-backed student.
func NewScripted(name, instruction string, p llm.Provider) *Participant {
	return newParticipant(name, KindScripted, instruction, p, 0.8)
}

// NewHuman creates the human learner. Humans never generate; their answers
// are recorded from terminal input.
func NewHuman(name, instruction string) *Participant {
	return newParticipant(name, KindHuman, instruction, nil, 0)
}

func newParticipant(name string, kind Kind, instruction string, p llm.Provider, temp float64) *Participant {
	return &Participant{
		Name:        name,
		Kind:        kind,
		Instruction: instruction,
		Temperature: temp,
		MaxTokens:   defaultMaxTokens,
		history:     []Message{{Role: RoleSystem, Content: instruction}},
		State:       map[string]string{},
		provider:    p,
	}
}

// Respond appends prompt to the history, generates a reply, appends it,
// and returns the reply text. The history is left untouched on error so a
// later invocation can retry the same exchange.
func (p *Participant) Respond(ctx context.Context, prompt string) (string, error) {
	if p.Kind == KindHuman {
		return "", fmt.Errorf("participant %s is human and cannot generate", p.Name)
	}
	if p.provider == nil {
		return "", fmt.Errorf("participant %s has no provider", p.Name)
	}

	msgs := make([]llm.Message, 0, len(p.history))
	for _, m := range p.history[1:] {
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})

	resp, err := p.provider.Generate(ctx, llm.Request{
		System:      p.Instruction,
		Messages:    msgs,
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.Name, err)
	}

	p.history = append(p.history,
		Message{Role: RoleUser, Content: prompt},
		Message{Role: RoleAssistant, Content: resp.Text},
	)
	return resp.Text, nil
}

// Hear adds something said to this participant without generating a reply.
func (p *Participant) Hear(text string) {
	p.history = append(p.history, Message{Role: RoleUser, Content: text})
}

// Say records this participant's own words. Used for human answers, which
// arrive from the terminal rather than a provider.
func (p *Participant) Say(text string) {
	p.history = append(p.history, Message{Role: RoleAssistant, Content: text})
}

// Reset clears the conversation back to just the system instruction.
// Scratch state survives.
func (p *Participant) Reset() {
	p.history = []Message{{Role: RoleSystem, Content: p.Instruction}}
}

// History returns a copy of the conversation history.
func (p *Participant) History() []Message {
	out := make([]Message, len(p.history))
	copy(out, p.history)
	return out
}

// WithProtocol appends the interaction protocol to an instruction, telling
// the participant who else is in the room.
func WithProtocol(instruction string, others []string) string {
	if len(others) == 0 {
		return instruction
	}
	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nYou are in a classroom with the following other participants: ")
	b.WriteString(strings.Join(others, ", "))
	b.WriteString(". Speak in your own voice, address the others by name when it helps, ")
	b.WriteString("and keep each reply short enough to read aloud.")
	return b.String()
}
