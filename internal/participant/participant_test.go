package participant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/classroom/internal/llm"
)

func TestHistoryStartsWithInstruction(t *testing.T) {
	p := NewScripted("Marc", "You are the class clown.", llm.NewMockProvider())
	h := p.History()
	if len(h) != 1 {
		t.Fatalf("history len = %d, want 1", len(h))
	}
	if h[0].Role != RoleSystem || h[0].Content != "You are the class clown." {
		t.Fatalf("unexpected first entry: %+v", h[0])
	}
}

func TestRespondAppendsExchange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "It was the steam engine!"})
	p := NewScripted("Marc", "clown", mock)

	got, err := p.Respond(context.Background(), "What changed industry?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if got != "It was the steam engine!" {
		t.Fatalf("got %q", got)
	}

	h := p.History()
	if len(h) != 3 {
		t.Fatalf("history len = %d, want 3", len(h))
	}
	if h[1].Role != RoleUser || h[2].Role != RoleAssistant {
		t.Fatalf("unexpected roles: %s then %s", h[1].Role, h[2].Role)
	}

	// The provider must receive the system prompt separately from the turns.
	if mock.Calls[0].System != "clown" {
		t.Errorf("system = %q", mock.Calls[0].System)
	}
	if len(mock.Calls[0].Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(mock.Calls[0].Messages))
	}
}

func TestRespondErrorLeavesHistoryIntact(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	p := NewScripted("Paola", "quiet", mock)

	_, err := p.Respond(context.Background(), "Your answer?")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(p.History()) != 1 {
		t.Fatalf("history grew on error: %d entries", len(p.History()))
	}
}

func TestHumanCannotGenerate(t *testing.T) {
	p := NewHuman("David", "You are the learner.")
	_, err := p.Respond(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error for human respond")
	}
}

func TestSayAndHear(t *testing.T) {
	p := NewHuman("David", "learner")
	p.Hear("Question 1: when?")
	p.Say("In 1776.")

	h := p.History()
	if len(h) != 3 {
		t.Fatalf("history len = %d, want 3", len(h))
	}
	if h[1].Role != RoleUser || h[2].Role != RoleAssistant {
		t.Fatalf("unexpected roles: %s then %s", h[1].Role, h[2].Role)
	}
}

func TestResetKeepsInstructionAndState(t *testing.T) {
	p := NewScripted("Marc", "clown", llm.NewMockProvider(llm.MockResponse{Text: "hi"}))
	p.State["mood"] = "silly"
	_, _ = p.Respond(context.Background(), "hello")

	p.Reset()

	h := p.History()
	if len(h) != 1 || h[0].Content != "clown" {
		t.Fatalf("reset history = %+v", h)
	}
	if p.State["mood"] != "silly" {
		t.Error("scratch state lost on reset")
	}
}

func TestWithProtocol(t *testing.T) {
	got := WithProtocol("You are a teacher.", []string{"David", "Marc", "Paola"})
	if !strings.Contains(got, "David, Marc, Paola") {
		t.Errorf("protocol missing names: %q", got)
	}
	if !strings.HasPrefix(got, "You are a teacher.") {
		t.Errorf("instruction not preserved: %q", got)
	}

	if got := WithProtocol("solo", nil); got != "solo" {
		t.Errorf("empty others changed instruction: %q", got)
	}
}

func TestRoster(t *testing.T) {
	human := NewHuman("David", "learner")
	marc := NewScripted("Marc", "clown", llm.NewMockProvider())
	paola := NewScripted("Paola", "quiet", llm.NewMockProvider())

	r, err := NewRoster(human, marc, paola)
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}

	if r.Len() != 3 {
		t.Fatalf("len = %d", r.Len())
	}
	if r.At(0) != human {
		t.Error("human not first")
	}
	if r.Human() != human {
		t.Error("Human() did not find the learner")
	}
	if got := r.OthersFor("Marc"); len(got) != 2 || got[0] != "David" || got[1] != "Paola" {
		t.Errorf("OthersFor = %v", got)
	}
	if r.Next(2) != human {
		t.Error("Next should wrap around")
	}
	if r.ByName("Paola") != paola {
		t.Error("ByName failed")
	}

	if _, err := NewRoster(); err == nil {
		t.Error("expected error for empty roster")
	}
	if _, err := NewRoster(human, NewHuman("David", "dup")); err == nil {
		t.Error("expected error for duplicate names")
	}
}
