package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRecordSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exist")
	}

	err = repo.Save(ctx, &SessionRecord{
		SessionID: "abc",
		Stage:     "introduction",
		Data:      map[string]any{"topic_index": float64(0)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saving the same session again must update, not duplicate.
	err = repo.Save(ctx, &SessionRecord{
		SessionID: "abc",
		Stage:     "quiz_answers",
		Data:      map[string]any{"topic_index": float64(1)},
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().SessionRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("records = %d, want 1", count)
	}

	rec, err = repo.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if rec.Stage != "quiz_answers" {
		t.Errorf("stage = %q, want quiz_answers", rec.Stage)
	}
}

func TestSessionRecordLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for _, id := range []string{"one", "two", "three"} {
		err := repo.Save(ctx, &SessionRecord{
			SessionID: id,
			Stage:     "complete",
			Data:      map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	rec, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record")
	}
	if rec.SessionID != "three" {
		t.Errorf("session = %q, want three", rec.SessionID)
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	lines := []TranscriptEventData{
		{SessionID: "s1", Stage: "introduction", Speaker: "Teacher", Kind: "coordinator", Text: "Welcome."},
		{SessionID: "s1", Stage: "quiz_answers", Speaker: "Marc", Kind: "student", Text: "It was 1492!"},
		{SessionID: "s2", Stage: "introduction", Speaker: "", Kind: "system", Text: "Waiting."},
	}
	for i, l := range lines {
		if err := repo.AppendTranscript(ctx, l); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.Transcript(ctx, "s1")
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].Speaker != "Teacher" || got[1].Speaker != "Marc" {
		t.Errorf("unexpected order: %q then %q", got[0].Speaker, got[1].Speaker)
	}
	if got[1].Sequence <= got[0].Sequence {
		t.Errorf("sequence not increasing: %d then %d", got[0].Sequence, got[1].Sequence)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "question",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
		RequestBody:  "req",
		ResponseBody: "resp",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "question" || e.ResponseBody != "resp" {
		t.Errorf("unexpected event: %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req" {
		t.Errorf("get returned %+v", got)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev := int64(0)
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing (prev %d)", seq, prev)
		}
		prev = seq
	}
}
