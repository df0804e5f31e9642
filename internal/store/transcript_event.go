package store

import (
	"context"
	"fmt"

	"github.com/abhisek/classroom/ent"
	"github.com/abhisek/classroom/ent/transcriptevent"
)

func (r *eventRepo) AppendTranscript(ctx context.Context, data TranscriptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TranscriptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStage(data.Stage).
		SetSpeaker(data.Speaker).
		SetKind(data.Kind).
		SetText(data.Text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save transcript event: %w", err)
	}

	return nil
}

func (r *eventRepo) Transcript(ctx context.Context, sessionID string) ([]TranscriptEntry, error) {
	rows, err := r.client.TranscriptEvent.Query().
		Where(transcriptevent.SessionID(sessionID)).
		Order(ent.Asc(transcriptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}

	entries := make([]TranscriptEntry, 0, len(rows))
	for _, e := range rows {
		entries = append(entries, TranscriptEntry{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionID: e.SessionID,
			Stage:     e.Stage,
			Speaker:   e.Speaker,
			Kind:      e.Kind,
			Text:      e.Text,
		})
	}
	return entries, nil
}
