package store

import (
	"context"
	"fmt"

	"github.com/abhisek/classroom/ent"
	"github.com/abhisek/classroom/ent/sessionrecord"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, rec *SessionRecord) error {
	existing, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(rec.SessionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session record: %w", err)
	}

	if existing == nil {
		_, err = r.client.SessionRecord.Create().
			SetSessionID(rec.SessionID).
			SetStage(rec.Stage).
			SetData(rec.Data).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetStage(rec.Stage).
			SetData(rec.Data).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Latest(ctx context.Context) (*SessionRecord, error) {
	rec, err := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest session record: %w", err)
	}
	return entSessionRecord(rec), nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*SessionRecord, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session record: %w", err)
	}
	return entSessionRecord(rec), nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.client.SessionRecord.Delete().
		Where(sessionrecord.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

func entSessionRecord(rec *ent.SessionRecord) *SessionRecord {
	return &SessionRecord{
		ID:        rec.ID,
		SessionID: rec.SessionID,
		Stage:     rec.Stage,
		Data:      rec.Data,
		UpdatedAt: rec.UpdatedAt,
	}
}
