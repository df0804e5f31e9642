package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a persisted LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates token usage per purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// TranscriptEventData captures one classroom transcript line for persistence.
type TranscriptEventData struct {
	SessionID string
	Stage     string
	Speaker   string
	Kind      string
	Text      string
}

// TranscriptEntry is the read model for a persisted transcript line.
type TranscriptEntry struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Stage     string
	Speaker   string
	Kind      string
	Text      string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendTranscript records one classroom transcript line.
	AppendTranscript(ctx context.Context, data TranscriptEventData) error

	// Transcript returns all lines of a session in sequence order.
	Transcript(ctx context.Context, sessionID string) ([]TranscriptEntry, error)
}

// SessionRecord is the latest serialized protocol state for a session.
type SessionRecord struct {
	ID        int
	SessionID string
	Stage     string
	Data      map[string]any
	UpdatedAt time.Time
}

// SessionRepo stores one record per lesson session, upserted on save.
type SessionRepo interface {
	// Save inserts or updates the record for rec.SessionID.
	Save(ctx context.Context, rec *SessionRecord) error

	// Latest returns the most recently updated record, or nil if none exist.
	Latest(ctx context.Context) (*SessionRecord, error)

	// Get returns the record for a session ID, or nil if absent.
	Get(ctx context.Context, sessionID string) (*SessionRecord, error)

	// Delete removes the record for a session ID.
	Delete(ctx context.Context, sessionID string) error
}
