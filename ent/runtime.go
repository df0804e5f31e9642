// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/classroom/ent/llmrequestevent"
	"github.com/abhisek/classroom/ent/schema"
	"github.com/abhisek/classroom/ent/sessionrecord"
	"github.com/abhisek/classroom/ent/transcriptevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrecord.UpdateDefaultUpdatedAt = sessionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcripteventMixin := schema.TranscriptEvent{}.Mixin()
	transcripteventMixinFields0 := transcripteventMixin[0].Fields()
	_ = transcripteventMixinFields0
	transcripteventFields := schema.TranscriptEvent{}.Fields()
	_ = transcripteventFields
	// transcripteventDescTimestamp is the schema descriptor for timestamp field.
	transcripteventDescTimestamp := transcripteventMixinFields0[1].Descriptor()
	// transcriptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transcriptevent.DefaultTimestamp = transcripteventDescTimestamp.Default.(func() time.Time)
	// transcripteventDescSessionID is the schema descriptor for session_id field.
	transcripteventDescSessionID := transcripteventFields[0].Descriptor()
	// transcriptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	transcriptevent.SessionIDValidator = transcripteventDescSessionID.Validators[0].(func(string) error)
}
