package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptEvent records one line of classroom conversation: coordinator
// messages, student answers, human answers, and system notices.
type TranscriptEvent struct {
	ent.Schema
}

func (TranscriptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TranscriptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping lines in a lesson session"),
		field.String("stage").
			Comment("Lesson stage the line was produced in"),
		field.String("speaker").
			Comment("Participant name, or empty for system notices"),
		field.String("kind").
			Comment("coordinator, student, human, system, warning, or error"),
		field.Text("text").
			Comment("The spoken line"),
	}
}

func (TranscriptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
	}
}
