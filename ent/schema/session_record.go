package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord holds the latest serialized protocol state for a lesson
// session, upserted after every step so an interrupted lesson can resume.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID of the lesson session"),
		field.String("stage").
			Comment("Stage the session was last observed in"),
		field.JSON("data", map[string]any{}).
			Comment("Full protocol state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
