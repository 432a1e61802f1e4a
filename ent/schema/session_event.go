package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records help-session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("student_id").
			NotEmpty().
			Comment("Student the session belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the student asked for help with"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("hint_requests").
			Default(0).
			Comment("Total hint requests (on end only)"),
		field.Int("questions_asked").
			Default(0).
			Comment("Total questions asked (on end only)"),
		field.Int("copy_paste_count").
			Default(0).
			Comment("Copy/paste events observed (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end only)"),
		field.JSON("signals", []string{}).
			Optional().
			Comment("Struggle signals raised during the session (on end only)"),
		field.Bool("intervention_offered").
			Default(false).
			Comment("Whether a concept check was offered"),
		field.Bool("intervention_accepted").
			Default(false).
			Comment("Whether the student accepted the offer"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("action"),
	}
}
