package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single graded review and the schedule it produced.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Student who reviewed the item"),
		field.String("item_id").
			NotEmpty().
			Comment("Review item that was graded"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the item belongs to"),
		field.String("outcome").
			NotEmpty().
			Comment("forgot, hard, good, or easy"),
		field.Float("response_time_secs").
			Default(0).
			Comment("Seconds the student took to answer"),
		field.Float("interval_days").
			Comment("Interval assigned by this review"),
		field.Float("ease_factor").
			Comment("Ease factor after this review"),
		field.Int("repetitions").
			Comment("Consecutive successful reviews after this one"),
		field.Float("mastery_score").
			Default(0).
			Comment("Topic mastery after this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("item_id"),
		index.Fields("topic"),
		index.Fields("outcome"),
	}
}
