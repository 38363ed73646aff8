package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// FeedbackRating is a learner's 1-5 rating of a coach message.
type FeedbackRating struct {
	ent.Schema
}

func (FeedbackRating) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable(),
		field.String("message_id"),
		field.String("profile_id"),
		field.Int("rating").
			Range(1, 5),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (FeedbackRating) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("message", Message.Type).
			Ref("ratings").
			Field("message_id").
			Unique().
			Required(),
		edge.From("profile", Profile.Type).
			Ref("ratings").
			Field("profile_id").
			Unique().
			Required(),
	}
}
