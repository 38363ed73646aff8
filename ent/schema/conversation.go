package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation is a practice chat or a placement test run.
type Conversation struct {
	ent.Schema
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable(),
		field.String("profile_id"),
		field.String("topic").
			Comment("General Practice or Placement Test"),
		field.Bool("is_placement_test").
			Default(false),
		field.Time("started_at").
			Default(time.Now),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("conversations").
			Field("profile_id").
			Unique().
			Required(),
		edge.To("messages", Message.Type),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "started_at"),
	}
}
