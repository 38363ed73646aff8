package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Profile is a learner's account row.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Identity provider user id"),
		field.String("username").
			Default(""),
		field.String("email").
			Unique(),
		field.Enum("level").
			Values("beginner", "intermediate", "advanced").
			Optional().
			Nillable(),
		field.Bool("placement_test_completed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login").
			Optional().
			Nillable(),
		field.String("device_id").
			Optional(),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("credential", Credential.Type).Unique(),
		edge.To("sessions", AuthSession.Type),
		edge.To("conversations", Conversation.Type),
		edge.To("ratings", FeedbackRating.Type),
	}
}
