package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AuthSession is a local backend session token.
type AuthSession struct {
	ent.Schema
}

func (AuthSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("access_token").
			Sensitive().
			Immutable(),
		field.String("refresh_token").
			Sensitive(),
		field.String("profile_id"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (AuthSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("sessions").
			Field("profile_id").
			Unique().
			Required(),
	}
}
