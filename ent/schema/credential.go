package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Credential is the local backend's bcrypt password row, one per profile.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("password_hash").
			Sensitive(),
	}
}

func (Credential) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("credential").
			Field("profile_id").
			Unique().
			Required().
			Immutable(),
	}
}
