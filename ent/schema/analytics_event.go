package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsEvent is a client-side usage event such as a screen view or a
// sent message.
type AnalyticsEvent struct {
	ent.Schema
}

func (AnalyticsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Default("").
			Comment("Empty before sign in"),
		field.String("event_type"),
		field.JSON("payload", json.RawMessage{}).
			Optional(),
	}
}

func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
	}
}
