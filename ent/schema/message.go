package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/vibetune/internal/model"
)

// Message is one chat message. Retries point at the message they resend.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable(),
		field.String("conversation_id"),
		field.Enum("sender").
			Values("user", "ai"),
		field.Enum("type").
			Values("text", "audio"),
		field.Text("content"),
		field.String("audio_url").
			Optional(),
		field.JSON("prosody_feedback", &model.ProsodyFeedback{}).
			Optional(),
		field.String("guidance").
			Optional(),
		field.Strings("vocab_suggestions").
			Optional(),
		field.String("retry_of_message_id").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now),
		field.String("device_id").
			Optional(),
	}
}

func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required(),
		edge.To("retries", Message.Type).
			From("retry_of").
			Field("retry_of_message_id").
			Unique(),
		edge.To("ratings", FeedbackRating.Type),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}
