package local

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/vibetune/ent"
	"github.com/abhisek/vibetune/ent/conversation"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/ent/profile"
	"github.com/abhisek/vibetune/internal/model"
)

func toProfile(p *ent.Profile) *model.Profile {
	out := &model.Profile{
		ID:                     p.ID,
		Username:               p.Username,
		Email:                  p.Email,
		PlacementTestCompleted: p.PlacementTestCompleted,
		CreatedAt:              p.CreatedAt,
		LastLogin:              p.LastLogin,
		DeviceID:               p.DeviceID,
	}
	if p.Level != nil {
		out.Level = model.Level(*p.Level)
	}
	return out
}

func (b *Backend) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	const op = "get profile"
	p, err := b.client.Profile.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, model.NotFoundf(op, "no profile for %s", id)
	}
	if err != nil {
		return nil, classify(op, err)
	}
	return toProfile(p), nil
}

func (b *Backend) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	const op = "update profile"
	if upd.Level != nil && !upd.Level.Valid() {
		return nil, model.Validationf(op, "unknown level %q", *upd.Level)
	}

	u := b.client.Profile.UpdateOneID(id)
	if upd.Username != nil {
		u.SetUsername(*upd.Username)
	}
	if upd.Level != nil {
		u.SetLevel(profile.Level(*upd.Level))
	}
	if upd.PlacementTestCompleted != nil {
		u.SetPlacementTestCompleted(*upd.PlacementTestCompleted)
	}
	if upd.LastLogin != nil {
		u.SetLastLogin(upd.LastLogin.UTC())
	}
	if len(u.Mutation().Fields()) == 0 {
		return b.GetProfile(ctx, id)
	}

	p, err := u.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, model.NotFoundf(op, "no profile for %s", id)
	}
	if err != nil {
		return nil, classify(op, err)
	}
	return toProfile(p), nil
}

func (b *Backend) CreateConversation(ctx context.Context, conv model.Conversation) (*model.Conversation, error) {
	const op = "create conversation"
	if conv.ProfileID == "" {
		return nil, model.Validationf(op, "profile id is required")
	}
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.StartedAt.IsZero() {
		conv.StartedAt = b.now()
	}

	err := b.client.Conversation.Create().
		SetID(conv.ID).
		SetProfileID(conv.ProfileID).
		SetTopic(conv.Topic).
		SetIsPlacementTest(conv.IsPlacementTest).
		SetStartedAt(conv.StartedAt.UTC()).
		SetNillableEndedAt(conv.EndedAt).
		Exec(ctx)
	if err != nil {
		return nil, classify(op, err)
	}
	return &conv, nil
}

func (b *Backend) ListConversations(ctx context.Context, profileID string) ([]model.Conversation, error) {
	convs, err := b.client.Conversation.Query().
		Where(conversation.ProfileID(profileID)).
		Order(ent.Desc(conversation.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, classify("list conversations", err)
	}

	out := make([]model.Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, model.Conversation{
			ID:              c.ID,
			ProfileID:       c.ProfileID,
			Topic:           c.Topic,
			IsPlacementTest: c.IsPlacementTest,
			StartedAt:       c.StartedAt,
			EndedAt:         c.EndedAt,
		})
	}
	return out, nil
}

// InsertMessage is idempotent on the message id, so a retried send that
// already landed is not an error.
func (b *Backend) InsertMessage(ctx context.Context, msg model.Message) error {
	const op = "insert message"
	if msg.ID == "" || msg.ConversationID == "" {
		return model.Validationf(op, "message and conversation ids are required")
	}
	if msg.Version == 0 {
		msg.Version = 1
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = b.now()
	}

	err := b.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.Message.Query().
			Where(message.ID(msg.ID)).
			Exist(ctx)
		if err != nil || exists {
			return err
		}

		create := tx.Message.Create().
			SetID(msg.ID).
			SetConversationID(msg.ConversationID).
			SetSender(message.Sender(msg.Sender)).
			SetType(message.Type(msg.Type)).
			SetContent(msg.Content).
			SetAudioURL(msg.AudioURL).
			SetGuidance(msg.Guidance).
			SetVersion(msg.Version).
			SetCreatedAt(msg.CreatedAt.UTC()).
			SetDeviceID(msg.DeviceID)
		if msg.Feedback != nil {
			create.SetProsodyFeedback(msg.Feedback)
		}
		if len(msg.VocabSuggestions) > 0 {
			create.SetVocabSuggestions(msg.VocabSuggestions)
		}
		if msg.RetryOfMessageID != "" {
			create.SetRetryOfMessageID(msg.RetryOfMessageID)
		}
		return create.Exec(ctx)
	})
	return classify(op, err)
}

func (b *Backend) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	msgs, err := b.client.Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classify("list messages", err)
	}

	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		msg := model.Message{
			ID:               m.ID,
			ConversationID:   m.ConversationID,
			Sender:           model.Sender(m.Sender),
			Type:             model.MessageType(m.Type),
			Content:          m.Content,
			AudioURL:         m.AudioURL,
			Feedback:         m.ProsodyFeedback,
			Guidance:         m.Guidance,
			VocabSuggestions: m.VocabSuggestions,
			Version:          m.Version,
			CreatedAt:        m.CreatedAt,
			DeviceID:         m.DeviceID,
		}
		if m.RetryOfMessageID != nil {
			msg.RetryOfMessageID = *m.RetryOfMessageID
		}
		out = append(out, msg)
	}
	return out, nil
}

func (b *Backend) RateMessage(ctx context.Context, r model.FeedbackRating) error {
	const op = "rate message"
	if r.Rating < 1 || r.Rating > 5 {
		return model.Validationf(op, "rating must be between 1 and 5, got %d", r.Rating)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = b.now()
	}

	err := b.client.FeedbackRating.Create().
		SetID(r.ID).
		SetMessageID(r.MessageID).
		SetProfileID(r.ProfileID).
		SetRating(r.Rating).
		SetCreatedAt(r.CreatedAt.UTC()).
		Exec(ctx)
	return classify(op, err)
}
