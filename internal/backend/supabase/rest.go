package supabase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"github.com/abhisek/vibetune/internal/model"
)

// firstRow returns the only row a filtered request expects, or NotFound.
func firstRow[T any](op string, rows []T) (*T, error) {
	if len(rows) == 0 {
		return nil, model.E(model.KindNotFound, op, model.ErrNotFound)
	}
	return &rows[0], nil
}

func (c *Client) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	const op = "get profile"
	var rows []model.Profile
	_, err := c.rest(ctx).From("profiles").
		Select("*", "", false).
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, c.restError(op, err)
	}
	return firstRow(op, rows)
}

func (c *Client) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	const op = "update profile"
	if upd.Level != nil && !upd.Level.Valid() {
		return nil, model.Validationf(op, "unknown level %q", *upd.Level)
	}
	var rows []model.Profile
	_, err := c.rest(ctx).From("profiles").
		Update(upd, "representation", "").
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, c.restError(op, err)
	}
	return firstRow(op, rows)
}

func (c *Client) CreateConversation(ctx context.Context, conv model.Conversation) (*model.Conversation, error) {
	const op = "create conversation"
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.StartedAt.IsZero() {
		conv.StartedAt = time.Now().UTC()
	}
	var rows []model.Conversation
	_, err := c.rest(ctx).From("conversations").
		Insert(conv, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, c.restError(op, err)
	}
	return firstRow(op, rows)
}

func (c *Client) ListConversations(ctx context.Context, profileID string) ([]model.Conversation, error) {
	var out []model.Conversation
	_, err := c.rest(ctx).From("conversations").
		Select("*", "", false).
		Eq("profile_id", profileID).
		Order("started_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&out)
	return out, c.restError("list conversations", err)
}

// InsertMessage upserts on the message id so replays from the retry queue
// are harmless.
func (c *Client) InsertMessage(ctx context.Context, msg model.Message) error {
	const op = "insert message"
	if msg.ID == "" || msg.ConversationID == "" {
		return model.Validationf(op, "message and conversation ids are required")
	}
	if msg.Version == 0 {
		msg.Version = 1
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	_, _, err := c.rest(ctx).From("messages").
		Upsert(msg, "id", "minimal", "").
		Execute()
	return c.restError(op, err)
}

func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	var out []model.Message
	_, err := c.rest(ctx).From("messages").
		Select("*", "", false).
		Eq("conversation_id", conversationID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&out)
	return out, c.restError("list messages", err)
}

func (c *Client) RateMessage(ctx context.Context, r model.FeedbackRating) error {
	const op = "rate message"
	if r.Rating < 1 || r.Rating > 5 {
		return model.Validationf(op, "rating must be between 1 and 5, got %d", r.Rating)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, _, err := c.rest(ctx).From("feedback_rating").
		Insert(r, false, "", "minimal", "").
		Execute()
	return c.restError(op, err)
}
