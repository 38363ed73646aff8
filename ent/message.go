// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vibetune/ent/conversation"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/internal/model"
)

// Message is the model entity for the Message schema.
type Message struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Sender holds the value of the "sender" field.
	Sender message.Sender `json:"sender,omitempty"`
	// Type holds the value of the "type" field.
	Type message.Type `json:"type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// AudioURL holds the value of the "audio_url" field.
	AudioURL string `json:"audio_url,omitempty"`
	// ProsodyFeedback holds the value of the "prosody_feedback" field.
	ProsodyFeedback *model.ProsodyFeedback `json:"prosody_feedback,omitempty"`
	// Guidance holds the value of the "guidance" field.
	Guidance string `json:"guidance,omitempty"`
	// VocabSuggestions holds the value of the "vocab_suggestions" field.
	VocabSuggestions []string `json:"vocab_suggestions,omitempty"`
	// RetryOfMessageID holds the value of the "retry_of_message_id" field.
	RetryOfMessageID *string `json:"retry_of_message_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeviceID holds the value of the "device_id" field.
	DeviceID string `json:"device_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageQuery when eager-loading is set.
	Edges        MessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEdges holds the relations/edges for other nodes in the graph.
type MessageEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// RetryOf holds the value of the retry_of edge.
	RetryOf *Message `json:"retry_of,omitempty"`
	// Retries holds the value of the retries edge.
	Retries []*Message `json:"retries,omitempty"`
	// Ratings holds the value of the ratings edge.
	Ratings []*FeedbackRating `json:"ratings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// RetryOfOrErr returns the RetryOf value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) RetryOfOrErr() (*Message, error) {
	if e.RetryOf != nil {
		return e.RetryOf, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "retry_of"}
}

// RetriesOrErr returns the Retries value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) RetriesOrErr() ([]*Message, error) {
	if e.loadedTypes[2] {
		return e.Retries, nil
	}
	return nil, &NotLoadedError{edge: "retries"}
}

// RatingsOrErr returns the Ratings value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) RatingsOrErr() ([]*FeedbackRating, error) {
	if e.loadedTypes[3] {
		return e.Ratings, nil
	}
	return nil, &NotLoadedError{edge: "ratings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Message) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case message.FieldProsodyFeedback, message.FieldVocabSuggestions:
			values[i] = new([]byte)
		case message.FieldVersion:
			values[i] = new(sql.NullInt64)
		case message.FieldID, message.FieldConversationID, message.FieldSender, message.FieldType, message.FieldContent, message.FieldAudioURL, message.FieldGuidance, message.FieldRetryOfMessageID, message.FieldDeviceID:
			values[i] = new(sql.NullString)
		case message.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Message fields.
func (_m *Message) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case message.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case message.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case message.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = message.Sender(value.String)
			}
		case message.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = message.Type(value.String)
			}
		case message.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case message.FieldAudioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_url", values[i])
			} else if value.Valid {
				_m.AudioURL = value.String
			}
		case message.FieldProsodyFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prosody_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProsodyFeedback); err != nil {
					return fmt.Errorf("unmarshal field prosody_feedback: %w", err)
				}
			}
		case message.FieldGuidance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guidance", values[i])
			} else if value.Valid {
				_m.Guidance = value.String
			}
		case message.FieldVocabSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vocab_suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VocabSuggestions); err != nil {
					return fmt.Errorf("unmarshal field vocab_suggestions: %w", err)
				}
			}
		case message.FieldRetryOfMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field retry_of_message_id", values[i])
			} else if value.Valid {
				_m.RetryOfMessageID = new(string)
				*_m.RetryOfMessageID = value.String
			}
		case message.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case message.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case message.FieldDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_id", values[i])
			} else if value.Valid {
				_m.DeviceID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Message.
// This includes values selected through modifiers, order, etc.
func (_m *Message) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the Message entity.
func (_m *Message) QueryConversation() *ConversationQuery {
	return NewMessageClient(_m.config).QueryConversation(_m)
}

// QueryRetryOf queries the "retry_of" edge of the Message entity.
func (_m *Message) QueryRetryOf() *MessageQuery {
	return NewMessageClient(_m.config).QueryRetryOf(_m)
}

// QueryRetries queries the "retries" edge of the Message entity.
func (_m *Message) QueryRetries() *MessageQuery {
	return NewMessageClient(_m.config).QueryRetries(_m)
}

// QueryRatings queries the "ratings" edge of the Message entity.
func (_m *Message) QueryRatings() *FeedbackRatingQuery {
	return NewMessageClient(_m.config).QueryRatings(_m)
}

// Update returns a builder for updating this Message.
// Note that you need to call Message.Unwrap() before calling this method if this Message
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Message) Update() *MessageUpdateOne {
	return NewMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Message entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Message) Unwrap() *Message {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Message is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Message) String() string {
	var builder strings.Builder
	builder.WriteString("Message(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sender))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("audio_url=")
	builder.WriteString(_m.AudioURL)
	builder.WriteString(", ")
	builder.WriteString("prosody_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProsodyFeedback))
	builder.WriteString(", ")
	builder.WriteString("guidance=")
	builder.WriteString(_m.Guidance)
	builder.WriteString(", ")
	builder.WriteString("vocab_suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.VocabSuggestions))
	builder.WriteString(", ")
	if v := _m.RetryOfMessageID; v != nil {
		builder.WriteString("retry_of_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("device_id=")
	builder.WriteString(_m.DeviceID)
	builder.WriteByte(')')
	return builder.String()
}

// Messages is a parsable slice of Message.
type Messages []*Message
