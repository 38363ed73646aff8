// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldAudioURL holds the string denoting the audio_url field in the database.
	FieldAudioURL = "audio_url"
	// FieldProsodyFeedback holds the string denoting the prosody_feedback field in the database.
	FieldProsodyFeedback = "prosody_feedback"
	// FieldGuidance holds the string denoting the guidance field in the database.
	FieldGuidance = "guidance"
	// FieldVocabSuggestions holds the string denoting the vocab_suggestions field in the database.
	FieldVocabSuggestions = "vocab_suggestions"
	// FieldRetryOfMessageID holds the string denoting the retry_of_message_id field in the database.
	FieldRetryOfMessageID = "retry_of_message_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeviceID holds the string denoting the device_id field in the database.
	FieldDeviceID = "device_id"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeRetryOf holds the string denoting the retry_of edge name in mutations.
	EdgeRetryOf = "retry_of"
	// EdgeRetries holds the string denoting the retries edge name in mutations.
	EdgeRetries = "retries"
	// EdgeRatings holds the string denoting the ratings edge name in mutations.
	EdgeRatings = "ratings"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "messages"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// RetryOfTable is the table that holds the retry_of relation/edge.
	RetryOfTable = "messages"
	// RetryOfColumn is the table column denoting the retry_of relation/edge.
	RetryOfColumn = "retry_of_message_id"
	// RetriesTable is the table that holds the retries relation/edge.
	RetriesTable = "messages"
	// RetriesColumn is the table column denoting the retries relation/edge.
	RetriesColumn = "retry_of_message_id"
	// RatingsTable is the table that holds the ratings relation/edge.
	RatingsTable = "feedback_ratings"
	// RatingsInverseTable is the table name for the FeedbackRating entity.
	// It exists in this package in order to avoid circular dependency with the "feedbackrating" package.
	RatingsInverseTable = "feedback_ratings"
	// RatingsColumn is the table column denoting the ratings relation/edge.
	RatingsColumn = "message_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldSender,
	FieldType,
	FieldContent,
	FieldAudioURL,
	FieldProsodyFeedback,
	FieldGuidance,
	FieldVocabSuggestions,
	FieldRetryOfMessageID,
	FieldVersion,
	FieldCreatedAt,
	FieldDeviceID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Sender defines the type for the "sender" enum field.
type Sender string

// Sender values.
const (
	SenderUser Sender = "user"
	SenderAi   Sender = "ai"
)

func (s Sender) String() string {
	return string(s)
}

// SenderValidator is a validator for the "sender" field enum values. It is called by the builders before save.
func SenderValidator(s Sender) error {
	switch s {
	case SenderUser, SenderAi:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for sender field: %q", s)
	}
}

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeText  Type = "text"
	TypeAudio Type = "audio"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeText, TypeAudio:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByAudioURL orders the results by the audio_url field.
func ByAudioURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioURL, opts...).ToFunc()
}

// ByGuidance orders the results by the guidance field.
func ByGuidance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuidance, opts...).ToFunc()
}

// ByRetryOfMessageID orders the results by the retry_of_message_id field.
func ByRetryOfMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryOfMessageID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeviceID orders the results by the device_id field.
func ByDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceID, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// ByRetryOfField orders the results by retry_of field.
func ByRetryOfField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRetryOfStep(), sql.OrderByField(field, opts...))
	}
}

// ByRetriesCount orders the results by retries count.
func ByRetriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRetriesStep(), opts...)
	}
}

// ByRetries orders the results by retries terms.
func ByRetries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRetriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRatingsCount orders the results by ratings count.
func ByRatingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRatingsStep(), opts...)
	}
}

// ByRatings orders the results by ratings terms.
func ByRatings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRatingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
func newRetryOfStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RetryOfTable, RetryOfColumn),
	)
}
func newRetriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RetriesTable, RetriesColumn),
	)
}
func newRatingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RatingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RatingsTable, RatingsColumn),
	)
}
