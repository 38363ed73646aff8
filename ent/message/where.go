// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/vibetune/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// AudioURL applies equality check predicate on the "audio_url" field. It's identical to AudioURLEQ.
func AudioURL(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAudioURL, v))
}

// Guidance applies equality check predicate on the "guidance" field. It's identical to GuidanceEQ.
func Guidance(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldGuidance, v))
}

// RetryOfMessageID applies equality check predicate on the "retry_of_message_id" field. It's identical to RetryOfMessageIDEQ.
func RetryOfMessageID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRetryOfMessageID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// DeviceID applies equality check predicate on the "device_id" field. It's identical to DeviceIDEQ.
func DeviceID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDeviceID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldConversationID, v))
}

// SenderEQ applies the EQ predicate on the "sender" field.
func SenderEQ(v Sender) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSender, v))
}

// SenderNEQ applies the NEQ predicate on the "sender" field.
func SenderNEQ(v Sender) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSender, v))
}

// SenderIn applies the In predicate on the "sender" field.
func SenderIn(vs ...Sender) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSender, vs...))
}

// SenderNotIn applies the NotIn predicate on the "sender" field.
func SenderNotIn(vs ...Sender) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSender, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// AudioURLEQ applies the EQ predicate on the "audio_url" field.
func AudioURLEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldAudioURL, v))
}

// AudioURLNEQ applies the NEQ predicate on the "audio_url" field.
func AudioURLNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldAudioURL, v))
}

// AudioURLIn applies the In predicate on the "audio_url" field.
func AudioURLIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldAudioURL, vs...))
}

// AudioURLNotIn applies the NotIn predicate on the "audio_url" field.
func AudioURLNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldAudioURL, vs...))
}

// AudioURLGT applies the GT predicate on the "audio_url" field.
func AudioURLGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldAudioURL, v))
}

// AudioURLGTE applies the GTE predicate on the "audio_url" field.
func AudioURLGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldAudioURL, v))
}

// AudioURLLT applies the LT predicate on the "audio_url" field.
func AudioURLLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldAudioURL, v))
}

// AudioURLLTE applies the LTE predicate on the "audio_url" field.
func AudioURLLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldAudioURL, v))
}

// AudioURLContains applies the Contains predicate on the "audio_url" field.
func AudioURLContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldAudioURL, v))
}

// AudioURLHasPrefix applies the HasPrefix predicate on the "audio_url" field.
func AudioURLHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldAudioURL, v))
}

// AudioURLHasSuffix applies the HasSuffix predicate on the "audio_url" field.
func AudioURLHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldAudioURL, v))
}

// AudioURLIsNil applies the IsNil predicate on the "audio_url" field.
func AudioURLIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldAudioURL))
}

// AudioURLNotNil applies the NotNil predicate on the "audio_url" field.
func AudioURLNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldAudioURL))
}

// AudioURLEqualFold applies the EqualFold predicate on the "audio_url" field.
func AudioURLEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldAudioURL, v))
}

// AudioURLContainsFold applies the ContainsFold predicate on the "audio_url" field.
func AudioURLContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldAudioURL, v))
}

// ProsodyFeedbackIsNil applies the IsNil predicate on the "prosody_feedback" field.
func ProsodyFeedbackIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldProsodyFeedback))
}

// ProsodyFeedbackNotNil applies the NotNil predicate on the "prosody_feedback" field.
func ProsodyFeedbackNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldProsodyFeedback))
}

// GuidanceEQ applies the EQ predicate on the "guidance" field.
func GuidanceEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldGuidance, v))
}

// GuidanceNEQ applies the NEQ predicate on the "guidance" field.
func GuidanceNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldGuidance, v))
}

// GuidanceIn applies the In predicate on the "guidance" field.
func GuidanceIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldGuidance, vs...))
}

// GuidanceNotIn applies the NotIn predicate on the "guidance" field.
func GuidanceNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldGuidance, vs...))
}

// GuidanceGT applies the GT predicate on the "guidance" field.
func GuidanceGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldGuidance, v))
}

// GuidanceGTE applies the GTE predicate on the "guidance" field.
func GuidanceGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldGuidance, v))
}

// GuidanceLT applies the LT predicate on the "guidance" field.
func GuidanceLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldGuidance, v))
}

// GuidanceLTE applies the LTE predicate on the "guidance" field.
func GuidanceLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldGuidance, v))
}

// GuidanceContains applies the Contains predicate on the "guidance" field.
func GuidanceContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldGuidance, v))
}

// GuidanceHasPrefix applies the HasPrefix predicate on the "guidance" field.
func GuidanceHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldGuidance, v))
}

// GuidanceHasSuffix applies the HasSuffix predicate on the "guidance" field.
func GuidanceHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldGuidance, v))
}

// GuidanceIsNil applies the IsNil predicate on the "guidance" field.
func GuidanceIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldGuidance))
}

// GuidanceNotNil applies the NotNil predicate on the "guidance" field.
func GuidanceNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldGuidance))
}

// GuidanceEqualFold applies the EqualFold predicate on the "guidance" field.
func GuidanceEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldGuidance, v))
}

// GuidanceContainsFold applies the ContainsFold predicate on the "guidance" field.
func GuidanceContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldGuidance, v))
}

// VocabSuggestionsIsNil applies the IsNil predicate on the "vocab_suggestions" field.
func VocabSuggestionsIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldVocabSuggestions))
}

// VocabSuggestionsNotNil applies the NotNil predicate on the "vocab_suggestions" field.
func VocabSuggestionsNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldVocabSuggestions))
}

// RetryOfMessageIDEQ applies the EQ predicate on the "retry_of_message_id" field.
func RetryOfMessageIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDNEQ applies the NEQ predicate on the "retry_of_message_id" field.
func RetryOfMessageIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDIn applies the In predicate on the "retry_of_message_id" field.
func RetryOfMessageIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRetryOfMessageID, vs...))
}

// RetryOfMessageIDNotIn applies the NotIn predicate on the "retry_of_message_id" field.
func RetryOfMessageIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRetryOfMessageID, vs...))
}

// RetryOfMessageIDGT applies the GT predicate on the "retry_of_message_id" field.
func RetryOfMessageIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDGTE applies the GTE predicate on the "retry_of_message_id" field.
func RetryOfMessageIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDLT applies the LT predicate on the "retry_of_message_id" field.
func RetryOfMessageIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDLTE applies the LTE predicate on the "retry_of_message_id" field.
func RetryOfMessageIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDContains applies the Contains predicate on the "retry_of_message_id" field.
func RetryOfMessageIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDHasPrefix applies the HasPrefix predicate on the "retry_of_message_id" field.
func RetryOfMessageIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDHasSuffix applies the HasSuffix predicate on the "retry_of_message_id" field.
func RetryOfMessageIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDIsNil applies the IsNil predicate on the "retry_of_message_id" field.
func RetryOfMessageIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldRetryOfMessageID))
}

// RetryOfMessageIDNotNil applies the NotNil predicate on the "retry_of_message_id" field.
func RetryOfMessageIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldRetryOfMessageID))
}

// RetryOfMessageIDEqualFold applies the EqualFold predicate on the "retry_of_message_id" field.
func RetryOfMessageIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldRetryOfMessageID, v))
}

// RetryOfMessageIDContainsFold applies the ContainsFold predicate on the "retry_of_message_id" field.
func RetryOfMessageIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldRetryOfMessageID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// DeviceIDEQ applies the EQ predicate on the "device_id" field.
func DeviceIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDeviceID, v))
}

// DeviceIDNEQ applies the NEQ predicate on the "device_id" field.
func DeviceIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDeviceID, v))
}

// DeviceIDIn applies the In predicate on the "device_id" field.
func DeviceIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDeviceID, vs...))
}

// DeviceIDNotIn applies the NotIn predicate on the "device_id" field.
func DeviceIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDeviceID, vs...))
}

// DeviceIDGT applies the GT predicate on the "device_id" field.
func DeviceIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDeviceID, v))
}

// DeviceIDGTE applies the GTE predicate on the "device_id" field.
func DeviceIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDeviceID, v))
}

// DeviceIDLT applies the LT predicate on the "device_id" field.
func DeviceIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDeviceID, v))
}

// DeviceIDLTE applies the LTE predicate on the "device_id" field.
func DeviceIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDeviceID, v))
}

// DeviceIDContains applies the Contains predicate on the "device_id" field.
func DeviceIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDeviceID, v))
}

// DeviceIDHasPrefix applies the HasPrefix predicate on the "device_id" field.
func DeviceIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDeviceID, v))
}

// DeviceIDHasSuffix applies the HasSuffix predicate on the "device_id" field.
func DeviceIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDeviceID, v))
}

// DeviceIDIsNil applies the IsNil predicate on the "device_id" field.
func DeviceIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDeviceID))
}

// DeviceIDNotNil applies the NotNil predicate on the "device_id" field.
func DeviceIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDeviceID))
}

// DeviceIDEqualFold applies the EqualFold predicate on the "device_id" field.
func DeviceIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDeviceID, v))
}

// DeviceIDContainsFold applies the ContainsFold predicate on the "device_id" field.
func DeviceIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDeviceID, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRetryOf applies the HasEdge predicate on the "retry_of" edge.
func HasRetryOf() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RetryOfTable, RetryOfColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRetryOfWith applies the HasEdge predicate on the "retry_of" edge with a given conditions (other predicates).
func HasRetryOfWith(preds ...predicate.Message) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newRetryOfStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRetries applies the HasEdge predicate on the "retries" edge.
func HasRetries() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RetriesTable, RetriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRetriesWith applies the HasEdge predicate on the "retries" edge with a given conditions (other predicates).
func HasRetriesWith(preds ...predicate.Message) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newRetriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRatings applies the HasEdge predicate on the "ratings" edge.
func HasRatings() predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RatingsTable, RatingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRatingsWith applies the HasEdge predicate on the "ratings" edge with a given conditions (other predicates).
func HasRatingsWith(preds ...predicate.FeedbackRating) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		step := newRatingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
