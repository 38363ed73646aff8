// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/vibetune/ent/analyticsevent"
	"github.com/abhisek/vibetune/ent/authsession"
	"github.com/abhisek/vibetune/ent/conversation"
	"github.com/abhisek/vibetune/ent/feedbackrating"
	"github.com/abhisek/vibetune/ent/llmrequestevent"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/ent/profile"
	"github.com/abhisek/vibetune/ent/schema"
	"github.com/abhisek/vibetune/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyticseventMixin := schema.AnalyticsEvent{}.Mixin()
	analyticseventMixinFields0 := analyticseventMixin[0].Fields()
	_ = analyticseventMixinFields0
	analyticseventFields := schema.AnalyticsEvent{}.Fields()
	_ = analyticseventFields
	// analyticseventDescTimestamp is the schema descriptor for timestamp field.
	analyticseventDescTimestamp := analyticseventMixinFields0[1].Descriptor()
	// analyticsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analyticsevent.DefaultTimestamp = analyticseventDescTimestamp.Default.(func() time.Time)
	// analyticseventDescProfileID is the schema descriptor for profile_id field.
	analyticseventDescProfileID := analyticseventFields[0].Descriptor()
	// analyticsevent.DefaultProfileID holds the default value on creation for the profile_id field.
	analyticsevent.DefaultProfileID = analyticseventDescProfileID.Default.(string)
	authsessionFields := schema.AuthSession{}.Fields()
	_ = authsessionFields
	// authsessionDescCreatedAt is the schema descriptor for created_at field.
	authsessionDescCreatedAt := authsessionFields[4].Descriptor()
	// authsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	authsession.DefaultCreatedAt = authsessionDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescIsPlacementTest is the schema descriptor for is_placement_test field.
	conversationDescIsPlacementTest := conversationFields[3].Descriptor()
	// conversation.DefaultIsPlacementTest holds the default value on creation for the is_placement_test field.
	conversation.DefaultIsPlacementTest = conversationDescIsPlacementTest.Default.(bool)
	// conversationDescStartedAt is the schema descriptor for started_at field.
	conversationDescStartedAt := conversationFields[4].Descriptor()
	// conversation.DefaultStartedAt holds the default value on creation for the started_at field.
	conversation.DefaultStartedAt = conversationDescStartedAt.Default.(func() time.Time)
	feedbackratingFields := schema.FeedbackRating{}.Fields()
	_ = feedbackratingFields
	// feedbackratingDescRating is the schema descriptor for rating field.
	feedbackratingDescRating := feedbackratingFields[3].Descriptor()
	// feedbackrating.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedbackrating.RatingValidator = feedbackratingDescRating.Validators[0].(func(int) error)
	// feedbackratingDescCreatedAt is the schema descriptor for created_at field.
	feedbackratingDescCreatedAt := feedbackratingFields[4].Descriptor()
	// feedbackrating.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackrating.DefaultCreatedAt = feedbackratingDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescVersion is the schema descriptor for version field.
	messageDescVersion := messageFields[10].Descriptor()
	// message.DefaultVersion holds the default value on creation for the version field.
	message.DefaultVersion = messageDescVersion.Default.(int)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[11].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUsername is the schema descriptor for username field.
	profileDescUsername := profileFields[1].Descriptor()
	// profile.DefaultUsername holds the default value on creation for the username field.
	profile.DefaultUsername = profileDescUsername.Default.(string)
	// profileDescPlacementTestCompleted is the schema descriptor for placement_test_completed field.
	profileDescPlacementTestCompleted := profileFields[4].Descriptor()
	// profile.DefaultPlacementTestCompleted holds the default value on creation for the placement_test_completed field.
	profile.DefaultPlacementTestCompleted = profileDescPlacementTestCompleted.Default.(bool)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
