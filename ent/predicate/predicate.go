// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalyticsEvent is the predicate function for analyticsevent builders.
type AnalyticsEvent func(*sql.Selector)

// AuthSession is the predicate function for authsession builders.
type AuthSession func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// FeedbackRating is the predicate function for feedbackrating builders.
type FeedbackRating func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
