// Package model defines the records VibeTune exchanges with its backend and
// keeps in the session store.
package model

import (
	"strings"
	"time"
)

// Level is a learner's assessed proficiency.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists the assessable levels in ascending order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}

// DisplayName returns the capitalized level label.
func (l Level) DisplayName() string {
	if l == "" {
		return "Not assessed"
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Profile is the durable user record.
type Profile struct {
	ID                     string     `json:"id"`
	Username               string     `json:"username"`
	Email                  string     `json:"email"`
	Level                  Level      `json:"level,omitempty"`
	PlacementTestCompleted bool       `json:"placement_test_completed"`
	CreatedAt              time.Time  `json:"created_at"`
	LastLogin              *time.Time `json:"last_login,omitempty"`
	DeviceID               string     `json:"device_id,omitempty"`
}

// Clone returns a deep copy of p. Nil stays nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.LastLogin != nil {
		t := *p.LastLogin
		c.LastLogin = &t
	}
	return &c
}

// ProfileUpdate holds the mutable profile fields. Nil fields are left alone.
type ProfileUpdate struct {
	Username               *string    `json:"username,omitempty"`
	Level                  *Level     `json:"level,omitempty"`
	PlacementTestCompleted *bool      `json:"placement_test_completed,omitempty"`
	LastLogin              *time.Time `json:"last_login,omitempty"`
}

// Apply copies the set fields of u onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Username != nil {
		p.Username = *u.Username
	}
	if u.Level != nil {
		p.Level = *u.Level
	}
	if u.PlacementTestCompleted != nil {
		p.PlacementTestCompleted = *u.PlacementTestCompleted
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		p.LastLogin = &t
	}
}

// Session is the identity provider's credential. The client only checks
// whether one is present.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Conversation is a bounded practice or assessment session.
type Conversation struct {
	ID              string     `json:"id"`
	ProfileID       string     `json:"profile_id"`
	Topic           string     `json:"topic"`
	IsPlacementTest bool       `json:"is_placement_test"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

// Conversation topics created by the client.
const (
	TopicGeneralPractice = "General Practice"
	TopicPlacementTest   = "Placement Test"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// MessageType is the medium of a message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageAudio MessageType = "audio"
)

// ProsodyFeedback holds per-dimension pronunciation scores on a 0-10 scale.
type ProsodyFeedback struct {
	Rhythm     float64 `json:"rhythm_score"`
	Intonation float64 `json:"intonation_score"`
	Stress     float64 `json:"stress_score"`
}

// Average returns the mean of the three scores.
func (f ProsodyFeedback) Average() float64 {
	return (f.Rhythm + f.Intonation + f.Stress) / 3
}

// Message belongs to exactly one conversation.
type Message struct {
	ID               string           `json:"id"`
	ConversationID   string           `json:"conversation_id"`
	Sender           Sender           `json:"sender"`
	Type             MessageType      `json:"type"`
	Content          string           `json:"content"`
	AudioURL         string           `json:"audio_url,omitempty"`
	Feedback         *ProsodyFeedback `json:"prosody_feedback,omitempty"`
	Guidance         string           `json:"guidance,omitempty"`
	VocabSuggestions []string         `json:"vocab_suggestions,omitempty"`
	RetryOfMessageID string           `json:"retry_of_message_id,omitempty"`
	Version          int              `json:"version"`
	CreatedAt        time.Time        `json:"created_at"`
	DeviceID         string           `json:"device_id,omitempty"`
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	if m.Feedback != nil {
		f := *m.Feedback
		m.Feedback = &f
	}
	if m.VocabSuggestions != nil {
		m.VocabSuggestions = append([]string(nil), m.VocabSuggestions...)
	}
	return m
}

// FeedbackRating is a learner's rating of an AI message.
type FeedbackRating struct {
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	ProfileID string    `json:"profile_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// SyncStatus is the client's belief about backend reachability.
type SyncStatus struct {
	Online   bool      `json:"online"`
	LastSync time.Time `json:"last_sync"`
}

// PlacementProgress is the persisted state of an in-progress placement test.
type PlacementProgress struct {
	Started         bool  `json:"started"`
	CurrentQuestion int   `json:"current_question"`
	Completed       []int `json:"completed"`
}

// Clone returns a deep copy of p.
func (p PlacementProgress) Clone() PlacementProgress {
	if p.Completed != nil {
		p.Completed = append([]int(nil), p.Completed...)
	}
	return p
}
