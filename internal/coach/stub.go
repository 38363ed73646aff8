package coach

import (
	"context"
	"time"

	"github.com/abhisek/vibetune/internal/model"
)

// Canned replies.
const (
	TextReply = "I can see you're practicing text input. For the best pronunciation feedback, " +
		"try using the microphone to speak your responses. This way, I can analyze your intonation, " +
		"rhythm, and stress patterns. Would you like to try speaking your next response?"
	AudioReply = "Great pronunciation practice! I noticed good rhythm in your speech. For improvement, " +
		"try emphasizing the stressed syllables more clearly. Would you like to practice with a " +
		"specific phrase or continue with open conversation?"
	AudioGuidance = "Focus on word stress patterns in multi-syllable words"
)

// AudioVocab is suggested with every analysed recording.
var AudioVocab = []string{"emphasize", "rhythm", "intonation"}

// AudioScores are the fixed scores attached to a recording analysis.
var AudioScores = model.ProsodyFeedback{Rhythm: 8.5, Intonation: 7.2, Stress: 6.8}

// Stub answers after a fixed delay with scripted content. It stands in for a
// real analysis service.
type Stub struct {
	textDelay  time.Duration
	audioDelay time.Duration
}

func NewStub(textDelay, audioDelay time.Duration) *Stub {
	return &Stub{textDelay: textDelay, audioDelay: audioDelay}
}

func (s *Stub) Respond(ctx context.Context, turn Turn) (*model.Message, error) {
	audio := turn.Input.Type == model.MessageAudio

	delay := s.textDelay
	if audio {
		delay = s.audioDelay
	}
	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if !audio {
		return &model.Message{Sender: model.SenderAI, Type: model.MessageText, Content: TextReply}, nil
	}
	fb := AudioScores
	return &model.Message{
		Sender:           model.SenderAI,
		Type:             model.MessageText,
		Content:          AudioReply,
		Feedback:         &fb,
		Guidance:         AudioGuidance,
		VocabSuggestions: append([]string(nil), AudioVocab...),
	}, nil
}
