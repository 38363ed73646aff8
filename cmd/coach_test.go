package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/model"
)

type echoResponder struct {
	turns []coach.Turn
	err   error
}

func (e *echoResponder) Respond(_ context.Context, turn coach.Turn) (*model.Message, error) {
	e.turns = append(e.turns, turn)
	if e.err != nil {
		return nil, e.err
	}
	return &model.Message{
		Sender:           model.SenderAI,
		Content:          "You said: " + turn.Input.Content,
		Feedback:         &model.ProsodyFeedback{Rhythm: 7, Intonation: 8, Stress: 6.5},
		Guidance:         "Stress the first syllable.",
		VocabSuggestions: []string{"weather", "whether"},
	}, nil
}

func TestCoachLoopCarriesHistory(t *testing.T) {
	r := &echoResponder{}
	in := strings.NewReader("hello\n\nhow are you\n/quit\nignored\n")
	var out bytes.Buffer

	if err := coachLoop(context.Background(), r, model.LevelIntermediate, "Ana", in, &out); err != nil {
		t.Fatalf("coachLoop: %v", err)
	}
	if len(r.turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(r.turns))
	}
	second := r.turns[1]
	if len(second.History) != 2 || second.History[0].Content != "hello" {
		t.Errorf("history = %+v, want the first exchange", second.History)
	}
	if second.Level != model.LevelIntermediate || second.Conversation.Topic != model.TopicGeneralPractice {
		t.Errorf("turn = %+v", second)
	}

	got := out.String()
	for _, want := range []string{"Hello Ana!", "You said: how are you", "Rhythm 7.0  Intonation 8.0  Stress 6.5", "Tip: Stress the first syllable.", "Practice: weather, whether"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCoachLoopSurvivesErrors(t *testing.T) {
	r := &echoResponder{err: model.E(model.KindNetwork, "respond", errors.New("timeout"))}
	var out bytes.Buffer

	if err := coachLoop(context.Background(), r, model.LevelBeginner, "", strings.NewReader("hi\n"), &out); err != nil {
		t.Fatalf("coachLoop: %v", err)
	}
	if !strings.Contains(out.String(), "Coach is unavailable") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Hello there!") {
		t.Error("empty name should greet 'there'")
	}
}
