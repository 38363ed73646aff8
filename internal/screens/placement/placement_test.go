package placement

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	assess "github.com/abhisek/vibetune/internal/placement"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/state"
)

type fakeBackend struct {
	backend.Backend

	mu        sync.Mutex
	updateErr error
}

func (f *fakeBackend) CreateConversation(_ context.Context, c model.Conversation) (*model.Conversation, error) {
	return &c, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p := &model.Profile{ID: id}
	upd.Apply(p)
	return p, nil
}

func newScreen(t *testing.T, b *fakeBackend) (*PlacementScreen, *state.Store) {
	t.Helper()
	st := state.New()
	st.SetUser(&model.Profile{ID: "u-1"})
	test := assess.New(b, st, assess.WithAnalysisDelay(0))
	s := New(test, st)
	s.Init()
	t.Cleanup(s.Close)
	return s, st
}

func press(s *PlacementScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// drain runs cmd and feeds back every message it produces, one level deep.
func drain(s *PlacementScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				s.Update(c())
			}
		}
		return
	}
	s.Update(msg)
}

func recordAndAdvance(s *PlacementScreen) tea.Cmd {
	press(s, tea.KeySpace)
	press(s, tea.KeySpace)
	return press(s, tea.KeyEnter)
}

func TestAdvanceRequiresRecording(t *testing.T) {
	s, _ := newScreen(t, &fakeBackend{})

	press(s, tea.KeyEnter)
	if s.test.Index() != 0 {
		t.Fatalf("index = %d, want 0", s.test.Index())
	}
	if !strings.Contains(s.View(100, 40), "Record your answer first") {
		t.Error("expected the record-first hint")
	}
}

func TestRecordingToggleUsesStore(t *testing.T) {
	s, st := newScreen(t, &fakeBackend{})

	press(s, tea.KeySpace)
	if !st.Snapshot().Recording {
		t.Fatal("space should start recording")
	}
	press(s, tea.KeySpace)
	if st.Snapshot().Recording {
		t.Fatal("second space should stop recording")
	}
	if !s.test.Recorded(0) {
		t.Error("stopping should record the current question")
	}
}

func TestFullRunReachesResults(t *testing.T) {
	s, st := newScreen(t, &fakeBackend{})

	var cmd tea.Cmd
	for range assess.Questions {
		cmd = recordAndAdvance(s)
	}
	if s.test.Phase() != assess.PhaseProcessing || !s.analyzing {
		t.Fatalf("phase = %v analyzing = %v, want processing", s.test.Phase(), s.analyzing)
	}
	drain(s, cmd)

	if s.test.Phase() != assess.PhaseResults {
		t.Fatalf("phase = %v, want results", s.test.Phase())
	}
	if got := st.Snapshot().User.Level; got != model.LevelAdvanced {
		t.Errorf("level = %q, want advanced", got)
	}
	if !strings.Contains(s.View(100, 40), "Advanced") {
		t.Error("results view should show the level")
	}

	msg, ok := press(s, tea.KeyEnter)().(router.NavigateMsg)
	if !ok || msg.Path != router.RouteChat {
		t.Errorf("enter on results = %+v, want navigate to chat", msg)
	}
}

func TestSkipsLowerTheLevel(t *testing.T) {
	s, st := newScreen(t, &fakeBackend{})

	recordAndAdvance(s)
	recordAndAdvance(s)
	press(s, 's')
	drain(s, press(s, 's'))

	if got := st.Snapshot().User.Level; got != model.LevelBeginner {
		t.Errorf("level = %q, want beginner", got)
	}
}

func TestFailureOffersRetry(t *testing.T) {
	b := &fakeBackend{updateErr: model.E(model.KindNetwork, "update profile", errors.New("offline"))}
	s, _ := newScreen(t, b)

	var cmd tea.Cmd
	for range assess.Questions {
		cmd = recordAndAdvance(s)
	}
	drain(s, cmd)
	if !s.failed || s.test.Phase() != assess.PhaseProcessing {
		t.Fatalf("failed = %v phase = %v, want failed processing", s.failed, s.test.Phase())
	}

	b.mu.Lock()
	b.updateErr = nil
	b.mu.Unlock()
	drain(s, press(s, tea.KeyEnter))
	if s.test.Phase() != assess.PhaseResults {
		t.Errorf("phase = %v after retry, want results", s.test.Phase())
	}
}

func TestRetakeResetsTest(t *testing.T) {
	s, _ := newScreen(t, &fakeBackend{})
	var cmd tea.Cmd
	for range assess.Questions {
		cmd = recordAndAdvance(s)
	}
	drain(s, cmd)

	press(s, 'r')
	if s.test.Phase() != assess.PhaseQuestion || s.test.Index() != 0 || s.test.RecordedCount() != 0 {
		t.Errorf("after retake: phase %v index %d recorded %d", s.test.Phase(), s.test.Index(), s.test.RecordedCount())
	}
}

func TestCloseStopsRecording(t *testing.T) {
	s, st := newScreen(t, &fakeBackend{})
	press(s, tea.KeySpace)
	s.Close()
	if st.Snapshot().Recording {
		t.Error("closing the screen should turn recording off")
	}
}
