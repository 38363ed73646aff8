// Package placement runs the four-question assessment that assigns a
// learner's level.
package placement

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

// Phase is where the test is.
type Phase int

const (
	PhaseQuestion Phase = iota
	PhaseProcessing
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseProcessing:
		return "processing"
	case PhaseResults:
		return "results"
	default:
		return "question"
	}
}

// EventCompleted is recorded when a test finishes.
const EventCompleted = "placement_completed"

// Results is the outcome shown after analysis.
type Results struct {
	Level        model.Level
	Strengths    []string
	Improvements []string
}

// DeriveLevel maps the number of recorded answers to a level.
func DeriveLevel(recorded int) model.Level {
	switch {
	case recorded >= 4:
		return model.LevelAdvanced
	case recorded == 3:
		return model.LevelIntermediate
	default:
		return model.LevelBeginner
	}
}

// Recorder stores usage analytics.
type Recorder interface {
	AppendAnalytics(ctx context.Context, data store.AnalyticsEventData) error
}

// Test is one run of the placement test. Methods are safe for concurrent
// use; Complete is expected to run off the UI goroutine.
type Test struct {
	backend   backend.Backend
	store     *state.Store
	notifier  notify.Notifier
	analytics Recorder
	logger    *zap.Logger
	delay     time.Duration
	now       func() time.Time
	newID     func() string

	mu       sync.Mutex
	phase    Phase
	current  int
	recorded map[int]bool
	results  *Results

	// conversationID is the placement conversation created by an earlier
	// Complete attempt, reused when that attempt failed later on.
	conversationID string
}

// Option configures a Test.
type Option func(*Test)

func WithNotifier(n notify.Notifier) Option { return func(t *Test) { t.notifier = n } }

func WithAnalytics(r Recorder) Option { return func(t *Test) { t.analytics = r } }

func WithLogger(l *zap.Logger) Option { return func(t *Test) { t.logger = l } }

// WithAnalysisDelay sets how long Complete pretends to analyse.
func WithAnalysisDelay(d time.Duration) Option { return func(t *Test) { t.delay = d } }

// New starts a test, resuming the progress persisted in st if a test was
// under way.
func New(b backend.Backend, st *state.Store, opts ...Option) *Test {
	t := &Test{
		backend:  b,
		store:    st,
		notifier: notify.Discard,
		logger:   zap.NewNop(),
		delay:    3 * time.Second,
		now:      time.Now,
		newID:    uuid.NewString,
		recorded: make(map[int]bool),
	}
	for _, o := range opts {
		o(t)
	}
	t.logger = t.logger.Named("placement")

	if p := st.Snapshot().Placement; p.Started {
		if p.CurrentQuestion >= 0 && p.CurrentQuestion < len(Questions) {
			t.current = p.CurrentQuestion
		}
		for _, id := range p.Completed {
			if i := indexOf(id); i >= 0 {
				t.recorded[i] = true
			}
		}
	}
	t.mirror()
	return t
}

func indexOf(questionID int) int {
	for i, q := range Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

func (t *Test) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Index is the zero-based position of the current question.
func (t *Test) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Test) Question() Question {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Questions[t.current]
}

// Recorded reports whether question i has a recording.
func (t *Test) Recorded(i int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recorded[i]
}

// RecordedCount is the number of questions with a recording.
func (t *Test) RecordedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.recorded)
}

// Progress is (i+1)/n for question i.
func (t *Test) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(t.current+1) / float64(len(Questions))
}

func (t *Test) Results() *Results {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.results
}

// StartRecording turns the microphone indicator on.
func (t *Test) StartRecording() {
	t.store.SetRecording(true)
	t.notifier.Notify("Recording Started", "Speak clearly into your microphone", notify.VariantDefault)
}

// StopRecording turns the indicator off and records the current answer.
func (t *Test) StopRecording() {
	t.store.SetRecording(false)
	if t.Record() {
		t.notifier.Notify("Recording Saved", "Your response has been recorded", notify.VariantDefault)
	}
}

// Record marks the current question answered. It returns false outside the
// question phase.
func (t *Test) Record() bool {
	t.mu.Lock()
	if t.phase != PhaseQuestion {
		t.mu.Unlock()
		return false
	}
	t.recorded[t.current] = true
	t.mu.Unlock()
	t.mirror()
	return true
}

func (t *Test) CanAdvance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase == PhaseQuestion && t.recorded[t.current]
}

// Advance moves to the next question, or to processing after the last one.
// The current question must be recorded.
func (t *Test) Advance() error {
	if !t.CanAdvance() {
		return model.Validationf("advance placement test", "record an answer first")
	}
	t.step()
	return nil
}

// Skip moves on without a recording.
func (t *Test) Skip() error {
	if t.Phase() != PhaseQuestion {
		return model.Validationf("skip question", "test is %s", t.Phase())
	}
	t.step()
	return nil
}

func (t *Test) step() {
	t.mu.Lock()
	if t.current < len(Questions)-1 {
		t.current++
	} else {
		t.phase = PhaseProcessing
	}
	t.mu.Unlock()
	t.mirror()
}

// Complete finishes a test in the processing phase: it records the test
// conversation, derives the level and stores it on the profile. On failure
// the test stays in processing so Complete can be called again.
func (t *Test) Complete(ctx context.Context) (*Results, error) {
	t.mu.Lock()
	if t.phase != PhaseProcessing {
		phase := t.phase
		t.mu.Unlock()
		return nil, model.Validationf("complete placement test", "test is %s", phase)
	}
	recorded := len(t.recorded)
	t.mu.Unlock()

	user := t.store.Snapshot().User
	if user == nil {
		return nil, model.E(model.KindUnauthorized, "complete placement test", fmt.Errorf("not signed in"))
	}

	res, err := t.complete(ctx, user, recorded)
	if err != nil {
		t.logger.Error("complete placement test", zap.Error(err))
		t.notifier.Notify("Error", err.Error(), notify.VariantError)
		return nil, err
	}

	t.mu.Lock()
	t.phase = PhaseResults
	t.results = res
	t.mu.Unlock()

	t.store.SetPlacementProgress(model.PlacementProgress{})
	t.notifier.Notify("Test Complete!", fmt.Sprintf("Your level has been assessed as %s", res.Level), notify.VariantSuccess)
	t.track(ctx, user.ID, res.Level, recorded)
	return res, nil
}

func (t *Test) complete(ctx context.Context, user *model.Profile, recorded int) (*Results, error) {
	if err := t.ensureConversation(ctx, user.ID); err != nil {
		return nil, err
	}

	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	level := DeriveLevel(recorded)
	done := true
	p, err := t.backend.UpdateProfile(ctx, user.ID, model.ProfileUpdate{Level: &level, PlacementTestCompleted: &done})
	if err != nil {
		return nil, fmt.Errorf("save assessed level: %w", err)
	}
	t.store.SetUser(p)

	return &Results{
		Level:        level,
		Strengths:    []string{"Clear pronunciation", "Good rhythm"},
		Improvements: []string{"Intonation patterns", "Word stress"},
	}, nil
}

// ensureConversation creates the placement conversation once per run.
func (t *Test) ensureConversation(ctx context.Context, profileID string) error {
	t.mu.Lock()
	created := t.conversationID != ""
	t.mu.Unlock()
	if created {
		return nil
	}

	conv, err := t.backend.CreateConversation(ctx, model.Conversation{
		ID:              t.newID(),
		ProfileID:       profileID,
		Topic:           model.TopicPlacementTest,
		IsPlacementTest: true,
		StartedAt:       t.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create placement conversation: %w", err)
	}
	t.mu.Lock()
	t.conversationID = conv.ID
	t.mu.Unlock()
	return nil
}

// Reset returns to the first question with no recordings.
func (t *Test) Reset() {
	t.mu.Lock()
	t.phase = PhaseQuestion
	t.current = 0
	t.recorded = make(map[int]bool)
	t.results = nil
	t.conversationID = ""
	t.mu.Unlock()
	t.store.SetPlacementProgress(model.PlacementProgress{})
}

// mirror copies progress into the session store so it survives restarts.
func (t *Test) mirror() {
	t.mu.Lock()
	p := model.PlacementProgress{Started: true, CurrentQuestion: t.current}
	for i := range t.recorded {
		p.Completed = append(p.Completed, Questions[i].ID)
	}
	t.mu.Unlock()
	sort.Ints(p.Completed)
	t.store.SetPlacementProgress(p)
}

func (t *Test) track(ctx context.Context, profileID string, level model.Level, recorded int) {
	if t.analytics == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{"level": level, "recorded": recorded})
	if err := t.analytics.AppendAnalytics(ctx, store.AnalyticsEventData{
		ProfileID: profileID,
		EventType: EventCompleted,
		Payload:   payload,
	}); err != nil {
		t.logger.Debug("record analytics", zap.Error(err))
	}
}
