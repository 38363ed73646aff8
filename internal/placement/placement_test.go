package placement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

type fakeBackend struct {
	backend.Backend

	mu        sync.Mutex
	convs     []model.Conversation
	updates   []model.ProfileUpdate
	updateErr error
}

func (f *fakeBackend) CreateConversation(_ context.Context, c model.Conversation) (*model.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.convs = append(f.convs, c)
	return &c, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, upd)
	p := &model.Profile{ID: id}
	upd.Apply(p)
	return p, nil
}

type toasts struct{ titles []string }

func (t *toasts) Notify(title, _ string, _ notify.Variant) { t.titles = append(t.titles, title) }

type memAnalytics struct{ events []store.AnalyticsEventData }

func (m *memAnalytics) AppendAnalytics(_ context.Context, d store.AnalyticsEventData) error {
	m.events = append(m.events, d)
	return nil
}

func newTest(t *testing.T, opts ...Option) (*Test, *fakeBackend, *state.Store, *toasts) {
	t.Helper()
	b := &fakeBackend{}
	st := state.New()
	st.SetUser(&model.Profile{ID: "u-1"})
	n := &toasts{}
	opts = append([]Option{WithNotifier(n), WithAnalysisDelay(0)}, opts...)
	return New(b, st, opts...), b, st, n
}

func TestDeriveLevel(t *testing.T) {
	tests := []struct {
		n    int
		want model.Level
	}{
		{0, model.LevelBeginner},
		{2, model.LevelBeginner},
		{3, model.LevelIntermediate},
		{4, model.LevelAdvanced},
		{5, model.LevelAdvanced},
	}
	for _, tt := range tests {
		if got := DeriveLevel(tt.n); got != tt.want {
			t.Errorf("DeriveLevel(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestAdvanceRequiresRecording(t *testing.T) {
	pt, _, _, _ := newTest(t)

	assert.False(t, pt.CanAdvance())
	assert.ErrorIs(t, pt.Advance(), model.ErrValidation)
	assert.Equal(t, 0, pt.Index())

	pt.Record()
	pt.Record()
	assert.Equal(t, 1, pt.RecordedCount(), "record is idempotent")
	require.NoError(t, pt.Advance())
	assert.Equal(t, 1, pt.Index())
	assert.Equal(t, 0.5, pt.Progress())
	assert.Equal(t, "stress", pt.Question().Type)
}

func TestWalkThroughToProcessing(t *testing.T) {
	pt, _, _, _ := newTest(t)
	for i := range Questions {
		assert.InDelta(t, float64(i+1)/4, pt.Progress(), 1e-9)
		pt.Record()
		require.NoError(t, pt.Advance())
	}
	assert.Equal(t, PhaseProcessing, pt.Phase())
	assert.False(t, pt.Record(), "no recording while processing")
	assert.Error(t, pt.Skip())
}

func TestCompleteAssignsLevel(t *testing.T) {
	an := &memAnalytics{}
	pt, b, st, n := newTest(t, WithAnalytics(an))

	pt.Record()
	require.NoError(t, pt.Advance())
	require.NoError(t, pt.Skip())
	pt.Record()
	require.NoError(t, pt.Advance())
	pt.Record()
	require.NoError(t, pt.Advance())
	require.Equal(t, PhaseProcessing, pt.Phase())

	res, err := pt.Complete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.LevelIntermediate, res.Level)
	assert.Equal(t, []string{"Clear pronunciation", "Good rhythm"}, res.Strengths)
	assert.Equal(t, []string{"Intonation patterns", "Word stress"}, res.Improvements)
	assert.Equal(t, PhaseResults, pt.Phase())

	require.Len(t, b.convs, 1)
	assert.Equal(t, model.TopicPlacementTest, b.convs[0].Topic)
	assert.True(t, b.convs[0].IsPlacementTest)

	u := st.Snapshot().User
	require.NotNil(t, u)
	assert.Equal(t, model.LevelIntermediate, u.Level)
	assert.True(t, u.PlacementTestCompleted)
	assert.Contains(t, n.titles, "Test Complete!")
	require.Len(t, an.events, 1)
	assert.Equal(t, EventCompleted, an.events[0].EventType)
}

func TestCompleteOutsideProcessing(t *testing.T) {
	pt, _, _, _ := newTest(t)
	_, err := pt.Complete(context.Background())
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCompleteFailureStaysProcessing(t *testing.T) {
	pt, b, _, n := newTest(t)
	for range Questions {
		require.NoError(t, pt.Skip())
	}
	b.updateErr = model.E(model.KindNetwork, "update profile", errors.New("offline"))

	_, err := pt.Complete(context.Background())
	require.Error(t, err)
	assert.Equal(t, PhaseProcessing, pt.Phase())
	assert.Contains(t, n.titles, "Error")

	b.updateErr = nil
	res, err := pt.Complete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.LevelBeginner, res.Level)
	assert.Len(t, b.convs, 1, "a retried completion must reuse the placement conversation")
}

func TestNewDoesNotMarkTestStarted(t *testing.T) {
	_, _, st, _ := newTest(t)
	assert.Equal(t, model.PlacementProgress{}, st.Snapshot().Placement)
}

func TestSkipMarksTestStarted(t *testing.T) {
	pt, _, st, _ := newTest(t)
	require.NoError(t, pt.Skip())

	p := st.Snapshot().Placement
	assert.True(t, p.Started)
	assert.Equal(t, 1, p.CurrentQuestion)
	assert.Empty(t, p.Completed)
}

func TestResetClearsEverything(t *testing.T) {
	pt, _, st, _ := newTest(t)
	pt.Record()
	require.NoError(t, pt.Advance())
	pt.Record()

	pt.Reset()
	assert.Equal(t, 0, pt.Index())
	assert.Equal(t, 0, pt.RecordedCount())
	assert.Equal(t, PhaseQuestion, pt.Phase())
	assert.Nil(t, pt.Results())
	assert.Equal(t, model.PlacementProgress{}, st.Snapshot().Placement)
}

func TestProgressIsMirroredAndResumed(t *testing.T) {
	pt, b, st, _ := newTest(t)
	pt.Record()
	require.NoError(t, pt.Advance())
	pt.Record()

	p := st.Snapshot().Placement
	assert.True(t, p.Started)
	assert.Equal(t, 1, p.CurrentQuestion)
	assert.Equal(t, []int{1, 2}, p.Completed)

	resumed := New(b, st, WithAnalysisDelay(0))
	assert.Equal(t, 1, resumed.Index())
	assert.True(t, resumed.Recorded(0))
	assert.True(t, resumed.CanAdvance())
}

func TestRecordingToasts(t *testing.T) {
	pt, _, st, n := newTest(t)
	pt.StartRecording()
	assert.True(t, st.Snapshot().Recording)
	pt.StopRecording()
	assert.False(t, st.Snapshot().Recording)
	assert.True(t, pt.CanAdvance())
	assert.Equal(t, []string{"Recording Started", "Recording Saved"}, n.titles)
}
