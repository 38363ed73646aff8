package levelselect

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/state"
)

type fakeUpdater struct {
	err  error
	upds []model.ProfileUpdate
}

func (f *fakeUpdater) UpdateProfile(_ context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upds = append(f.upds, upd)
	p := &model.Profile{ID: id}
	upd.Apply(p)
	return p, nil
}

type toasts struct{ titles []string }

func (t *toasts) Notify(title, _ string, _ notify.Variant) { t.titles = append(t.titles, title) }

func key(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func newScreen(t *testing.T, f *fakeUpdater) (*LevelSelectScreen, *state.Store, *toasts) {
	t.Helper()
	st := state.New()
	st.SetUser(&model.Profile{ID: "u-1"})
	n := &toasts{}
	return New(f, st, n), st, n
}

func TestPlacementTestOption(t *testing.T) {
	s, _, _ := newScreen(t, &fakeUpdater{})
	_, cmd := s.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, router.RoutePlacementTest, msg.Path)
}

func TestSelfSelectStoresAssessedProfile(t *testing.T) {
	f := &fakeUpdater{}
	s, st, n := newScreen(t, f)

	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyDown)) // intermediate
	_, cmd := s.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.Len(t, f.upds, 1)
	assert.Equal(t, model.LevelIntermediate, *f.upds[0].Level)
	assert.True(t, *f.upds[0].PlacementTestCompleted)

	u := st.Snapshot().User
	require.NotNil(t, u)
	assert.Equal(t, model.LevelIntermediate, u.Level)
	assert.True(t, u.PlacementTestCompleted)
	assert.Equal(t, []string{"Level Set!"}, n.titles)
}

func TestSelfSelectFailureToasts(t *testing.T) {
	s, st, n := newScreen(t, &fakeUpdater{err: model.E(model.KindNetwork, "update profile", errors.New("offline"))})

	s.Update(key(tea.KeyDown))
	_, cmd := s.Update(key(tea.KeyEnter))
	s.Update(cmd())

	assert.Equal(t, []string{"Error"}, n.titles)
	assert.False(t, st.Snapshot().User.PlacementTestCompleted)
}

func TestNoUserIsNoop(t *testing.T) {
	s := New(&fakeUpdater{}, state.New(), nil)
	s.Update(key(tea.KeyDown))
	_, cmd := s.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestViewListsLevels(t *testing.T) {
	s, _, _ := newScreen(t, &fakeUpdater{})
	v := s.View(100, 40)
	for _, lvl := range model.Levels {
		assert.Contains(t, v, lvl.DisplayName())
	}
	assert.Contains(t, v, "Take Placement Test")
}
