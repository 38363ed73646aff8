package app

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/backend"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
)

// stubBackend satisfies backend.Backend; screens under test never reach it.
type stubBackend struct {
	backend.Backend
}

type recordingAnalytics struct {
	mu     sync.Mutex
	events []store.AnalyticsEventData
}

func (r *recordingAnalytics) AppendAnalytics(_ context.Context, data store.AnalyticsEventData) error {
	r.mu.Lock()
	r.events = append(r.events, data)
	r.mu.Unlock()
	return nil
}

func newTestModel(st *state.Store) AppModel {
	return newAppModel(Options{
		Backend:  stubBackend{},
		Store:    st,
		Notifier: notify.NewCenter(0),
		NewID:    func() string { return "id" },
	})
}

func signIn(st *state.Store, assessed bool) {
	st.SetSession(&model.Session{UserID: "u-1"})
	st.SetUser(&model.Profile{ID: "u-1", Username: "ana", Level: model.LevelBeginner, PlacementTestCompleted: assessed})
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestStartsOnOnboardingWithoutSession(t *testing.T) {
	m := newTestModel(state.New())
	if m.mode != router.Unauthenticated || m.current() != router.RouteOnboarding {
		t.Errorf("mode %v route %q, want unauthenticated on onboarding", m.mode, m.current())
	}
}

func TestStartsOnChatWhenReady(t *testing.T) {
	st := state.New()
	signIn(st, true)
	m := newTestModel(st)
	if m.current() != router.RouteChat {
		t.Errorf("route = %q, want chat", m.current())
	}
}

func TestNavigateToAuthPassesMode(t *testing.T) {
	m := newTestModel(state.New())
	m = update(t, m, router.NavigateMsg{Path: router.RouteAuth, Params: map[string]string{"mode": "signup"}})

	if m.router.Depth() != 2 || m.current() != router.RouteAuth {
		t.Fatalf("depth %d route %q, want auth on top of onboarding", m.router.Depth(), m.current())
	}
	if got := m.router.Active().Title(); got != "Sign Up" {
		t.Errorf("title = %q, want Sign Up", got)
	}
}

func TestGatedRouteRedirects(t *testing.T) {
	m := newTestModel(state.New())
	m = update(t, m, router.NavigateMsg{Path: router.RouteChat})
	if m.current() != router.RouteOnboarding || m.router.Depth() != 1 {
		t.Errorf("route %q depth %d, want onboarding only", m.current(), m.router.Depth())
	}
}

func TestModeChangeResetsToDefault(t *testing.T) {
	st := state.New()
	m := newTestModel(st)
	m = update(t, m, router.NavigateMsg{Path: router.RouteAuth})

	signIn(st, false)
	m = update(t, m, stateChangedMsg{})
	if m.mode != router.AwaitingAssessment || m.current() != router.RouteLevelSelect || m.router.Depth() != 1 {
		t.Errorf("mode %v route %q depth %d, want level select alone", m.mode, m.current(), m.router.Depth())
	}

	st.SetSession(nil)
	m = update(t, m, stateChangedMsg{})
	if m.current() != router.RouteOnboarding {
		t.Errorf("route = %q after sign out, want onboarding", m.current())
	}
}

func TestFinishingPlacementKeepsResultsVisible(t *testing.T) {
	st := state.New()
	signIn(st, false)
	m := newTestModel(st)
	m = update(t, m, router.NavigateMsg{Path: router.RoutePlacementTest})

	st.SetUser(&model.Profile{ID: "u-1", Level: model.LevelAdvanced, PlacementTestCompleted: true})
	m = update(t, m, stateChangedMsg{})
	if m.mode != router.Ready || m.current() != router.RoutePlacementTest {
		t.Fatalf("mode %v route %q, want ready on placement", m.mode, m.current())
	}

	// The level picker underneath is no longer reachable.
	m = update(t, m, router.PopScreenMsg{})
	if m.current() != router.RouteChat || m.router.Depth() != 1 {
		t.Errorf("route %q depth %d after pop, want chat alone", m.current(), m.router.Depth())
	}
}

func TestFunctionKeysSwapSecondaryScreens(t *testing.T) {
	st := state.New()
	signIn(st, true)
	m := newTestModel(st)

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF2})
	if m.current() != router.RouteHistory || m.router.Depth() != 2 {
		t.Fatalf("route %q depth %d, want history above chat", m.current(), m.router.Depth())
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF4})
	if m.current() != router.RouteProfile || m.router.Depth() != 2 {
		t.Fatalf("route %q depth %d, want profile replacing history", m.current(), m.router.Depth())
	}
	m = update(t, m, router.PopScreenMsg{})
	if m.current() != router.RouteChat || m.router.Active().Title() != "Practice" {
		t.Errorf("route %q, want chat after pop", m.current())
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF5})
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF1})
	if m.current() != router.RouteChat || m.router.Depth() != 1 {
		t.Errorf("route %q depth %d, want chat alone", m.current(), m.router.Depth())
	}
}

func TestFunctionKeysIgnoredBeforeAssessment(t *testing.T) {
	st := state.New()
	signIn(st, false)
	m := newTestModel(st)
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyF2})
	if m.current() != router.RouteLevelSelect {
		t.Errorf("route = %q, want level select", m.current())
	}
}

func TestUnknownRouteShowsNotFound(t *testing.T) {
	st := state.New()
	signIn(st, true)
	m := newTestModel(st)
	m = update(t, m, router.NavigateMsg{Path: "/nope"})
	if m.current() != router.RouteNotFound || m.router.Active().Title() != "Not Found" {
		t.Errorf("route = %q, want not found", m.current())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(state.New())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestToastTickStopsWhenEmpty(t *testing.T) {
	m := newTestModel(state.New())
	m.opts.Notifier.Notify("Level Set!", "", notify.VariantSuccess)

	next, cmd := m.Update(toastMsg{})
	m = next.(AppModel)
	if cmd == nil || !m.toastTicker {
		t.Fatal("a new toast should start the ticker")
	}
	if _, cmd = m.Update(toastMsg{}); cmd != nil {
		t.Error("a running ticker should not be started twice")
	}

	for _, toast := range m.opts.Notifier.Active() {
		m.opts.Notifier.Dismiss(toast.ID)
	}
	next, cmd = m.Update(toastTickMsg{})
	if cmd != nil || next.(AppModel).toastTicker {
		t.Error("ticker should stop once no toasts remain")
	}
}

func TestTrackRecordsScreenView(t *testing.T) {
	st := state.New()
	signIn(st, true)
	rec := &recordingAnalytics{}
	m := newAppModel(Options{Backend: stubBackend{}, Store: st, Analytics: rec})

	m.track(router.RouteHistory)()
	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.EventType != "screen_view" || ev.ProfileID != "u-1" || string(ev.Payload) != `{"route":"/history"}` {
		t.Errorf("event = %+v", ev)
	}
}

func TestStateChangeUsesCurrentStore(t *testing.T) {
	st := state.New()
	m := newTestModel(st)

	// Several changes may collapse into one message; the model must land on
	// the store's current mode, not the mode of whichever change came first.
	st.SetSession(&model.Session{UserID: "u-1"})
	st.UpdateSyncStatus(true)
	st.SetUser(&model.Profile{ID: "u-1", PlacementTestCompleted: true})
	m = update(t, m, stateChangedMsg{})
	if m.mode != router.Ready || m.current() != router.RouteChat {
		t.Errorf("mode %v route %q, want ready on chat", m.mode, m.current())
	}
}

type recordingSender struct {
	msgs chan tea.Msg
}

func (r recordingSender) Send(msg tea.Msg) { r.msgs <- msg }

func TestRelayCoalescesAndForwards(t *testing.T) {
	changed, toasts := newSignal(), newSignal()
	for range 5 {
		changed.raise()
	}
	toasts.raise()

	out := recordingSender{msgs: make(chan tea.Msg, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay(ctx, out, changed, toasts)
		close(done)
	}()

	var gotState, gotToast int
	for range 2 {
		switch (<-out.msgs).(type) {
		case stateChangedMsg:
			gotState++
		case toastMsg:
			gotToast++
		}
	}
	cancel()
	<-done

	if gotState != 1 || gotToast != 1 {
		t.Errorf("forwarded %d state and %d toast messages, want 1 each", gotState, gotToast)
	}
	if len(out.msgs) != 0 {
		t.Errorf("%d extra messages forwarded", len(out.msgs))
	}
}

func TestSignalRaiseNeverBlocks(t *testing.T) {
	s := newSignal()
	done := make(chan struct{})
	go func() {
		s.raise()
		s.raise()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("raise blocked with nobody draining")
	}
}
