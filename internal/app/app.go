package app

import (
	"context"
	"encoding/json"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vibetune/internal/backend"
	convo "github.com/abhisek/vibetune/internal/chat"
	"github.com/abhisek/vibetune/internal/coach"
	"github.com/abhisek/vibetune/internal/config"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/store"
	"github.com/abhisek/vibetune/internal/ui/layout"
)

const toastTick = 500 * time.Millisecond

// Options holds the dependencies shared by all screens.
type Options struct {
	Backend   backend.Backend
	Store     *state.Store
	Notifier  *notify.Center
	Responder coach.Responder
	Analytics convo.Recorder
	Logger    *zap.Logger
	Config    config.Config

	// Wake nudges the retry drainer after a message is queued.
	Wake func()

	// NewID generates row ids for ratings.
	NewID func() string
}

// stateChangedMsg announces that the session store changed. The handler
// reads the store itself, so a late or coalesced message is never stale.
type stateChangedMsg struct{}

// toastMsg announces a new toast.
type toastMsg struct{}

type toastTickMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	routes []router.Route
	mode   router.Mode

	width       int
	height      int
	toastTicker bool
}

// newAppModel creates an AppModel on the landing screen for the current
// session state.
func newAppModel(opts Options) AppModel {
	if opts.Notifier == nil {
		opts.Notifier = notify.NewCenter(notify.DefaultTTL)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	snap := opts.Store.Snapshot()
	mode := router.ModeFor(snap.Session != nil, snap.User)
	m := AppModel{opts: opts, mode: mode}
	def := router.Default(mode)
	m.router = router.New(m.build(def, nil))
	m.routes = []router.Route{def}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.track(m.current()))
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		return m.onStateChanged(m.opts.Store.Snapshot())

	case router.NavigateMsg:
		cmd := m.navigate(msg.Path, msg.Params)
		return m, cmd

	case router.PopScreenMsg:
		if len(m.routes) <= 1 {
			return m, nil
		}
		m.routes = m.routes[:len(m.routes)-1]
		cmd := m.router.Update(msg)
		if !m.reachable(m.current()) {
			cmd = m.reset(router.Default(m.mode))
		}
		return m, cmd

	case toastMsg:
		if m.toastTicker {
			return m, nil
		}
		m.toastTicker = true
		return m, tickToasts()

	case toastTickMsg:
		if len(m.opts.Notifier.Active()) == 0 {
			m.toastTicker = false
			return m, nil
		}
		return m, tickToasts()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.router.Close()
			return m, tea.Quit
		}
		if m.mode == router.Ready {
			if path, ok := functionKeys[msg.String()]; ok {
				cmd := m.navigate(path, nil)
				return m, cmd
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

var functionKeys = map[string]router.Route{
	"f1": router.RouteChat,
	"f2": router.RouteHistory,
	"f3": router.RoutePlacementTest,
	"f4": router.RouteProfile,
	"f5": router.RouteSettings,
}

var navHints = []layout.KeyHint{
	{Key: "F1", Description: "Chat"},
	{Key: "F2", Description: "History"},
	{Key: "F3", Description: "Test"},
	{Key: "F4", Description: "Profile"},
	{Key: "F5", Description: "Settings"},
}

func tickToasts() tea.Cmd {
	return tea.Tick(toastTick, func(time.Time) tea.Msg { return toastTickMsg{} })
}

func (m AppModel) current() router.Route {
	if len(m.routes) == 0 {
		return ""
	}
	return m.routes[len(m.routes)-1]
}

// onStateChanged re-derives the mode. A mode change lands on the mode's
// default route unless the current route is still reachable.
func (m AppModel) onStateChanged(snap state.State) (tea.Model, tea.Cmd) {
	mode := router.ModeFor(snap.Session != nil, snap.User)
	if mode == m.mode {
		return m, nil
	}
	m.opts.Logger.Debug("mode changed",
		zap.Stringer("from", m.mode), zap.Stringer("to", mode))
	m.mode = mode
	if m.reachable(m.current()) {
		return m, nil
	}
	cmd := m.reset(router.Default(mode))
	return m, cmd
}

func (m AppModel) reachable(r router.Route) bool {
	for _, a := range router.Allowed(m.mode) {
		if a == r {
			return true
		}
	}
	return r == router.RouteNotFound && m.mode == router.Ready
}

// navigate shows the screen for path once gating has been applied. The
// default route always becomes the bottom of the stack; other routes stack
// once above it.
func (m *AppModel) navigate(path router.Route, params map[string]string) tea.Cmd {
	target, redirected := router.Resolve(m.mode, path)
	if redirected {
		m.opts.Logger.Debug("route redirected",
			zap.String("requested", string(path)), zap.String("route", string(target)))
	}
	if target == router.RouteNotFound {
		params = map[string]string{"path": string(path)}
	}
	if target == m.current() && len(params) == 0 {
		return nil
	}
	def := router.Default(m.mode)
	if target == def {
		return m.reset(target)
	}

	s := m.build(target, params)
	var cmd tea.Cmd
	if m.current() == def {
		cmd = m.router.Push(s)
		m.routes = append(m.routes, target)
	} else {
		cmd = m.router.Replace(s)
		m.routes[len(m.routes)-1] = target
	}
	return tea.Batch(cmd, m.track(target))
}

func (m *AppModel) reset(target router.Route) tea.Cmd {
	cmd := m.router.Reset(m.build(target, nil))
	m.routes = []router.Route{target}
	return tea.Batch(cmd, m.track(target))
}

// track records a screen view without blocking the update loop.
func (m AppModel) track(route router.Route) tea.Cmd {
	rec := m.opts.Analytics
	if rec == nil {
		return nil
	}
	var profileID string
	if u := m.opts.Store.Snapshot().User; u != nil {
		profileID = u.ID
	}
	payload, _ := json.Marshal(map[string]string{"route": string(route)})
	logger := m.opts.Logger
	return func() tea.Msg {
		err := rec.AppendAnalytics(context.Background(), store.AnalyticsEventData{
			ProfileID: profileID,
			EventType: "screen_view",
			Payload:   payload,
		})
		if err != nil {
			logger.Debug("record screen view", zap.Error(err))
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.opts.Store.Snapshot()
	info := layout.HeaderInfo{
		SignedIn: snap.User != nil,
		Online:   snap.Sync.Online,
		Pending:  len(snap.RetryQueue),
	}
	if snap.User != nil {
		info.Level = snap.User.Level
	}
	header := layout.RenderHeader(title, info, m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if m.mode == router.Ready && len(hints) < 4 {
		hints = append(hints, navHints...)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	toasts := layout.RenderToasts(m.opts.Notifier.Active(), m.width)

	v.SetContent(layout.RenderFrame(header, content, toasts, footer, m.width, m.height))
	return v
}
