package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vibetune/internal/model"
)

// Mode is the coarse navigation state derived from session and profile.
type Mode int

const (
	// Unauthenticated: no session or no profile.
	Unauthenticated Mode = iota
	// AwaitingAssessment: signed in, placement not yet completed.
	AwaitingAssessment
	// Ready: signed in and assessed.
	Ready
)

func (m Mode) String() string {
	switch m {
	case AwaitingAssessment:
		return "awaiting_assessment"
	case Ready:
		return "ready"
	default:
		return "unauthenticated"
	}
}

// Route is an application path.
type Route string

const (
	RouteOnboarding    Route = "/"
	RouteAuth          Route = "/auth"
	RouteLevelSelect   Route = "/level-selection"
	RoutePlacementTest Route = "/placement-test"
	RouteChat          Route = "/chat"
	RouteHistory       Route = "/history"
	RouteProfile       Route = "/profile"
	RouteSettings      Route = "/settings"
	RouteNotFound      Route = "*"
)

// NavigateMsg asks the app to show the screen for Path, subject to gating.
// Params are screen options, such as the auth screen's mode.
type NavigateMsg struct {
	Path   Route
	Params map[string]string
}

// Navigate returns a command emitting a NavigateMsg. params are key/value
// pairs.
func Navigate(path Route, params ...string) tea.Cmd {
	msg := NavigateMsg{Path: path}
	if len(params) > 1 {
		msg.Params = make(map[string]string, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			msg.Params[params[i]] = params[i+1]
		}
	}
	return func() tea.Msg { return msg }
}

var known = map[Route]bool{
	RouteOnboarding:    true,
	RouteAuth:          true,
	RouteLevelSelect:   true,
	RoutePlacementTest: true,
	RouteChat:          true,
	RouteHistory:       true,
	RouteProfile:       true,
	RouteSettings:      true,
}

var allowed = map[Mode][]Route{
	Unauthenticated:    {RouteOnboarding, RouteAuth},
	AwaitingAssessment: {RouteLevelSelect, RoutePlacementTest},
	Ready:              {RouteChat, RouteHistory, RouteProfile, RouteSettings, RoutePlacementTest},
}

// ModeFor derives the mode. A session without a loaded profile counts as
// unauthenticated.
func ModeFor(sessionPresent bool, p *model.Profile) Mode {
	switch {
	case !sessionPresent || p == nil:
		return Unauthenticated
	case !p.PlacementTestCompleted:
		return AwaitingAssessment
	default:
		return Ready
	}
}

// Allowed returns the routes reachable in mode.
func Allowed(mode Mode) []Route {
	return append([]Route(nil), allowed[mode]...)
}

// Default returns the landing route for mode.
func Default(mode Mode) Route {
	switch mode {
	case AwaitingAssessment:
		return RouteLevelSelect
	case Ready:
		return RouteChat
	default:
		return RouteOnboarding
	}
}

// Resolve maps a requested path to the route to show. redirected is true
// when the request was not reachable in mode. In Ready mode an unknown path
// resolves to RouteNotFound without a redirect.
func Resolve(mode Mode, path Route) (Route, bool) {
	for _, r := range allowed[mode] {
		if r == path {
			return r, false
		}
	}
	if mode == Ready && !known[path] {
		return RouteNotFound, false
	}
	return Default(mode), true
}
