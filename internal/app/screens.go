package app

import (
	convo "github.com/abhisek/vibetune/internal/chat"
	assess "github.com/abhisek/vibetune/internal/placement"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	authscreen "github.com/abhisek/vibetune/internal/screens/auth"
	"github.com/abhisek/vibetune/internal/screens/chat"
	"github.com/abhisek/vibetune/internal/screens/history"
	"github.com/abhisek/vibetune/internal/screens/levelselect"
	"github.com/abhisek/vibetune/internal/screens/onboarding"
	"github.com/abhisek/vibetune/internal/screens/placeholder"
	"github.com/abhisek/vibetune/internal/screens/placement"
	"github.com/abhisek/vibetune/internal/screens/profile"
)

// build creates a fresh screen for route. Screens that own work get their
// own controller so leaving the screen cancels it.
func (m AppModel) build(route router.Route, params map[string]string) screen.Screen {
	o := m.opts
	switch route {
	case router.RouteOnboarding:
		return onboarding.New()

	case router.RouteAuth:
		return authscreen.New(o.Backend, o.Notifier, authscreen.ParseMode(params["mode"]))

	case router.RouteLevelSelect:
		return levelselect.New(o.Backend, o.Store, o.Notifier)

	case router.RoutePlacementTest:
		opts := []assess.Option{
			assess.WithNotifier(o.Notifier),
			assess.WithLogger(o.Logger),
			assess.WithAnalysisDelay(o.Config.Coach.AnalysisDelay),
		}
		if o.Analytics != nil {
			opts = append(opts, assess.WithAnalytics(o.Analytics))
		}
		return placement.New(assess.New(o.Backend, o.Store, opts...), o.Store)

	case router.RouteChat:
		opts := []convo.Option{
			convo.WithNotifier(o.Notifier),
			convo.WithLogger(o.Logger),
			convo.WithDeviceID(o.Config.Backend.DeviceID),
		}
		if o.Analytics != nil {
			opts = append(opts, convo.WithAnalytics(o.Analytics))
		}
		if o.Wake != nil {
			opts = append(opts, convo.WithWake(o.Wake))
		}
		return chat.New(convo.New(o.Backend, o.Store, o.Responder, opts...), o.Store)

	case router.RouteHistory:
		return history.New(o.Backend, o.Store, o.Notifier, o.NewID)

	case router.RouteProfile:
		return profile.New(o.Backend, o.Store, o.Notifier)

	case router.RouteSettings:
		return placeholder.Settings()

	default:
		return placeholder.NotFound(params["path"])
	}
}
