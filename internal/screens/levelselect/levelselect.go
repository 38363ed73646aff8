// Package levelselect lets a new learner take the placement test or pick a
// level directly.
package levelselect

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// Descriptions shown under each self-select level.
var Descriptions = map[model.Level]string{
	model.LevelBeginner:     "Just starting with English pronunciation",
	model.LevelIntermediate: "Have some experience with English pronunciation",
	model.LevelAdvanced:     "Looking to perfect subtle pronunciation details",
}

// ProfileUpdater is the subset of the backend the screen needs.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error)
}

type levelSetMsg struct {
	level   model.Level
	profile *model.Profile
	err     error
}

// LevelSelectScreen offers the placement test or a self-selected level.
type LevelSelectScreen struct {
	backend  ProfileUpdater
	store    *state.Store
	notifier notify.Notifier

	menu    components.Menu
	loading bool

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*LevelSelectScreen)(nil)
var _ screen.KeyHintProvider = (*LevelSelectScreen)(nil)
var _ screen.Closer = (*LevelSelectScreen)(nil)

func New(b ProfileUpdater, st *state.Store, n notify.Notifier) *LevelSelectScreen {
	if n == nil {
		n = notify.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &LevelSelectScreen{
		backend:  b,
		store:    st,
		notifier: n,
		ctx:      ctx,
		cancel:   cancel,
	}

	items := []components.MenuItem{{
		Label:       "Take Placement Test",
		Description: "Get a personalized assessment of your pronunciation skills",
		Action:      func() tea.Cmd { return router.Navigate(router.RoutePlacementTest) },
	}}
	for _, lvl := range model.Levels {
		items = append(items, components.MenuItem{
			Label:       lvl.DisplayName(),
			Description: Descriptions[lvl],
			Action:      func() tea.Cmd { return s.selectLevel(lvl) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *LevelSelectScreen) Title() string {
	return "Choose Your Path"
}

func (s *LevelSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelSelectScreen) Close() {
	s.cancel()
}

func (s *LevelSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LevelSelectScreen) selectLevel(lvl model.Level) tea.Cmd {
	user := s.store.Snapshot().User
	if user == nil || s.loading {
		return nil
	}
	s.loading = true
	ctx, id := s.ctx, user.ID
	return func() tea.Msg {
		done := true
		p, err := s.backend.UpdateProfile(ctx, id, model.ProfileUpdate{
			Level:                  &lvl,
			PlacementTestCompleted: &done,
		})
		return levelSetMsg{level: lvl, profile: p, err: err}
	}
}

func (s *LevelSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelSetMsg:
		s.loading = false
		if s.ctx.Err() != nil {
			return s, nil
		}
		if msg.err != nil {
			s.notifier.Notify("Error", model.Detail(msg.err), notify.VariantError)
			return s, nil
		}
		s.notifier.Notify("Level Set!",
			fmt.Sprintf("You've selected %s level. You can always retake the placement test later.", msg.level),
			notify.VariantSuccess)
		// Storing the assessed profile moves the app to the chat.
		s.store.SetUser(msg.profile)
		return s, nil

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LevelSelectScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose Your Path"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(70, width-4)).Render(
		"Let's find the right starting point for your English prosody journey. " +
			"You can take our placement test for a personalized assessment, or choose your level directly."))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if s.loading {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Saving..."))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
