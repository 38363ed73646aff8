// Package onboarding is the three-step introduction shown before sign-in.
package onboarding

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// Feature is one card on the "How VibeTune Works" step.
type Feature struct {
	Title       string
	Description string
}

var Features = []Feature{
	{"Voice Practice", "Practice English pronunciation with AI-powered feedback"},
	{"Interactive Chat", "Engage in natural conversations to improve fluency"},
	{"Progress Tracking", "Monitor your improvement with detailed analytics"},
	{"Personalized Learning", "Adaptive lessons tailored to your skill level"},
}

type step struct {
	title    string
	subtitle string
}

var steps = []step{
	{"Welcome to VibeTune", "Your AI-powered English prosody coach"},
	{"How VibeTune Works", "Four powerful features to accelerate your learning"},
	{"Ready to Start?", "Join thousands of learners improving their English"},
}

// sparkle frames cycle next to the microphone
var sparkleFrames = []string{"♪", "♫"}

type tickMsg time.Time

// OnboardingScreen walks through the introduction and hands off to the auth
// screen.
type OnboardingScreen struct {
	step      int
	tickCount int
	menu      components.Menu
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

func New() *OnboardingScreen {
	return &OnboardingScreen{
		menu: components.NewMenu([]components.MenuItem{
			{
				Label:  "Sign Up - It's Free",
				Action: func() tea.Cmd { return router.Navigate(router.RouteAuth, "mode", "signup") },
			},
			{
				Label:  "Already have an account? Log In",
				Action: func() tea.Cmd { return router.Navigate(router.RouteAuth, "mode", "signin") },
			},
		}),
	}
}

func (o *OnboardingScreen) Title() string {
	return ""
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Step returns the zero-based current step.
func (o *OnboardingScreen) Step() int {
	return o.step
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	if o.step == len(steps)-1 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Continue"},
			{Key: "←", Description: "Previous"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "→/Enter", Description: "Next"},
		{Key: "←", Description: "Previous"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		o.tickCount++
		return o, tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			if o.step > 0 {
				o.step--
			}
			return o, nil
		case "right", "l", "enter", "space":
			if o.step < len(steps)-1 {
				o.step++
				return o, nil
			}
		}
		if o.step == len(steps)-1 {
			var cmd tea.Cmd
			o.menu, cmd = o.menu.Update(msg)
			return o, cmd
		}
	}
	return o, nil
}

func (o *OnboardingScreen) View(width, height int) string {
	st := steps[o.step]
	sections := []string{
		theme.Title.Render(st.title),
		theme.Subtitle.Render(st.subtitle),
		"",
	}

	switch o.step {
	case 0:
		sparkle := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(sparkleFrames[o.tickCount%len(sparkleFrames)])
		sections = append(sections,
			RenderBanner(width),
			"",
			sparkle+"  "+theme.Body.Render("🎤")+"  "+sparkle,
			"",
			theme.Hint.Render("Master English intonation, rhythm, and stress patterns with personalized AI feedback."),
		)
	case 1:
		cards := make([]string, 0, len(Features))
		cardWidth := min(max(width/2-4, 24), 40)
		for _, f := range Features {
			cards = append(cards, theme.Card.Width(cardWidth).Render(
				lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(f.Title)+"\n"+
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(f.Description)))
		}
		sections = append(sections,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3]),
		)
	default:
		sections = append(sections,
			o.menu.View(),
			theme.Hint.Render("No credit card required • Start learning immediately"),
		)
	}

	sections = append(sections, "", renderDots(o.step, len(steps)))
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderDots(current, n int) string {
	dots := make([]string, n)
	for i := range dots {
		if i == current {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("●")
		}
	}
	return strings.Join(dots, " ")
}
