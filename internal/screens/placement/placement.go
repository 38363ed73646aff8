// Package placement is the screen for the four-question assessment.
package placement

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/vibetune/internal/placement"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

type completedMsg struct {
	results *assess.Results
	err     error
}

// PlacementScreen drives an assessment test.
type PlacementScreen struct {
	test    *assess.Test
	store   *state.Store
	spinner spinner.Model

	analyzing bool
	failed    bool
	hint      string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*PlacementScreen)(nil)
var _ screen.KeyHintProvider = (*PlacementScreen)(nil)
var _ screen.Closer = (*PlacementScreen)(nil)

func New(test *assess.Test, st *state.Store) *PlacementScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &PlacementScreen{
		test:    test,
		store:   st,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *PlacementScreen) Title() string {
	return "Placement Test"
}

func (s *PlacementScreen) Init() tea.Cmd {
	// A test resumed in processing picks up the analysis again.
	if s.test.Phase() == assess.PhaseProcessing {
		return s.complete()
	}
	return nil
}

// Close cancels a running analysis and turns the microphone off.
func (s *PlacementScreen) Close() {
	s.cancel()
	if s.store.Snapshot().Recording {
		s.store.SetRecording(false)
	}
}

func (s *PlacementScreen) KeyHints() []layout.KeyHint {
	switch s.test.Phase() {
	case assess.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "Space", Description: "Record"},
			{Key: "Enter", Description: "Next"},
			{Key: "S", Description: "Skip"},
			{Key: "Esc", Description: "Back"},
		}
	case assess.PhaseResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start Practicing"},
			{Key: "R", Description: "Retake"},
		}
	default:
		if s.failed {
			return []layout.KeyHint{{Key: "Enter", Description: "Try again"}}
		}
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
}

func (s *PlacementScreen) complete() tea.Cmd {
	s.analyzing = true
	s.failed = false
	ctx := s.ctx
	run := func() tea.Msg {
		res, err := s.test.Complete(ctx)
		return completedMsg{results: res, err: err}
	}
	return tea.Batch(run, s.spinner.Tick)
}

func (s *PlacementScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completedMsg:
		s.analyzing = false
		// Failures are toasted by the test; stay put and offer a retry.
		s.failed = msg.err != nil && s.ctx.Err() == nil
		return s, nil

	case spinner.TickMsg:
		if !s.analyzing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch s.test.Phase() {
		case assess.PhaseQuestion:
			return s, s.handleQuestionKey(msg)
		case assess.PhaseProcessing:
			if msg.String() == "enter" && s.failed {
				return s, s.complete()
			}
		case assess.PhaseResults:
			switch msg.String() {
			case "enter":
				return s, router.Navigate(router.RouteChat)
			case "r":
				s.test.Reset()
				s.hint = ""
			}
		}
	}
	return s, nil
}

func (s *PlacementScreen) handleQuestionKey(msg tea.KeyPressMsg) tea.Cmd {
	s.hint = ""
	switch msg.String() {
	case "space":
		if s.store.Snapshot().Recording {
			s.test.StopRecording()
		} else {
			s.test.StartRecording()
		}
	case "enter":
		if s.store.Snapshot().Recording {
			s.test.StopRecording()
		}
		if err := s.test.Advance(); err != nil {
			s.hint = "Record your answer first, or press S to skip"
			return nil
		}
	case "s":
		if s.store.Snapshot().Recording {
			s.store.SetRecording(false)
		}
		if err := s.test.Skip(); err != nil {
			return nil
		}
	case "esc":
		return func() tea.Msg { return router.PopScreenMsg{} }
	default:
		return nil
	}
	if s.test.Phase() == assess.PhaseProcessing {
		return s.complete()
	}
	return nil
}

func (s *PlacementScreen) View(width, height int) string {
	var content string
	switch s.test.Phase() {
	case assess.PhaseQuestion:
		content = s.viewQuestion(width)
	case assess.PhaseProcessing:
		content = s.viewProcessing()
	default:
		content = s.viewResults()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PlacementScreen) viewQuestion(width int) string {
	i := s.test.Index()
	q := s.test.Question()
	cardWidth := min(70, width-4)

	var b strings.Builder
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", i+1, len(assess.Questions)),
		s.test.Progress(), true, cardWidth).View())
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(q.Text) + "\n\n" +
		theme.Hint.Render("Focus: "+q.Focus)
	b.WriteString(theme.Card.Width(cardWidth).Render(body))
	b.WriteString("\n\n")

	switch {
	case s.store.Snapshot().Recording:
		b.WriteString(theme.Recording.Render("● Recording... press Space to stop"))
	case s.test.Recorded(i):
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("✓ Response recorded"))
	default:
		b.WriteString(theme.Hint.Render("Press Space to start recording"))
	}
	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.hint))
	}
	return b.String()
}

func (s *PlacementScreen) viewProcessing() string {
	if s.failed {
		return theme.ErrorText.Render("We couldn't finish analyzing your test.") + "\n\n" +
			theme.Hint.Render("Press Enter to try again")
	}
	return s.spinner.View() + " " + theme.Body.Render("Analyzing your responses...") + "\n\n" +
		theme.Hint.Render("Our AI is evaluating your pronunciation, rhythm, and intonation patterns.")
}

func (s *PlacementScreen) viewResults() string {
	res := s.test.Results()
	if res == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Your Results"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Your level: "))
	b.WriteString(theme.BadgeLevel.Render(res.Level.DisplayName()))
	b.WriteString("\n\n")
	b.WriteString(renderList("Strengths", res.Strengths, theme.Success))
	b.WriteString("\n")
	b.WriteString(renderList("Areas to improve", res.Improvements, theme.Accent))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press Enter to start practicing"))
	return b.String()
}

func renderList(title string, items []string, bullet color.Color) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(title))
	b.WriteString("\n")
	for _, it := range items {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(bullet).Render("•") + " ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(it))
		b.WriteString("\n")
	}
	return b.String()
}
