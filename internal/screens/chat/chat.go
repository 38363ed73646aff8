// Package chat is the practice conversation screen.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	convo "github.com/abhisek/vibetune/internal/chat"
	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/ui/components"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// Controller is what the screen drives. *chat.Controller implements it.
type Controller interface {
	Start(ctx context.Context) error
	SendText(text string) error
	StartRecording()
	StopRecording() error
	Retry(messageID string) error
	Busy() bool
	Close()
}

type startedMsg struct {
	err error
}

// ChatScreen shows the current conversation and the message input.
type ChatScreen struct {
	ctrl    Controller
	store   *state.Store
	input   components.TextInput
	spinner spinner.Model

	// scroll is how many lines the view is scrolled up from the bottom.
	scroll  int
	started bool
	hint    string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Closer = (*ChatScreen)(nil)

func New(ctrl Controller, st *state.Store) *ChatScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChatScreen{
		ctrl:    ctrl,
		store:   st,
		input:   components.NewTextInput("", "Type your message...", false, 500),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *ChatScreen) Title() string {
	return "Practice"
}

func (s *ChatScreen) Init() tea.Cmd {
	ctx := s.ctx
	start := func() tea.Msg {
		return startedMsg{err: s.ctrl.Start(ctx)}
	}
	return tea.Batch(start, s.input.Focus(), s.spinner.Tick)
}

// Close cancels pending replies. A live recording is discarded.
func (s *ChatScreen) Close() {
	s.cancel()
	s.ctrl.Close()
	if s.store.Snapshot().Recording {
		s.store.SetRecording(false)
	}
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	rec := "Record"
	if s.store.Snapshot().Recording {
		rec = "Stop"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: rec},
		{Key: "Ctrl+T", Description: "Retry"},
		{Key: "F2", Description: "History"},
		{Key: "F4", Description: "Profile"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		// Start failures are toasted by the controller.
		s.started = msg.err == nil
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			s.send()
			return s, nil
		case "ctrl+r":
			s.toggleRecording()
			return s, nil
		case "ctrl+t":
			s.retryLast()
			return s, nil
		case "pgup":
			s.scroll += 5
			return s, nil
		case "pgdown":
			s.scroll = max(s.scroll-5, 0)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() {
	s.hint = ""
	err := s.ctrl.SendText(s.input.Value())
	switch {
	case err == nil:
		s.input.Reset()
		s.scroll = 0
	case errors.Is(err, model.ErrValidation):
		s.hint = model.Detail(err)
	}
}

func (s *ChatScreen) toggleRecording() {
	s.hint = ""
	if !s.store.Snapshot().Recording {
		s.ctrl.StartRecording()
		return
	}
	if err := s.ctrl.StopRecording(); err != nil {
		s.hint = model.Detail(err)
	}
	s.scroll = 0
}

func (s *ChatScreen) retryLast() {
	s.hint = ""
	msgs := s.store.Snapshot().Messages
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Sender == model.SenderUser {
			if err := s.ctrl.Retry(msgs[i].ID); err != nil {
				s.hint = model.Detail(err)
			}
			s.scroll = 0
			return
		}
	}
	s.hint = "Nothing to retry yet"
}

func (s *ChatScreen) View(width, height int) string {
	snap := s.store.Snapshot()

	var footer strings.Builder
	switch {
	case snap.Recording:
		footer.WriteString(theme.Recording.Render("● Recording... press Ctrl+R to send"))
	case s.ctrl.Busy():
		footer.WriteString(s.spinner.View() + " " + theme.Hint.Render("Coach is thinking..."))
	}
	if s.hint != "" {
		if footer.Len() > 0 {
			footer.WriteString("  ")
		}
		footer.WriteString(theme.ErrorText.Render(s.hint))
	}
	footer.WriteString("\n")
	footer.WriteString(s.input.View())
	bottom := footer.String()

	listHeight := max(height-lipgloss.Height(bottom)-1, 1)
	lines := s.renderMessages(snap.Messages, width)
	if len(lines) == 0 && !s.started {
		lines = []string{theme.Hint.Render("  Starting your practice session...")}
	}

	s.scroll = min(s.scroll, max(len(lines)-listHeight, 0))
	end := len(lines) - s.scroll
	start := max(end-listHeight, 0)
	visible := lines[start:end]

	list := lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight).Render(strings.Join(visible, "\n"))
	return list + "\n\n" + bottom
}

// renderMessages returns the conversation as display lines.
func (s *ChatScreen) renderMessages(msgs []model.Message, width int) []string {
	bubbleWidth := max(width*3/4, 20)
	var out []string
	for _, m := range msgs {
		out = append(out, strings.Split(renderMessage(m, width, bubbleWidth), "\n")...)
		out = append(out, "")
	}
	return out
}

func renderMessage(m model.Message, width, bubbleWidth int) string {
	if m.Sender == model.SenderUser {
		label := "You"
		if m.Type == model.MessageAudio {
			label = "You 🎤"
		}
		if m.Version > 1 {
			label += fmt.Sprintf(" (retry %d)", m.Version-1)
		}
		block := theme.Hint.Render(label) + "\n" +
			theme.UserBubble.MaxWidth(bubbleWidth).Width(min(lipgloss.Width(m.Content)+2, bubbleWidth)).Render(m.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}

	var b strings.Builder
	b.WriteString(m.Content)
	if f := m.Feedback; f != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Score.Render(fmt.Sprintf("Rhythm %.1f  Intonation %.1f  Stress %.1f", f.Rhythm, f.Intonation, f.Stress)))
	}
	if m.Guidance != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Italic(true).Render("Tip: " + m.Guidance))
	}
	if len(m.VocabSuggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Vocab.Render("Practice: " + strings.Join(m.VocabSuggestions, ", ")))
	}
	return theme.Hint.Render("Coach") + "\n" + theme.CoachBubble.Width(bubbleWidth).Render(b.String())
}

var _ Controller = (*convo.Controller)(nil)
