package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/router"
	"github.com/abhisek/vibetune/internal/screen"
	"github.com/abhisek/vibetune/internal/state"
	"github.com/abhisek/vibetune/internal/ui/layout"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

// Source is the subset of the backend the history screen reads and rates
// through.
type Source interface {
	ListConversations(ctx context.Context, profileID string) ([]model.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)
	RateMessage(ctx context.Context, rating model.FeedbackRating) error
}

type historyLoadedMsg struct {
	Conversations []model.Conversation
	Err           error
}

type messagesLoadedMsg struct {
	ConversationID string
	Messages       []model.Message
	Err            error
}

type ratedMsg struct {
	MessageID string
	Rating    int
	Err       error
}

// HistoryScreen lists past conversations; enter opens one.
type HistoryScreen struct {
	source   Source
	store    *state.Store
	notifier notify.Notifier
	now      func() time.Time
	newID    func() string

	conversations []model.Conversation
	selected      int
	loaded        bool
	errMsg        string

	// open is the conversation being read, nil on the list.
	open      *model.Conversation
	messages  []model.Message
	msgLoaded bool
	msgCursor int
	ratings   map[string]int

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Closer = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. newID mints rating ids.
func New(src Source, st *state.Store, n notify.Notifier, newID func() string) *HistoryScreen {
	if n == nil {
		n = notify.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &HistoryScreen{
		source:   src,
		store:    st,
		notifier: n,
		now:      time.Now,
		newID:    newID,
		ratings:  make(map[string]int),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	user := s.store.Snapshot().User
	if user == nil {
		s.loaded = true
		return nil
	}
	ctx, id := s.ctx, user.ID
	return func() tea.Msg {
		convs, err := s.source.ListConversations(ctx, id)
		return historyLoadedMsg{Conversations: convs, Err: err}
	}
}

func (s *HistoryScreen) Close() {
	s.cancel()
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.open != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "1-5", Description: "Rate reply"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = model.Detail(msg.Err)
		} else {
			s.conversations = msg.Conversations
		}
		s.loaded = true
		return s, nil

	case messagesLoadedMsg:
		if s.open == nil || s.open.ID != msg.ConversationID {
			return s, nil
		}
		if msg.Err != nil {
			s.notifier.Notify("Error", model.Detail(msg.Err), notify.VariantError)
			s.open = nil
			return s, nil
		}
		s.messages = msg.Messages
		s.msgLoaded = true
		s.msgCursor = 0
		return s, nil

	case ratedMsg:
		if msg.Err != nil {
			delete(s.ratings, msg.MessageID)
			s.notifier.Notify("Error", model.Detail(msg.Err), notify.VariantError)
			return s, nil
		}
		s.notifier.Notify("Thanks for the feedback!", fmt.Sprintf("You rated this reply %d/5", msg.Rating), notify.VariantSuccess)
		return s, nil

	case tea.KeyPressMsg:
		if s.open != nil {
			return s, s.handleDetailKey(msg)
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.conversations)-1 {
				s.selected++
			}
		case "enter":
			return s, s.openSelected()
		}
	}
	return s, nil
}

func (s *HistoryScreen) openSelected() tea.Cmd {
	if s.selected >= len(s.conversations) {
		return nil
	}
	conv := s.conversations[s.selected]
	s.open = &conv
	s.messages = nil
	s.msgLoaded = false
	ctx := s.ctx
	return func() tea.Msg {
		msgs, err := s.source.ListMessages(ctx, conv.ID)
		return messagesLoadedMsg{ConversationID: conv.ID, Messages: msgs, Err: err}
	}
}

func (s *HistoryScreen) handleDetailKey(msg tea.KeyPressMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "esc":
		s.open = nil
	case "up", "k":
		if s.msgCursor > 0 {
			s.msgCursor--
		}
	case "down", "j":
		if s.msgCursor < len(s.messages)-1 {
			s.msgCursor++
		}
	case "1", "2", "3", "4", "5":
		return s.rate(int(key[0] - '0'))
	}
	return nil
}

func (s *HistoryScreen) rate(rating int) tea.Cmd {
	if s.msgCursor >= len(s.messages) {
		return nil
	}
	m := s.messages[s.msgCursor]
	user := s.store.Snapshot().User
	if m.Sender != model.SenderAI || user == nil {
		return nil
	}
	s.ratings[m.ID] = rating
	fr := model.FeedbackRating{
		ID:        s.newID(),
		MessageID: m.ID,
		ProfileID: user.ID,
		Rating:    rating,
		CreatedAt: s.now().UTC(),
	}
	ctx := s.ctx
	return func() tea.Msg {
		return ratedMsg{MessageID: fr.MessageID, Rating: rating, Err: s.source.RateMessage(ctx, fr)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.open != nil {
		return s.viewConversation(width)
	}
	if len(s.conversations) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No conversations yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, c := range s.conversations {
		dateStr := c.StartedAt.Local().Format("Jan 02, 2006 15:04")
		tag := ""
		if c.IsPlacementTest {
			tag = "  [placement]"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s%s", prefix, dateStr, c.Topic, tag)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) viewConversation(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.open.Topic))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(s.open.StartedAt.Local().Format("Mon Jan 02, 2006 15:04")))
	b.WriteString("\n\n")

	if !s.msgLoaded {
		b.WriteString(theme.Hint.Render("  Loading messages..."))
		return b.String()
	}
	if len(s.messages) == 0 {
		b.WriteString(theme.Hint.Render("  No messages in this conversation."))
		return b.String()
	}

	textWidth := max(width-12, 20)
	for i, m := range s.messages {
		who := "Coach"
		if m.Sender == model.SenderUser {
			who = "You"
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.msgCursor {
			prefix = "> "
			style = style.Foreground(theme.Primary)
		}
		head := prefix + lipgloss.NewStyle().Bold(true).Render(who)
		if r, ok := s.ratings[m.ID]; ok {
			head += "  " + theme.Score.Render(strings.Repeat("★", r))
		}
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(style.Width(textWidth).PaddingLeft(4).Render(m.Content))
		b.WriteString("\n")
		if f := m.Feedback; f != nil {
			b.WriteString(theme.Score.PaddingLeft(4).Render(
				fmt.Sprintf("Rhythm %.1f  Intonation %.1f  Stress %.1f", f.Rhythm, f.Intonation, f.Stress)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
