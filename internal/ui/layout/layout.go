package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/model"
	"github.com/abhisek/vibetune/internal/notify"
	"github.com/abhisek/vibetune/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// MaxToasts caps how many toasts are stacked at once.
	MaxToasts = 3
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// SyncLabel returns the connectivity badge text.
func SyncLabel(online bool, pending int) string {
	switch {
	case !online && pending > 0:
		return fmt.Sprintf("Offline (%d)", pending)
	case !online:
		return "Offline"
	case pending > 0:
		return fmt.Sprintf("Syncing %d", pending)
	default:
		return "Online"
	}
}

func renderSyncBadge(online bool, pending int) string {
	label := SyncLabel(online, pending)
	switch {
	case !online:
		return theme.BadgeOffline.Render("○ " + label)
	case pending > 0:
		return theme.BadgeSyncing.Render("◌ " + label)
	default:
		return theme.BadgeOnline.Render("● " + label)
	}
}

// HeaderInfo is what the header shows besides the screen title.
type HeaderInfo struct {
	// Level is empty when no user is signed in.
	Level    model.Level
	SignedIn bool
	Online   bool
	Pending  int
}

// RenderHeader renders the application header bar.
func RenderHeader(title string, info HeaderInfo, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  VibeTune")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := renderSyncBadge(info.Online, info.Pending)
	if info.SignedIn {
		right = theme.BadgeLevel.Render(info.Level.DisplayName()) + "   " + right
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0) // border and padding

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render("  " + strings.Join(parts, "   "))
}

// RenderToasts renders the newest toasts, stacked, at most MaxToasts.
func RenderToasts(toasts []notify.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	if len(toasts) > MaxToasts {
		toasts = toasts[len(toasts)-MaxToasts:]
	}
	boxWidth := min(max(width/3, 30), width)
	out := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := theme.ToastDefault
		switch t.Variant {
		case notify.VariantSuccess:
			style = theme.ToastSuccess
		case notify.VariantError:
			style = theme.ToastError
		}
		body := lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(t.Title)
		if t.Description != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Description)
		}
		out = append(out, style.Width(boxWidth).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Right, out...)
}

// RenderFrame composes the full frame: header + content + footer. Toasts,
// when present, take the top right of the content area.
func RenderFrame(header, content, toasts, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := max(height-headerHeight-footerHeight, 0)

	if toasts != "" {
		toastBlock := lipgloss.PlaceHorizontal(width, lipgloss.Right, toasts)
		rest := max(contentHeight-lipgloss.Height(toastBlock), 0)
		content = toastBlock + "\n" + truncateLines(content, rest)
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// ContentHeight returns the space left for the active screen once the header
// and footer have been rendered.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

func truncateLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
