package onboarding

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vibetune/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗██╗██████╗ ███████╗████████╗██╗   ██╗███╗   ██╗███████╗
 ██║   ██║██║██╔══██╗██╔════╝╚══██╔══╝██║   ██║████╗  ██║██╔════╝
 ██║   ██║██║██████╔╝█████╗     ██║   ██║   ██║██╔██╗ ██║█████╗
 ╚██╗ ██╔╝██║██╔══██╗██╔══╝     ██║   ██║   ██║██║╚██╗██║██╔══╝
  ╚████╔╝ ██║██████╔╝███████╗   ██║   ╚██████╔╝██║ ╚████║███████╗
   ╚═══╝  ╚═╝╚═════╝ ╚══════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═══╝╚══════╝`

const bannerCompact = "V I B E T U N E"

// RenderBanner returns the VIBETUNE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
