package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

const bannerArt = `╔╦╗╦═╗╦╔═╗╔═╗╔═╗
 ║ ╠╦╝║╠═╣║ ╦║╣
 ╩ ╩╚═╩╩ ╩╚═╝╚═╝`

const bannerCompact = "T · R · I · A · G · E"

// RenderBanner returns the TRIAGE banner styled in the primary color.
// Uses the compact form when compact is set.
func RenderBanner(compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
