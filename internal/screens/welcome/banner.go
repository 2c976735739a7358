package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/safeguard/internal/ui/theme"
)

const bannerArt = `
 ███████╗ █████╗ ███████╗███████╗ ██████╗ ██╗   ██╗ █████╗ ██████╗ ██████╗
 ██╔════╝██╔══██╗██╔════╝██╔════╝██╔════╝ ██║   ██║██╔══██╗██╔══██╗██╔══██╗
 ███████╗███████║█████╗  █████╗  ██║  ███╗██║   ██║███████║██████╔╝██║  ██║
 ╚════██║██╔══██║██╔══╝  ██╔══╝  ██║   ██║██║   ██║██╔══██║██╔══██╗██║  ██║
 ███████║██║  ██║██║     ███████╗╚██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝
 ╚══════╝╚═╝  ╚═╝╚═╝     ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "S A F E G U A R D"

// bannerMinWidth is the narrowest terminal that fits the full banner.
const bannerMinWidth = 78

// RenderBanner returns the SAFEGUARD banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
