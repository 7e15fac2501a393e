package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗      ██████╗ ██╗    ██╗██████╗ ██████╗  ██████╗
 ██╔════╝ ██║     ██╔═══██╗██║    ██║██╔══██╗██╔══██╗██╔═══██╗
 ██║  ███╗██║     ██║   ██║██║ █╗ ██║██████╔╝██████╔╝██║   ██║
 ██║   ██║██║     ██║   ██║██║███╗██║██╔═══╝ ██╔══██╗██║   ██║
 ╚██████╔╝███████╗╚██████╔╝╚███╔███╔╝██║     ██║  ██║╚██████╔╝
  ╚═════╝ ╚══════╝ ╚═════╝  ╚══╝╚══╝ ╚═╝     ╚═╝  ╚═╝ ╚═════╝`

const bannerCompact = "G L O W P R O . A I"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 66

// RenderBanner returns the GLOWPRO banner in the primary color, or a
// compact one-line fallback on narrow or short terminals.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth || layout.IsCompactHeight(height) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
