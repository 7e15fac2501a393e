package components

import (
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/ui/theme"
)

// Button renders a call-to-action. A disabled button is dimmed.
func Button(label string, enabled bool, width int) string {
	if enabled {
		return theme.ButtonActive.Width(width).Align(lipgloss.Center).Render("▸ " + label)
	}
	return theme.ButtonInactive.Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(label)
}
