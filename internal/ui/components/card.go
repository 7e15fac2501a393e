package components

import (
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/ui/theme"
)

// ContentWidth returns the inner width shared by stacked cards so they
// align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// HighlightCard is a Card with the primary border, for featured content.
func HighlightCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}
