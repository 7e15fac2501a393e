package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

// PlaceholderScreen stands in for a section that is not available yet.
// It is pushed over the dashboard and popped with Esc.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen titled title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	heading := theme.Heading.Render(p.title)
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("╌╌ Em breve ╌╌\n\nEsta seção ainda está em construção.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Voltar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}
