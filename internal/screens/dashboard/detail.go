package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/catalog"
	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

// ProductDetail shows one product. It is pushed over the dashboard and
// popped with Esc.
type ProductDetail struct {
	product catalog.Product
}

var _ screen.Screen = (*ProductDetail)(nil)

// NewProductDetail creates the detail screen for p.
func NewProductDetail(p catalog.Product) *ProductDetail {
	return &ProductDetail{product: p}
}

func (s *ProductDetail) Init() tea.Cmd { return nil }

func (s *ProductDetail) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *ProductDetail) Title() string { return s.product.Category }

func (s *ProductDetail) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Voltar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (s *ProductDetail) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.product

	title := theme.Heading.Render(p.Name)
	if p.Featured {
		title = theme.Badge.Render("KIT") + " " + title
	}
	meta := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %.1f", p.Rating)) +
		"   " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Category)

	body := []string{
		title,
		meta,
		"",
		lipgloss.NewStyle().Width(cw - 4).Render(p.Description),
		"",
		theme.Heading.Render("Por que este produto?"),
		lipgloss.NewStyle().Width(cw - 4).Foreground(theme.Secondary).Render(p.Reason),
		"",
		labeled(p.Price, p.Link),
	}

	content := components.HighlightCard(strings.Join(body, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
