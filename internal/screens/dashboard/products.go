package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/catalog"
	"github.com/glowpro/glowpro/internal/router"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

var usageTips = []string{
	"Use o Kit Clareador completo para resultados máximos",
	"Aplique protetor solar diariamente para manter os resultados",
	"Comece com versões menores para testar na sua pele",
	"Introduza novos produtos gradualmente na rotina",
	"Resultados visíveis aparecem após 2-4 semanas de uso consistente",
}

// listedProducts returns the products in the order they are listed:
// grouped by category, categories in first-seen order.
func (d *Dashboard) listedProducts() []catalog.Product {
	var out []catalog.Product
	for _, cat := range catalog.Categories(d.products) {
		out = append(out, catalog.InCategory(d.products, cat)...)
	}
	return out
}

func (d *Dashboard) updateProducts(key string) tea.Cmd {
	listed := d.listedProducts()
	switch key {
	case "up", "k":
		if d.productCursor > 0 {
			d.productCursor--
		}
	case "down", "j":
		if d.productCursor < len(listed)-1 {
			d.productCursor++
		}
	case "enter":
		if d.productCursor < len(listed) {
			detail := NewProductDetail(listed[d.productCursor])
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: detail}
			}
		}
	}
	return nil
}

// viewProducts lists products grouped by category and returns the line
// index of the cursor.
func (d *Dashboard) viewProducts(cw int) (string, int) {
	kit := catalog.InCategory(d.products, catalog.FeaturedCategory)
	featured := theme.Badge.Render("DESTAQUE") + " " + theme.Heading.Render("Kit Clareador Completo") + "\n" +
		theme.Hint.Render("Mais vendido • Eficácia comprovada") + "\n" +
		theme.Body.Render(fmt.Sprintf("%d produtos com Vitamina C para uniformizar o tom", len(kit)))

	lines := []string{
		theme.Title.Render("Produtos Recomendados"),
		"",
	}
	lines = append(lines, strings.Split(components.HighlightCard(featured, cw), "\n")...)
	lines = append(lines, "")

	focus := -1
	idx := 0
	for _, cat := range catalog.Categories(d.products) {
		lines = append(lines, theme.Heading.Render(cat))
		for _, p := range catalog.InCategory(d.products, cat) {
			stars := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %.1f", p.Rating))
			line := "  " + theme.Body.Render(p.Name) + "  " + stars
			if idx == d.productCursor {
				line = theme.Selected.Render("▸ "+p.Name) + "  " + stars
				focus = len(lines)
			}
			lines = append(lines, line)
			idx++
		}
		lines = append(lines, "")
	}

	tips := []string{theme.Heading.Render("Dicas de Uso")}
	for _, t := range usageTips {
		tips = append(tips, "• "+t)
	}
	lines = append(lines, strings.Split(components.Card(strings.Join(tips, "\n"), cw), "\n")...)

	return strings.Join(lines, "\n"), focus
}
