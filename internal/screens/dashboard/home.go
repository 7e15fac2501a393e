package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

func (d *Dashboard) viewHome(cw int) string {
	r := d.session.Result
	if r == nil {
		return theme.Hint.Render("Nenhuma análise disponível.")
	}

	header := theme.Title.Render("Sua Análise Completa") + "\n" +
		theme.Hint.Render("Resultados baseados em IA")

	scores := fmt.Sprintf("%s %s     %s %s",
		theme.Score.Render(fmt.Sprintf("%d%%", r.Symmetry)), theme.Body.Render("Simetria"),
		theme.Score.Render(fmt.Sprintf("%d%%", r.AestheticPotential)), theme.Body.Render("Potencial"),
	)
	scoreBars := components.NewProgressBar("Simetria ", r.Symmetry, false, cw-4).View() + "\n" +
		components.NewProgressBar("Potencial", r.AestheticPotential, false, cw-4).View()

	shape := theme.Heading.Render("Formato do Rosto") + "\n" +
		theme.Selected.Render(r.FaceShape)

	strengths := theme.Heading.Render("Pontos Fortes") + "\n" +
		bulletList(r.Strengths, lipgloss.NewStyle().Foreground(theme.Success), "✓")
	improvements := theme.Heading.Render("Áreas para Melhoria") + "\n" +
		bulletList(r.Improvements, lipgloss.NewStyle().Foreground(theme.Accent), "•")

	rec := []string{
		theme.Heading.Render("Recomendações Personalizadas"),
		labeled("Corte de Cabelo Ideal", r.Recommendations.Haircut),
		labeled("Estilo de Sobrancelhas", r.Recommendations.Eyebrows),
	}
	if r.Recommendations.HasBeard() {
		rec = append(rec, labeled("Estilo de Barba", r.Recommendations.Beard))
	}
	rec = append(rec, labeled("Iluminação para Selfies", r.Recommendations.Lighting))

	skin := strings.Join([]string{
		theme.Heading.Render("Métricas da Pele"),
		components.NewProgressBar("Hidratação", r.SkinHydration, true, cw-4).View(),
		components.NewProgressBar("Poros     ", r.PoresScore, true, cw-4).View(),
		components.NewProgressBar("Textura   ", r.TextureScore, true, cw-4).View(),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		components.HighlightCard(scores+"\n\n"+scoreBars, cw),
		components.Card(shape, cw),
		components.Card(strengths, cw),
		components.Card(improvements, cw),
		components.Card(strings.Join(rec, "\n"), cw),
		components.Card(skin, cw),
	)
}

func bulletList(items []string, style lipgloss.Style, bullet string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = style.Render(bullet) + " " + theme.Body.Render(it)
	}
	return strings.Join(lines, "\n")
}

func labeled(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+": ") + theme.Body.Render(value)
}
