package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

func (d *Dashboard) viewProfile(cw int) string {
	a := d.session.Answers

	header := theme.Title.Render("Meu Perfil") + "\n" +
		theme.Hint.Render("Gerencie suas informações")

	personal := []string{theme.Heading.Render("Informações Pessoais")}
	if d.session.Photo != nil {
		personal = append(personal, labeled("Foto", d.session.Photo.Name))
	}
	if age := a.Text(quiz.IDAge); age != "" {
		personal = append(personal, labeled("Idade", age+" anos"))
	}
	if g := a.Text(quiz.IDGender); g != "" {
		personal = append(personal, labeled("Gênero", g))
	}

	skin := []string{
		theme.Heading.Render("Perfil de Pele"),
		labeled("Tipo de Pele", orDash(a.Text(quiz.IDSkinType))),
		labeled("Objetivo", orDash(a.Text(quiz.IDMainGoal))),
		labeled("Água/dia", orDash(a.Text(quiz.IDWaterIntake))),
		labeled("Sono", orDash(a.Text(quiz.IDSleepHours))),
	}

	sections := []string{
		header,
		"",
		components.Card(strings.Join(personal, "\n"), cw),
		components.Card(strings.Join(skin, "\n"), cw),
	}

	if problems := a.Choices(quiz.IDProblems); len(problems) > 0 {
		chips := make([]string, len(problems))
		for i, p := range problems {
			chips[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Render("● " + p)
		}
		sections = append(sections, components.Card(
			theme.Heading.Render("Problemas Atuais")+"\n"+strings.Join(chips, "  "), cw))
	}

	sections = append(sections,
		components.Card(theme.Heading.Render("Configurações")+"\n"+strings.TrimRight(d.profileMenu.View(), "\n"), cw),
		theme.Subtitle.Width(cw).Render("GlowPro.AI v1.0.0\nAnálise facial com inteligência artificial"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
