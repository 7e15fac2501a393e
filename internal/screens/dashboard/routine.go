package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/routine"
	"github.com/glowpro/glowpro/internal/store"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

// routineRow is one cursor stop in the routine list: a period header
// (step empty) or a step of the expanded period.
type routineRow struct {
	period routine.PeriodID
	step   string
}

func (r routineRow) isHeader() bool { return r.step == "" }

// routineRows lists every period header, followed by the steps of the
// expanded period.
func (d *Dashboard) routineRows() []routineRow {
	var rows []routineRow
	for _, p := range d.routine.Periods() {
		rows = append(rows, routineRow{period: p.ID})
		if p.ID != d.expanded {
			continue
		}
		for _, s := range p.Steps {
			rows = append(rows, routineRow{period: p.ID, step: s.ID})
		}
	}
	return rows
}

// toggleExpanded opens period id, closing any other, or closes it when it
// is already open. The cursor stays on the period's header.
func (d *Dashboard) toggleExpanded(id routine.PeriodID) {
	if d.expanded == id {
		d.expanded = ""
	} else {
		d.expanded = id
	}
	for i, r := range d.routineRows() {
		if r.isHeader() && r.period == id {
			d.stepCursor = i
			return
		}
	}
}

func (d *Dashboard) updateRoutine(key string) tea.Cmd {
	if key == "g" {
		d.showGuide = !d.showGuide
		d.scroll[d.tab] = 0
		return nil
	}
	if d.showGuide {
		d.updateScroll(key)
		return nil
	}

	rows := d.routineRows()
	switch key {
	case "up", "k":
		if d.stepCursor > 0 {
			d.stepCursor--
		}
	case "down", "j":
		if d.stepCursor < len(rows)-1 {
			d.stepCursor++
		}
	case "space", " ", "enter":
		if d.stepCursor >= len(rows) {
			return nil
		}
		row := rows[d.stepCursor]
		if row.isHeader() {
			d.toggleExpanded(row.period)
			return nil
		}
		if d.routine.ToggleStep(row.period, row.step) {
			return d.record(store.ActivityStepToggled, fmt.Sprintf("%s/%s", row.period, row.step))
		}
	}
	return nil
}

// viewRoutine returns the checklist and the line index of the cursor.
func (d *Dashboard) viewRoutine(cw int) (string, int) {
	if d.showGuide {
		return d.viewGuide(cw), -1
	}

	lines := []string{
		theme.Title.Render("Sua Rotina Diária"),
		theme.Hint.Render("Enter abre ou fecha um período • g para o guia de definição facial"),
		"",
	}
	focus := -1
	i := 0
	for _, p := range d.routine.Periods() {
		open := p.ID == d.expanded
		chevron := "▸"
		if open {
			chevron = "▾"
		}
		pct := p.CompletionPercentage()
		heading := theme.Heading.Render(chevron+" "+p.Name) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", p.CompletedCount(), len(p.Steps)))
		if pct == 100 {
			heading += "  " + theme.Badge.Render("Completo")
		}
		prefix := "  "
		if i == d.stepCursor {
			prefix = theme.Selected.Render("▸ ")
			focus = len(lines)
		}
		lines = append(lines, prefix+heading, components.NewProgressBar("", pct, true, cw).View())
		i++

		if !open {
			lines = append(lines, "")
			continue
		}
		for _, s := range p.Steps {
			box := "[ ]"
			name := theme.Body.Render(s.Name)
			if s.Completed {
				box = theme.Positive.Render("[✓]")
				name = theme.Done.Render(s.Name)
			}
			prefix := "    "
			if i == d.stepCursor {
				prefix = "  " + theme.Selected.Render("▸ ")
				focus = len(lines)
			}
			lines = append(lines, prefix+box+" "+name)
			if i == d.stepCursor {
				lines = append(lines, "        "+theme.Hint.Render(s.Description))
			}
			i++
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), focus
}

func (d *Dashboard) viewGuide(cw int) string {
	sections := []string{
		theme.Title.Render("Definição Facial (Papada e Mandíbula)") + "\n" +
			theme.Hint.Render("Exercícios e técnicas especializadas"),
	}
	for _, g := range routine.FacialGuide() {
		lines := []string{theme.Heading.Render(g.Title)}
		for _, tip := range g.Tips {
			lines = append(lines,
				theme.Selected.Render("• "+tip.Title),
				"  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(tip.Body))
		}
		sections = append(sections, components.Card(strings.Join(lines, "\n"), cw))
	}
	sections = append(sections, theme.Hint.Render("Pressione g para voltar à rotina"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
