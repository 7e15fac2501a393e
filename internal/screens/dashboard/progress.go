package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/progress"
	"github.com/glowpro/glowpro/internal/store"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/theme"
)

func (d *Dashboard) updateProgress(key string) tea.Cmd {
	switch key {
	case "a":
		d.progress.Append(progress.SimulatedFollowUp(d.photoRef(), d.now()))
		return d.record(store.ActivitySnapshotAppended, strconv.Itoa(d.progress.Len()))
	default:
		d.updateScroll(key)
	}
	return nil
}

func (d *Dashboard) viewProgress(cw int) string {
	header := theme.Title.Render("Seu Progresso") + "\n" +
		theme.Hint.Render("Acompanhe sua evolução ao longo do tempo")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		components.Card(d.viewTimeline(), cw),
		components.Card(d.viewComparison(cw), cw),
		components.Card(d.viewTrend(cw), cw),
		components.HighlightCard(d.viewInsights(), cw),
	)
}

func (d *Dashboard) viewTimeline() string {
	snaps := d.progress.Snapshots()
	lines := []string{theme.Heading.Render(fmt.Sprintf("Linha do Tempo (%d fotos)", len(snaps)))}
	for i, s := range snaps {
		ref := s.PhotoRef
		if ref == "" {
			ref = "foto"
		}
		lines = append(lines, fmt.Sprintf("%d. %s  %s",
			i+1, s.Date.Format("02/01/2006"), lipgloss.NewStyle().Foreground(theme.TextDim).Render(ref)))
	}
	lines = append(lines, theme.Hint.Render("Pressione a para adicionar uma nova foto"))
	return strings.Join(lines, "\n")
}

func (d *Dashboard) viewComparison(cw int) string {
	latest, ok := d.progress.Latest()
	if !ok {
		return theme.Hint.Render("Sem fotos ainda.")
	}

	lines := []string{theme.Heading.Render("Comparação")}
	for _, m := range progress.AllMetrics() {
		v, _ := latest.Metrics.Value(m)
		bar := components.NewProgressBar(fmt.Sprintf("%-22s", m.Label()), v, true, cw-14).View()
		lines = append(lines, bar+"  "+renderDelta(d.progress, m))
	}
	return strings.Join(lines, "\n")
}

func renderDelta(t *progress.Tracker, m progress.Metric) string {
	delta, ok := t.Delta(m)
	if !ok {
		return theme.Hint.Render("—")
	}
	text := fmt.Sprintf("%s%d", delta.Direction.Arrow(), delta.Magnitude)
	switch delta.Direction {
	case progress.Increase:
		return theme.Positive.Render(text)
	case progress.Decrease:
		return theme.Negative.Render(text)
	default:
		return theme.Hint.Render(text)
	}
}

// viewTrend renders one bar per snapshot for the average score.
func (d *Dashboard) viewTrend(cw int) string {
	lines := []string{theme.Heading.Render("Evolução Geral")}
	for i, s := range d.progress.Snapshots() {
		avg := progress.AverageScore(s)
		label := fmt.Sprintf("Foto %d", i+1)
		bar := components.NewProgressBar(label, int(avg+0.5), false, cw-14).View()
		lines = append(lines, bar+fmt.Sprintf("  %.1f", avg))
	}
	return strings.Join(lines, "\n")
}

func (d *Dashboard) viewInsights() string {
	lines := []string{theme.Heading.Render("Insights da IA")}
	for _, in := range progress.Insights(d.progress) {
		head := theme.Positive.Render(in.Headline)
		if !in.Positive {
			head = theme.Negative.Render(in.Headline)
		}
		lines = append(lines, head, theme.Body.Render(in.Body))
	}
	return strings.Join(lines, "\n")
}
