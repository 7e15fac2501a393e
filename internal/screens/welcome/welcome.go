package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
	"github.com/glowpro/glowpro/internal/wizard"
)

const (
	tickInterval = 100 * time.Millisecond
	subtitleAt   = 400 * time.Millisecond
	buttonAt     = 600 * time.Millisecond
	badgeAt      = 800 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen introduces the app and starts the quiz on Enter.
type WelcomeScreen struct {
	elapsed   time.Duration
	tickCount int
	started   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Começar Quiz"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.start()
		}
		// Any other key skips the intro animation.
		w.elapsed = totalDur
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	return func() tea.Msg {
		return wizard.StartMsg{}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width, height)}

	if w.elapsed >= subtitleAt {
		heading := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Bem-vindo(a) ao GlowPro.AI")
		body := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-4, 60)).
			Align(lipgloss.Center).
			Render("Antes de começar, responda um pequeno quiz para criarmos " +
				"sua rotina personalizada de cuidados para o seu rosto.")
		sections = append(sections, "", heading, "", body)
	}

	if w.elapsed >= buttonAt {
		sections = append(sections, "", components.Button("Começar Quiz", true, 30))
	}

	if w.elapsed >= badgeAt {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		badge := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Análise com IA")
		sections = append(sections, "", badge)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	content = strings.TrimLeft(content, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
