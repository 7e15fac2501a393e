package photo

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
	"github.com/glowpro/glowpro/internal/wizard"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg struct{}

// analysisDoneMsg carries the analyzer outcome back to the event loop.
type analysisDoneMsg struct {
	result *analysis.Result
	err    error
}

// PhotoScreen collects a face photo and runs the analysis on it.
type PhotoScreen struct {
	ctx      context.Context
	analyzer analysis.FaceAnalyzer
	answers  quiz.Answers
	load     func(path string) (*analysis.Photo, error)

	input     components.TextInput
	photo     *analysis.Photo
	analyzing bool
	frame     int
	err       error
	done      bool
}

var _ screen.Screen = (*PhotoScreen)(nil)

// New creates a PhotoScreen. The answers are passed to the analyzer
// untouched.
func New(ctx context.Context, analyzer analysis.FaceAnalyzer, answers quiz.Answers) *PhotoScreen {
	return &PhotoScreen{
		ctx:      ctx,
		analyzer: analyzer,
		answers:  answers,
		load:     analysis.LoadPhoto,
		input:    components.NewTextInput("caminho/para/sua-foto.jpg", 0),
	}
}

func (s *PhotoScreen) Title() string {
	return "Análise Facial com IA"
}

func (s *PhotoScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.analyzing:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Sair"}}
	case s.photo == nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Carregar foto"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Analisar Rosto"},
			{Key: "Esc", Description: "Trocar foto"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
}

func (s *PhotoScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PhotoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.analyzing {
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case analysisDoneMsg:
		s.analyzing = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.done = true
		photo, result := s.photo, msg.result
		return s, func() tea.Msg {
			return wizard.PhotoAnalyzedMsg{Photo: photo, Result: result}
		}

	case tea.KeyPressMsg:
		if s.analyzing {
			return s, nil
		}
		return s.handleKey(msg)
	}

	if s.photo == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PhotoScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if s.photo == nil {
			s.loadPhoto()
			return s, nil
		}
		return s, s.startAnalysis()
	case "esc":
		if s.photo != nil {
			s.photo = nil
			s.err = nil
			s.input.SetValue("")
			return s, s.input.Init()
		}
		return s, nil
	}

	if s.photo == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PhotoScreen) loadPhoto() {
	path := strings.TrimSpace(s.input.Value())
	if path == "" {
		s.input.SetError("Informe o caminho de uma foto do seu rosto")
		return
	}
	p, err := s.load(path)
	if err != nil {
		s.input.SetError(fmt.Sprintf("Não foi possível abrir a foto: %v", err))
		return
	}
	s.photo = p
}

func (s *PhotoScreen) startAnalysis() tea.Cmd {
	s.analyzing = true
	s.err = nil
	s.frame = 0

	ctx, analyzer, photo, answers := s.ctx, s.analyzer, s.photo, s.answers
	run := func() tea.Msg {
		result, err := analyzer.Analyze(ctx, photo, answers)
		return analysisDoneMsg{result: result, err: err}
	}
	return tea.Batch(run, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (s *PhotoScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Heading.Render("Análise Facial com IA")
	intro := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).
		Render("Agora precisamos de uma foto do seu rosto para gerar sua análise completa.")

	sections := []string{title, "", intro, ""}

	if s.photo == nil {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("Caminho da foto (JPG, PNG ou WEBP):"),
			s.input.View(),
		)
	} else {
		info := fmt.Sprintf("📷 %s  (%s)", s.photo.Name, humanSize(s.photo.Size()))
		sections = append(sections, components.HighlightCard(info, cw))
	}
	sections = append(sections, "")

	switch {
	case s.analyzing:
		spin := spinnerFrames[s.frame%len(spinnerFrames)]
		sections = append(sections, theme.Selected.Render(spin+" Analisando com IA..."))
	case s.err != nil:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Error).Width(cw).
				Render("Não foi possível concluir a análise: "+s.err.Error()),
			theme.Hint.Render("Pressione Enter para tentar novamente. Suas respostas foram mantidas."),
		)
	case s.photo != nil:
		sections = append(sections, components.Button("Analisar Rosto", true, 30))
	}

	sections = append(sections, "", components.Card(tips(), cw))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tips() string {
	lines := []string{
		theme.Heading.Render("Dicas para melhor análise:"),
		"• Use boa iluminação natural",
		"• Mantenha o rosto centralizado",
		"• Evite filtros ou maquiagem pesada",
		"• Mantenha expressão neutra",
	}
	return strings.Join(lines, "\n")
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
