package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/ui/components"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/ui/theme"
	"github.com/glowpro/glowpro/internal/wizard"
)

// QuizScreen walks through the skin questionnaire one question at a time.
type QuizScreen struct {
	engine  *quiz.Engine
	options components.OptionList
	input   components.TextInput
	nudge   string
	done    bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a QuizScreen over the given questions.
func New(questions []quiz.Question) *QuizScreen {
	s := &QuizScreen{engine: quiz.NewEngine(questions)}
	s.resetWidgets()
	return s
}

// Engine exposes the underlying quiz state for rendering and tests.
func (s *QuizScreen) Engine() *quiz.Engine {
	return s.engine
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%d%%", s.engine.Progress())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.engine.Current().Kind == quiz.KindText {
		hints = append(hints, layout.KeyHint{Key: "Digite", Description: "Resposta"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navegar"},
			layout.KeyHint{Key: "Espaço", Description: "Selecionar"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: s.advanceLabel()})
	if s.engine.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Voltar"})
	}
	return hints
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

// resetWidgets rebuilds the option list and text input for the current
// question.
func (s *QuizScreen) resetWidgets() {
	q := s.engine.Current()
	s.options = components.NewOptionList(q.Options, q.Kind == quiz.KindMulti)
	s.input = components.NewTextInput("Digite sua resposta...", 200)
	s.nudge = ""
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		// Pastes and cursor blinks go to the input.
		if s.engine.Current().Kind == quiz.KindText {
			return s, s.updateInput(msg)
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.advance()
	case "esc":
		if s.engine.Retreat() {
			s.resetWidgets()
		}
		return s, nil
	}

	if s.engine.Current().Kind == quiz.KindText {
		return s, s.updateInput(msg)
	}

	switch kmsg.String() {
	case "space", " ":
		s.engine.SelectOption(s.options.Current())
		s.nudge = ""
	default:
		s.options = s.options.Update(msg)
	}
	return s, nil
}

// updateInput feeds msg to the text input and stores whatever it now holds
// as the current answer.
func (s *QuizScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.engine.SetText(s.input.Value())
	return cmd
}

func (s *QuizScreen) advance() tea.Cmd {
	outcome, answers := s.engine.Advance()
	switch outcome {
	case quiz.Rejected:
		s.nudge = "Selecione uma opção para continuar"
		return nil
	case quiz.Completed:
		s.done = true
		return func() tea.Msg {
			return wizard.QuizCompletedMsg{Answers: answers}
		}
	default:
		s.resetWidgets()
		return nil
	}
}

func (s *QuizScreen) advanceLabel() string {
	if s.engine.IsLast() {
		return "Finalizar"
	}
	return "Próxima"
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.engine.Current()

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pergunta %d de %d", s.engine.Index()+1, s.engine.Len()))
	bar := components.NewProgressBar("", s.engine.Progress(), true, cw).View()

	prompt := theme.Heading.Width(cw).Render(q.Prompt)

	var body string
	if q.Kind == quiz.KindText {
		body = s.input.View()
	} else {
		body = s.options.View(s.engine.Selected)
	}

	sections := []string{counter, bar, "", prompt, "", strings.TrimRight(body, "\n"), ""}
	if s.nudge != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.nudge), "")
	}
	sections = append(sections, components.Button(s.advanceLabel(), s.engine.CanAdvance(), 24))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
