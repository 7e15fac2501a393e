package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/router"
	"github.com/glowpro/glowpro/internal/screen"
	"github.com/glowpro/glowpro/internal/screens/dashboard"
	"github.com/glowpro/glowpro/internal/screens/photo"
	quizscreen "github.com/glowpro/glowpro/internal/screens/quiz"
	"github.com/glowpro/glowpro/internal/screens/welcome"
	"github.com/glowpro/glowpro/internal/store"
	"github.com/glowpro/glowpro/internal/ui/layout"
	"github.com/glowpro/glowpro/internal/wizard"
)

// Options holds the dependencies for the app.
type Options struct {
	Analyzer analysis.FaceAnalyzer

	// Events receives the session activity log. Nil disables recording.
	Events store.EventRepo

	// Questions overrides the quiz. Nil uses quiz.DefaultQuestions().
	Questions []quiz.Question
}

// AppModel is the root Bubble Tea model. It owns the onboarding flow and
// swaps the active screen whenever a stage completes.
type AppModel struct {
	ctx    context.Context
	opts   Options
	flow   *wizard.Flow
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel at the welcome screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Analyzer == nil {
		opts.Analyzer = analysis.NewMockAnalyzer(analysis.DefaultDelay)
	}
	if opts.Questions == nil {
		opts.Questions = quiz.DefaultQuestions()
	}
	return AppModel{
		ctx:    ctx,
		opts:   opts,
		flow:   wizard.NewFlow(),
		router: router.New(welcome.New()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.record(store.ActivitySessionStarted, m.opts.Analyzer.Name()),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case wizard.StartMsg:
		if err := m.flow.Start(); err != nil {
			return m, nil
		}
		return m, m.router.Reset(quizscreen.New(m.opts.Questions))

	case wizard.QuizCompletedMsg:
		if err := m.flow.CompleteQuiz(msg.Answers); err != nil {
			return m, nil
		}
		next := photo.New(m.ctx, m.opts.Analyzer, m.flow.Answers())
		return m, tea.Batch(
			m.router.Reset(next),
			m.record(store.ActivityQuizCompleted, encodeAnswers(msg.Answers)),
		)

	case wizard.PhotoAnalyzedMsg:
		if err := m.flow.CompletePhoto(msg.Photo, msg.Result); err != nil {
			return m, nil
		}
		next := dashboard.New(m.ctx, m.opts.Events, dashboard.Session{
			Answers: m.flow.Answers(),
			Photo:   m.flow.Photo(),
			Result:  m.flow.Result(),
		})
		return m, m.router.Reset(next)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// record returns a command that appends an activity event, or nil when no
// event log is configured.
func (m AppModel) record(kind store.ActivityKind, detail string) tea.Cmd {
	if m.opts.Events == nil {
		return nil
	}
	ctx, repo := m.ctx, m.opts.Events
	return func() tea.Msg {
		store.RecordActivity(ctx, repo, kind, detail)
		return nil
	}
}

func encodeAnswers(a quiz.Answers) string {
	b, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(b)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Enter", Description: "Continuar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
