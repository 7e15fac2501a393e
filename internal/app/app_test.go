package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/router"
	"github.com/glowpro/glowpro/internal/screens/dashboard"
	"github.com/glowpro/glowpro/internal/screens/photo"
	quizscreen "github.com/glowpro/glowpro/internal/screens/quiz"
	"github.com/glowpro/glowpro/internal/screens/welcome"
	"github.com/glowpro/glowpro/internal/store"
	"github.com/glowpro/glowpro/internal/wizard"
)

func newTestModel(t *testing.T) (AppModel, store.EventRepo) {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	repo := s.EventRepo()
	ctx := store.WithSession(context.Background(), "sess-app")
	m := newAppModel(ctx, Options{
		Analyzer: analysis.NewMockAnalyzer(0),
		Events:   repo,
	})
	return m, repo
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

// drain runs cmd and any batched commands, discarding their messages.
func drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}

func sampleAnswers() quiz.Answers {
	return quiz.Answers{
		quiz.IDSkinType: {Kind: quiz.KindSingle, Text: "Mista"},
		quiz.IDGender:   {Kind: quiz.KindSingle, Text: quiz.GenderMale},
	}
}

func TestAppModel_FullFlow(t *testing.T) {
	m, repo := newTestModel(t)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m, _ = update(t, m, wizard.StartMsg{})
	assert.Equal(t, wizard.StageQuiz, m.flow.Stage())
	assert.IsType(t, &quizscreen.QuizScreen{}, m.router.Active())

	m, cmd := update(t, m, wizard.QuizCompletedMsg{Answers: sampleAnswers()})
	drain(cmd)
	assert.Equal(t, wizard.StagePhoto, m.flow.Stage())
	assert.IsType(t, &photo.PhotoScreen{}, m.router.Active())

	ph := &analysis.Photo{Name: "eu.png", Data: []byte("png")}
	m, _ = update(t, m, wizard.PhotoAnalyzedMsg{Photo: ph, Result: analysis.MockResult(sampleAnswers())})
	assert.Equal(t, wizard.StageApp, m.flow.Stage())
	require.IsType(t, &dashboard.Dashboard{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())

	events, err := repo.QueryActivity(context.Background(), store.QueryOpts{SessionID: "sess-app"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.ActivityQuizCompleted, events[0].Kind)
	assert.Contains(t, events[0].Detail, "Mista")
}

func TestAppModel_InitRecordsSessionStart(t *testing.T) {
	m, repo := newTestModel(t)
	drain(m.Init())

	events, err := repo.QueryActivity(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.ActivitySessionStarted, events[0].Kind)
	assert.Equal(t, "mock", events[0].Detail)
}

func TestAppModel_OutOfOrderMessagesIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, wizard.QuizCompletedMsg{Answers: sampleAnswers()})
	assert.Equal(t, wizard.StageWelcome, m.flow.Stage())
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m, _ = update(t, m, wizard.StartMsg{})
	quizScreen := m.router.Active()

	m, _ = update(t, m, wizard.StartMsg{})
	assert.Same(t, quizScreen, m.router.Active())

	m, _ = update(t, m, wizard.PhotoAnalyzedMsg{})
	assert.Equal(t, wizard.StageQuiz, m.flow.Stage())
}

func TestAppModel_NilEventsStillWorks(t *testing.T) {
	m := newAppModel(context.Background(), Options{Analyzer: analysis.NewMockAnalyzer(0)})
	assert.Nil(t, m.record(store.ActivitySessionStarted, ""))

	m, _ = update(t, m, wizard.StartMsg{})
	m, cmd := update(t, m, wizard.QuizCompletedMsg{Answers: sampleAnswers()})
	drain(cmd)
	assert.Equal(t, wizard.StagePhoto, m.flow.Stage())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_EscPopsPushedScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m.router.Push(welcome.New())
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopScreenMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_EscForwardedAtRoot(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, wizard.StartMsg{})
	qs := m.router.Active().(*quizscreen.QuizScreen)

	qs.Engine().SelectOption("Oleosa")
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 1, qs.Engine().Index())

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 0, qs.Engine().Index())
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_Render(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, wizard.StartMsg{})

	out := ansi.Strip(m.render())
	assert.Contains(t, out, "GlowPro.AI")
	assert.Contains(t, out, "Quiz")
	assert.Contains(t, out, "10%")
}

func TestAppModel_RenderTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	out := ansi.Strip(m.render())
	assert.Contains(t, out, "Terminal muito pequeno!")
	assert.NotContains(t, out, "GlowPro")
}
