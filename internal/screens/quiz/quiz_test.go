package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/wizard"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "skin", Prompt: "Tipo de pele?", Kind: quiz.KindSingle, Options: []string{"Oleosa", "Seca"}},
		{ID: "problems", Prompt: "Problemas?", Kind: quiz.KindMulti, Options: []string{"Acne", "Manchas", "Poros"}},
		{ID: "products", Prompt: "Produtos?", Kind: quiz.KindText},
	}
}

func press(s *QuizScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace}
)

func typeText(s *QuizScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestQuizScreen_EnterWithoutSelectionIsRejected(t *testing.T) {
	s := New(testQuestions())

	cmd := press(s, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.Engine().Index())
	assert.Contains(t, s.View(100, 30), "Selecione uma opção")
}

func TestQuizScreen_FullRun(t *testing.T) {
	s := New(testQuestions())

	// Single-select: pick "Seca".
	press(s, keyDown, keySpace, keyEnter)
	require.Equal(t, 1, s.Engine().Index())

	// Multi-select: toggle Acne and Poros.
	press(s, keySpace, keyDown, keyDown, keySpace, keyEnter)
	require.Equal(t, 2, s.Engine().Index())

	typeText(s, "Protetor")
	cmd := press(s, keyEnter)
	require.NotNil(t, cmd)

	msg, ok := cmd().(wizard.QuizCompletedMsg)
	require.True(t, ok, "expected QuizCompletedMsg")
	assert.Equal(t, "Seca", msg.Answers.Text("skin"))
	assert.Equal(t, []string{"Acne", "Poros"}, msg.Answers.Choices("problems"))
	assert.Equal(t, "Protetor", msg.Answers.Text("products"))

	// Input after completion is ignored.
	assert.Nil(t, press(s, keyEnter))
}

func TestQuizScreen_EmptyFreeTextAdvances(t *testing.T) {
	s := New([]quiz.Question{{ID: "age", Prompt: "Idade?", Kind: quiz.KindText, Optional: true}})

	cmd := press(s, keyEnter)
	require.NotNil(t, cmd)
	msg := cmd().(wizard.QuizCompletedMsg)
	answer, ok := msg.Answers["age"]
	require.True(t, ok)
	assert.Equal(t, "", answer.Text)
}

func TestQuizScreen_PastedTextIsCommitted(t *testing.T) {
	s := New([]quiz.Question{{ID: "age", Prompt: "Idade?", Kind: quiz.KindText}})

	s.Update(tea.PasteMsg{Content: "27"})
	assert.Equal(t, "27", s.Engine().Answers().Text("age"))

	cmd := press(s, keyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(wizard.QuizCompletedMsg)
	require.True(t, ok, "expected QuizCompletedMsg")
	assert.Equal(t, "27", msg.Answers.Text("age"))
}

func TestQuizScreen_EscRetreatsAndClearsBuffer(t *testing.T) {
	s := New(testQuestions())
	press(s, keySpace, keyEnter)
	require.Equal(t, 1, s.Engine().Index())

	press(s, keySpace, keyEsc)
	assert.Equal(t, 0, s.Engine().Index())
	assert.Empty(t, s.Engine().Selection())
	assert.Equal(t, "Oleosa", s.Engine().Answers().Text("skin"), "committed answer is kept")

	// Esc at the first question is a no-op.
	press(s, keyEsc)
	assert.Equal(t, 0, s.Engine().Index())
}

func TestQuizScreen_ViewShowsCounterAndButton(t *testing.T) {
	s := New(testQuestions())
	view := s.View(100, 30)
	assert.Contains(t, view, "Pergunta 1 de 3")
	assert.Contains(t, view, "Tipo de pele?")
	assert.Contains(t, view, "Próxima")

	press(s, keySpace, keyEnter, keySpace, keyEnter)
	assert.True(t, strings.Contains(s.View(100, 30), "Finalizar"))
	assert.Equal(t, "100%", s.Status())
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(testQuestions())
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "Esc", h.Key, "no back hint on first question")
	}
}
