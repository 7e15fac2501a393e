package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
)

func TestFlow_HappyPath(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StageWelcome, f.Stage())

	require.NoError(t, f.Start())
	assert.Equal(t, StageQuiz, f.Stage())

	answers := quiz.Answers{quiz.IDSkinType: {Kind: quiz.KindSingle, Text: "Mista"}}
	require.NoError(t, f.CompleteQuiz(answers))
	assert.Equal(t, StagePhoto, f.Stage())
	assert.Equal(t, "Mista", f.Answers().Text(quiz.IDSkinType))

	photo := &analysis.Photo{Name: "rosto.jpg", Data: []byte{0xff}}
	result := &analysis.Result{FaceShape: "Oval"}
	require.NoError(t, f.CompletePhoto(photo, result))
	assert.Equal(t, StageApp, f.Stage())
	assert.Same(t, photo, f.Photo())
	assert.Same(t, result, f.Result())
}

func TestFlow_RejectsOutOfOrder(t *testing.T) {
	f := NewFlow()

	err := f.CompleteQuiz(quiz.Answers{})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	err = f.CompletePhoto(&analysis.Photo{}, &analysis.Result{})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StageWelcome, f.Stage())

	require.NoError(t, f.Start())
	assert.ErrorIs(t, f.Start(), ErrInvalidTransition, "start is one-shot")
}

func TestFlow_CompletePhotoRequiresData(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Start())
	require.NoError(t, f.CompleteQuiz(quiz.Answers{}))

	assert.Error(t, f.CompletePhoto(nil, &analysis.Result{}))
	assert.Equal(t, StagePhoto, f.Stage())
}

func TestFlow_AnswersAreCopied(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Start())
	answers := quiz.Answers{quiz.IDGender: {Kind: quiz.KindSingle, Text: "Feminino"}}
	require.NoError(t, f.CompleteQuiz(answers))

	answers[quiz.IDGender] = quiz.Answer{Kind: quiz.KindSingle, Text: "Masculino"}
	assert.Equal(t, "Feminino", f.Answers().Text(quiz.IDGender))
}

func TestTab_Cycle(t *testing.T) {
	assert.Equal(t, TabProgress, TabHome.Next())
	assert.Equal(t, TabHome, TabProfile.Next())
	assert.Equal(t, TabProfile, TabHome.Prev())
	for _, tab := range AllTabs() {
		assert.NotEmpty(t, tab.Label())
	}
}
