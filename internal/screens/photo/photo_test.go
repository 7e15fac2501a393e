package photo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/wizard"
)

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

// flakyAnalyzer fails the first n calls.
type flakyAnalyzer struct {
	failures int
	calls    int
}

func (f *flakyAnalyzer) Analyze(_ context.Context, _ *analysis.Photo, answers quiz.Answers) (*analysis.Result, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, &analysis.ErrServiceUnavailable{Err: errors.New("offline")}
	}
	return analysis.MockResult(answers), nil
}

func (f *flakyAnalyzer) Name() string { return "flaky" }

func writePhoto(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosto.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff}, 0o644))
	return path
}

// runCmd executes cmd, descending into batches, and feeds every message
// except spinner ticks back into the screen. It returns the messages seen.
func runCmd(s *PhotoScreen, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(s, c)...)
		}
		return out
	}
	if _, ok := msg.(spinnerTickMsg); ok {
		return nil
	}
	_, next := s.Update(msg)
	return append([]tea.Msg{msg}, runCmd(s, next)...)
}

func loaded(t *testing.T, a analysis.FaceAnalyzer, answers quiz.Answers) *PhotoScreen {
	t.Helper()
	s := New(context.Background(), a, answers)
	s.input.SetValue(writePhoto(t))
	s.Update(keyEnter)
	require.NotNil(t, s.photo, "photo should be loaded")
	return s
}

func TestPhotoScreen_EmptyPathShowsError(t *testing.T) {
	s := New(context.Background(), analysis.NewMockAnalyzer(0), nil)
	s.Update(keyEnter)
	assert.Nil(t, s.photo)
	assert.Contains(t, s.View(100, 40), "Informe o caminho")
}

func TestPhotoScreen_MissingFileShowsError(t *testing.T) {
	s := New(context.Background(), analysis.NewMockAnalyzer(0), nil)
	s.input.SetValue(filepath.Join(t.TempDir(), "nope.jpg"))
	s.Update(keyEnter)
	assert.Nil(t, s.photo)
	assert.Contains(t, s.View(100, 40), "Não foi possível abrir a foto")
}

func TestPhotoScreen_AnalyzeEmitsResult(t *testing.T) {
	answers := quiz.Answers{quiz.IDGender: {Kind: quiz.KindSingle, Text: quiz.GenderMale}}
	s := loaded(t, analysis.NewMockAnalyzer(0), answers)
	assert.Equal(t, "rosto.jpg", s.photo.Name)

	_, cmd := s.Update(keyEnter)
	require.True(t, s.analyzing)
	assert.Contains(t, s.View(100, 40), "Analisando com IA")

	var done *wizard.PhotoAnalyzedMsg
	for _, m := range runCmd(s, cmd) {
		if pm, ok := m.(wizard.PhotoAnalyzedMsg); ok {
			done = &pm
		}
	}
	require.NotNil(t, done)
	assert.Equal(t, "rosto.jpg", done.Photo.Name)
	assert.Equal(t, "Barba curta e bem aparada", done.Result.Recommendations.Beard)
}

func TestPhotoScreen_ErrorThenRetry(t *testing.T) {
	a := &flakyAnalyzer{failures: 1}
	answers := quiz.Answers{quiz.IDSkinType: {Kind: quiz.KindSingle, Text: "Seca"}}
	s := loaded(t, a, answers)

	_, cmd := s.Update(keyEnter)
	runCmd(s, cmd)
	require.Error(t, s.err)
	assert.False(t, s.analyzing)
	assert.Contains(t, s.View(100, 40), "tentar novamente")
	assert.Equal(t, "Seca", s.answers.Text(quiz.IDSkinType), "answers survive a failure")

	_, cmd = s.Update(keyEnter)
	msgs := runCmd(s, cmd)
	assert.Equal(t, 2, a.calls)

	var got bool
	for _, m := range msgs {
		_, ok := m.(wizard.PhotoAnalyzedMsg)
		got = got || ok
	}
	assert.True(t, got, "retry should complete the analysis")
}

func TestPhotoScreen_KeysIgnoredWhileAnalyzing(t *testing.T) {
	s := loaded(t, analysis.NewMockAnalyzer(0), nil)
	s.Update(keyEnter)
	require.True(t, s.analyzing)

	_, cmd := s.Update(keyEnter)
	assert.Nil(t, cmd)
	_, cmd = s.Update(keyEsc)
	assert.Nil(t, cmd)
	assert.NotNil(t, s.photo)
}

func TestPhotoScreen_EscChangesPhoto(t *testing.T) {
	s := loaded(t, analysis.NewMockAnalyzer(0), nil)
	s.Update(keyEsc)
	assert.Nil(t, s.photo)
	assert.Equal(t, "", s.input.Value())
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "2.0 KB", humanSize(2048))
	assert.Equal(t, "1.5 MB", humanSize(3<<19))
}
