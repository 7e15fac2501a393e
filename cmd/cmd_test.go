package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpro/glowpro/internal/quiz"
)

func TestParseAnswers(t *testing.T) {
	qs := quiz.DefaultQuestions()

	answers, err := parseAnswers(qs, []string{
		"skinType=Oleosa",
		"problems=Espinhas, Manchas",
		"age=31",
		"gender=Masculino",
	})
	require.NoError(t, err)
	assert.Equal(t, "Oleosa", answers.Text(quiz.IDSkinType))
	assert.Equal(t, []string{"Espinhas", "Manchas"}, answers.Choices(quiz.IDProblems))
	assert.Equal(t, "31", answers.Text(quiz.IDAge))
	assert.Equal(t, quiz.GenderMale, answers.Text(quiz.IDGender))
}

func TestParseAnswers_MultiSelectIsASet(t *testing.T) {
	answers, err := parseAnswers(quiz.DefaultQuestions(), []string{"problems=Espinhas,Manchas,Espinhas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Espinhas", "Manchas"}, answers.Choices(quiz.IDProblems))
}

func TestParseAnswers_Errors(t *testing.T) {
	qs := quiz.DefaultQuestions()

	tests := []struct {
		name string
		pair string
	}{
		{"missing separator", "skinType"},
		{"unknown id", "favoriteColor=azul"},
		{"unknown single option", "skinType=Perfeita"},
		{"unknown multi option", "problems=Espinhas,Rugas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnswers(qs, []string{tt.pair})
			assert.Error(t, err)
		})
	}
}

func parsedCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addConfigFlags(c)
	args = append(args, "--env-file="+filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GLOWPRO_ANALYSIS_DELAY", "5s")
	t.Setenv("GLOWPRO_EVENT_LOG", "/tmp/env.db")

	c := parsedCmd(t, "--analysis-delay=250ms")

	got, err := resolveConfig(c)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got.AnalysisDelay)
	assert.Equal(t, "/tmp/env.db", got.EventLog)
}

func TestResolveConfig_RejectsUnknownAnalyzer(t *testing.T) {
	t.Setenv("GLOWPRO_ANALYZER", "vision-pro")

	c := parsedCmd(t)

	_, err := resolveConfig(c)
	assert.Error(t, err)
}

func TestEventQueryOpts_RequiresLogFile(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg.EventLog = ""
	_, err := eventQueryOpts(eventsAnalysisCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--event-log")

	cfg.EventLog = filepath.Join(t.TempDir(), "events.db")
	opts, err := eventQueryOpts(eventsAnalysisCmd)
	require.NoError(t, err)
	assert.Equal(t, 20, opts.Limit)
}

func TestOpenEventLog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "events.db")
	st, err := openEventLog(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())
	assert.FileExists(t, path)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "Manhã", truncate("Manhã/1", 5))
}
