package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
	"github.com/glowpro/glowpro/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the facial analysis on quiz answers and print the result as JSON",
	Long: `Run the configured analyzer without the TUI.

Answers are given as id=value pairs; multi-select values are comma separated:

  glowpro analyze --answer skinType=Oleosa --answer problems=Espinhas,Manchas --answer gender=Masculino`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringArray("answer", nil, "Quiz answer as id=value (repeatable)")
	analyzeCmd.Flags().String("photo", "", "Photo file to analyze")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	pairs, _ := cmd.Flags().GetStringArray("answer")
	photoPath, _ := cmd.Flags().GetString("photo")

	answers, err := parseAnswers(quiz.DefaultQuestions(), pairs)
	if err != nil {
		return err
	}

	photo := &analysis.Photo{Name: "(sem foto)"}
	if photoPath != "" {
		if photo, err = analysis.LoadPhoto(photoPath); err != nil {
			return fmt.Errorf("load photo: %w", err)
		}
	}

	st, err := openEventLog(cfg.EventLog)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := store.WithSession(commandContext(cmd), uuid.NewString())
	result, err := newAnalyzer(cfg, st.EventRepo()).Analyze(ctx, photo, answers)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// parseAnswers turns id=value pairs into Answers, checking ids and options
// against questions.
func parseAnswers(questions []quiz.Question, pairs []string) (quiz.Answers, error) {
	byID := make(map[string]quiz.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	answers := quiz.Answers{}
	for _, pair := range pairs {
		id, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want id=value", pair)
		}
		q, known := byID[id]
		if !known {
			return nil, fmt.Errorf("unknown question id %q", id)
		}

		switch q.Kind {
		case quiz.KindText:
			answers[id] = quiz.Answer{Kind: quiz.KindText, Text: value}
		case quiz.KindSingle:
			if !q.HasOption(value) {
				return nil, fmt.Errorf("%s: %q is not one of %s", id, value, strings.Join(q.Options, ", "))
			}
			answers[id] = quiz.Answer{Kind: quiz.KindSingle, Text: value}
		case quiz.KindMulti:
			var choices []string
			for _, c := range strings.Split(value, ",") {
				c = strings.TrimSpace(c)
				if c == "" || slices.Contains(choices, c) {
					continue
				}
				if !q.HasOption(c) {
					return nil, fmt.Errorf("%s: %q is not one of %s", id, c, strings.Join(q.Options, ", "))
				}
				choices = append(choices, c)
			}
			answers[id] = quiz.Answer{Kind: quiz.KindMulti, Choices: choices}
		}
	}
	return answers, nil
}
