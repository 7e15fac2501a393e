package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/app"
	"github.com/glowpro/glowpro/internal/config"
	"github.com/glowpro/glowpro/internal/store"
)

// runApp opens the event log, builds the analyzer and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openEventLog(cfg.EventLog)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := store.WithSession(commandContext(cmd), uuid.NewString())
	events := st.EventRepo()

	return app.Run(ctx, app.Options{
		Analyzer: newAnalyzer(cfg, events),
		Events:   events,
	})
}

// newAnalyzer builds the analyzer chain: results are validated, and every
// call, including rejected ones, lands in the event log.
func newAnalyzer(c config.Config, events store.EventRepo) analysis.FaceAnalyzer {
	var a analysis.FaceAnalyzer = analysis.NewMockAnalyzer(c.AnalysisDelay)
	a = analysis.WithValidation(a)
	return analysis.WithLogging(a, events)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
