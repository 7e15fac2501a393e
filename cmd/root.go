package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glowpro/glowpro/internal/config"
	"github.com/glowpro/glowpro/internal/store"
)

// cfg is resolved once per invocation in PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "glowpro",
	Short: "AI skincare and facial analysis assistant",
	Long:  "GlowPro.AI — terminal skincare assistant: a short quiz, a facial analysis and a personalized daily routine.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cfg = resolved
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

func addConfigFlags(c *cobra.Command) {
	c.PersistentFlags().Duration("analysis-delay", 0, "Simulated analysis time (overrides GLOWPRO_ANALYSIS_DELAY)")
	c.PersistentFlags().String("event-log", "", "SQLite file for the session event log (overrides GLOWPRO_EVENT_LOG)")
	c.PersistentFlags().String("env-file", "", "Load environment variables from this file instead of ./.env")
}

// resolveConfig layers defaults, .env, environment variables and flags,
// in increasing priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var files []string
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		files = append(files, f)
	}
	if err := config.LoadDotEnv(files...); err != nil {
		return config.Config{}, err
	}

	c := config.ConfigFromEnv()
	if cmd.Flags().Changed("analysis-delay") {
		c.AnalysisDelay, _ = cmd.Flags().GetDuration("analysis-delay")
	}
	if cmd.Flags().Changed("event-log") {
		c.EventLog, _ = cmd.Flags().GetString("event-log")
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// openEventLog opens the configured event log, or a private in-memory one
// when no file is set.
func openEventLog(path string) (*store.Store, error) {
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create event log dir: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	return st, nil
}
