package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glowpro/glowpro/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect a session event log written with --event-log",
}

var eventsAnalysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "List recent analysis requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := eventQueryOpts(cmd)
		if err != nil {
			return err
		}
		s, err := openEventLog(cfg.EventLog)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAnalysisEvents(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No analysis events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-8s  %-10s  %-24s  %-8s  %-7s  %s\n",
			"Seq", "Timestamp", "Session", "Analyzer", "Photo", "Bytes", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			fmt.Printf("%-6d  %-19s  %-8s  %-10s  %-24s  %-8d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.SessionID, 8),
				e.Analyzer,
				truncate(e.PhotoName, 24),
				e.PhotoBytes,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var eventsActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "List recent session activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := eventQueryOpts(cmd)
		if err != nil {
			return err
		}
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openEventLog(cfg.EventLog)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryActivity(context.Background(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		shown := 0
		for _, e := range events {
			if kind != "" && string(e.Kind) != kind {
				continue
			}
			if shown == 0 {
				fmt.Printf("%-6s  %-19s  %-8s  %-18s  %s\n", "Seq", "Timestamp", "Session", "Kind", "Detail")
				fmt.Println(strings.Repeat("─", 100))
			}
			fmt.Printf("%-6d  %-19s  %-8s  %-18s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.SessionID, 8),
				e.Kind,
				truncate(e.Detail, 40),
			)
			shown++
		}
		if shown == 0 {
			fmt.Println("No activity events found.")
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{eventsAnalysisCmd, eventsActivityCmd} {
		c.Flags().Int("limit", 20, "Maximum number of events to show")
		c.Flags().String("session", "", "Only show events of this session id")
		c.Flags().Int64("after", 0, "Only show events with a sequence above this")
		eventsCmd.AddCommand(c)
	}
	eventsActivityCmd.Flags().String("kind", "", "Filter by kind (session-started, quiz-completed, step-toggled, snapshot-appended)")
}

// eventQueryOpts reads the shared filter flags. Listing needs a log file;
// the in-memory default would always be empty.
func eventQueryOpts(cmd *cobra.Command) (store.QueryOpts, error) {
	if cfg.EventLog == "" {
		return store.QueryOpts{}, fmt.Errorf("no event log: pass --event-log or set GLOWPRO_EVENT_LOG")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	session, _ := cmd.Flags().GetString("session")
	after, _ := cmd.Flags().GetInt64("after")
	return store.QueryOpts{Limit: limit, SessionID: session, After: after}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
