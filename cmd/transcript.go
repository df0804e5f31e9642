package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/classroom/internal/store"
	"github.com/spf13/cobra"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript [session-id]",
	Short: "Print the transcript of a lesson",
	Long:  "Prints every line spoken during a lesson in order. Defaults to the most recent session.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sessionID := ""
		if len(args) == 1 {
			sessionID = args[0]
		} else {
			rec, err := s.SessionRepo().Latest(ctx)
			if err != nil {
				return fmt.Errorf("load session: %w", err)
			}
			if rec == nil {
				return fmt.Errorf("no stored session found")
			}
			sessionID = rec.SessionID
		}

		entries, err := s.EventRepo().Transcript(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("query transcript: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No transcript recorded for this session.")
			return nil
		}

		fmt.Printf("Session %s\n", sessionID)
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range entries {
			ts := e.Timestamp.Local().Format("15:04:05")
			switch e.Kind {
			case "coordinator", "student", "human":
				fmt.Printf("%s  %s: %s\n", ts, e.Speaker, e.Text)
			default:
				fmt.Printf("%s  [%s] %s\n", ts, e.Kind, e.Text)
			}
		}
		return nil
	},
}
