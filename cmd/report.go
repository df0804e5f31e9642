package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/classroom/internal/lesson"
	"github.com/abhisek/classroom/internal/report"
	"github.com/abhisek/classroom/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [session-id]",
	Short: "Print the study report for a lesson",
	Long:  "Re-renders the study report from stored session state. Defaults to the most recent session.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

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
		var rec *store.SessionRecord
		if len(args) == 1 {
			rec, err = s.SessionRepo().Get(ctx, args[0])
		} else {
			rec, err = s.SessionRepo().Latest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no stored session found")
		}

		st, err := lesson.StateFromRecord(rec)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		fmt.Print(report.Render(lesson.ReportInput{
			StudentName:   name,
			Subject:       st.Params.Subject,
			Topic:         st.Params.Topic,
			LearningStyle: st.Params.LearningStyle,
			Topics:        st.Topics,
			FeedbackLog:   st.FeedbackLog,
		}, time.Now()))
		return nil
	},
}

func init() {
	reportCmd.Flags().String("name", "David", "Student name shown on the report")
}
