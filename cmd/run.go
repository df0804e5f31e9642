package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/abhisek/classroom/internal/app"
	"github.com/abhisek/classroom/internal/lesson"
	"github.com/abhisek/classroom/internal/llm"
	"github.com/abhisek/classroom/internal/participant"
	"github.com/abhisek/classroom/internal/report"
	"github.com/abhisek/classroom/internal/screens/classroom"
	"github.com/abhisek/classroom/internal/store"
	"github.com/spf13/cobra"
)

// lessonOptions collects everything the run command can override.
type lessonOptions struct {
	params lesson.Params
	name   string
	resume bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts lessonOptions
		opts.params.Subject, _ = cmd.Flags().GetString("subject")
		opts.params.Topic, _ = cmd.Flags().GetString("topic")
		opts.params.LearningStyle, _ = cmd.Flags().GetString("style")
		opts.params.TopicCount, _ = cmd.Flags().GetInt("topics")
		opts.params.QuestionCount, _ = cmd.Flags().GetInt("questions")
		opts.name, _ = cmd.Flags().GetString("name")
		opts.resume, _ = cmd.Flags().GetBool("resume")
		return runLesson(cmd, opts)
	},
}

func init() {
	runCmd.Flags().String("subject", "", "Class subject")
	runCmd.Flags().String("topic", "", "Lesson topic within the subject")
	runCmd.Flags().String("style", "", "Preferred learning style")
	runCmd.Flags().Int("topics", 0, "Number of focal points")
	runCmd.Flags().Int("questions", 0, "Questions per quiz")
	runCmd.Flags().String("name", "", "Your name in the classroom")
	runCmd.Flags().Bool("resume", false, "Resume the most recent unfinished lesson")
}

// runLesson opens the store, wires the classroom, and launches the TUI.
func runLesson(cmd *cobra.Command, opts lessonOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	name := opts.name
	if name == "" {
		name = "David"
	}

	machine, err := buildMachine(st, provider, opts.params, name, filepath.Dir(dbPath))
	if err != nil {
		return err
	}

	if opts.resume {
		rec, err := st.SessionRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if rec != nil && rec.Stage != string(lesson.StageAwaitingStart) {
			restored, err := lesson.StateFromRecord(rec)
			if err != nil {
				return fmt.Errorf("restore session: %w", err)
			}
			machine.Restore(restored)
		}
	}

	return app.Run(classroom.New(machine))
}

// buildMachine assembles the coordinator, the class roster, and the lesson
// machine. The human always answers first.
func buildMachine(st *store.Store, provider llm.Provider, params lesson.Params, humanName, dataDir string) (*lesson.Machine, error) {
	humanInstr := fmt.Sprintf("You are %s, a curious student attending the lesson.", humanName)
	marcInstr := "You are Marc, the class clown. You joke around, sprinkle emojis into everything, " +
		"and your answers are confident but usually wrong."
	paolaInstr := "You are Paola, a shy student. Your answers are short, careful, and usually right, " +
		"but you never elaborate unless asked."
	teacherInstr := "You are the Teacher, a warm and experienced educator leading a small class. " +
		"You keep the lesson moving, explain clearly, and encourage every student."

	names := []string{"Teacher", humanName, "Marc", "Paola"}

	human := participant.NewHuman(humanName, participant.WithProtocol(humanInstr, others(names, humanName)))
	marc := participant.NewScripted("Marc", participant.WithProtocol(marcInstr, others(names, "Marc")), provider)
	paola := participant.NewScripted("Paola", participant.WithProtocol(paolaInstr, others(names, "Paola")), provider)
	teacher := participant.NewCoordinator("Teacher", participant.WithProtocol(teacherInstr, others(names, "Teacher")), provider)

	roster, err := participant.NewRoster(human, marc, paola)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	return lesson.New(lesson.Config{
		Params:      params,
		Coordinator: teacher,
		Students:    roster,
		Reporter:    report.NewWriter(filepath.Join(dataDir, "reports")),
		Sessions:    st.SessionRepo(),
		Events:      st.EventRepo(),
	})
}

func others(names []string, self string) []string {
	var out []string
	for _, n := range names {
		if n != self {
			out = append(out, n)
		}
	}
	return out
}
