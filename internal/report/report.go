// Package report renders the end-of-lesson study report as markdown.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/classroom/internal/lesson"
)

// Writer writes study reports into a directory, one file per lesson.
type Writer struct {
	Dir string

	// now is swapped in tests for stable file names.
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Generate renders the report and writes it to disk, returning the path.
func (w *Writer) Generate(_ context.Context, in lesson.ReportInput) (string, error) {
	now := time.Now
	if w.now != nil {
		now = w.now
	}
	ts := now()

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("study_report_%s.md", ts.Format("2006-01-02_150405")))
	if err := os.WriteFile(path, []byte(Render(in, ts)), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Render produces the markdown body of a study report.
func Render(in lesson.ReportInput, ts time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Study Report: %s\n\n", in.Topic)
	fmt.Fprintf(&b, "- **Student:** %s\n", in.StudentName)
	fmt.Fprintf(&b, "- **Subject:** %s\n", in.Subject)
	if in.LearningStyle != "" {
		fmt.Fprintf(&b, "- **Learning style:** %s\n", in.LearningStyle)
	}
	fmt.Fprintf(&b, "- **Date:** %s\n\n", ts.Format("January 2, 2006"))

	b.WriteString("## Focal Points\n\n")
	for i, topic := range in.Topics {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, topic)
		wrote := false
		if fb, ok := in.FeedbackLog[fmt.Sprintf("topic_%d_%s", i, lesson.ActivityQuiz)]; ok {
			fmt.Fprintf(&b, "**Quiz feedback:** %s\n\n", fb)
			wrote = true
		}
		if fb, ok := in.FeedbackLog[fmt.Sprintf("topic_%d_%s", i, lesson.ActivityCriticalThinking)]; ok {
			fmt.Fprintf(&b, "**Critical thinking feedback:** %s\n\n", fb)
			wrote = true
		}
		if !wrote {
			b.WriteString("No feedback was recorded for this focal point.\n\n")
		}
	}

	b.WriteString("## Final Test\n\n")
	if fb, ok := in.FeedbackLog[lesson.FinalFeedbackKey]; ok {
		b.WriteString(fb)
		b.WriteString("\n")
	} else {
		b.WriteString("The final test was not completed.\n")
	}

	return b.String()
}
