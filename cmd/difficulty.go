package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/spf13/cobra"
)

var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Show the adaptive difficulty state",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		printDifficulty(cmd.OutOrStdout(), svc.adaptive.Tracker())
		return nil
	},
}

func printDifficulty(out io.Writer, t *adaptive.Tracker) {
	fmt.Fprintf(out, "Overall      %-6s (modifier %+.2f)\n", t.OverallDifficulty(), t.DifficultyModifier())
	fmt.Fprintf(out, "Recent       %d answers, %.0f%% correct\n", t.WindowLen(), t.Accuracy()*100)
	fmt.Fprintf(out, "Confidence   %.2f\n", t.ConfidenceScore())
	if t.ShouldShowEasierQuestion() {
		fmt.Fprintln(out, "Easing off: the last few answers were mostly wrong.")
	}

	fmt.Fprintln(out, "\nSubjects")
	for _, s := range quiz.SubjectNames() {
		fmt.Fprintf(out, "  %-10s %-6s (modifier %+.2f)\n", s, t.DifficultyForSubject(s), t.SubjectModifier(s))
	}
}
