package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/timer"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game in plain text (no full-screen UI)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectFlag, _ := cmd.Flags().GetString("subject")
		modeFlag, _ := cmd.Flags().GetString("mode")

		subject, err := quiz.ParseSubject(subjectFlag)
		if err != nil {
			return err
		}
		mode, err := game.ParseMode(modeFlag)
		if err != nil {
			return err
		}

		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		sess := svc.launcher(timer.TickerScheduler{}).New(mode, subject)
		defer sess.Close()

		sum, err := playLoop(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

func init() {
	playCmd.Flags().String("subject", string(quiz.Maths), "Subject: "+strings.Join(quiz.SubjectNames(), ", "))
	playCmd.Flags().String("mode", string(game.QuickFire), "Game mode: quick_fire or speed_round")
}

// pollInterval is how often the loop checks the clock while waiting for input.
const pollInterval = 200 * time.Millisecond

// readLines sends each input line until input ends or done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// parseChoice reads "#N" as the 0-based choice N-1.
func parseChoice(line string) (int, bool) {
	rest, ok := strings.CutPrefix(line, "#")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// playLoop runs a game over line-based input until the clock runs out, the
// player types "q" or input ends.
func playLoop(ctx context.Context, sess *game.Session, in io.Reader, out io.Writer) (game.Summary, error) {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	poll := time.NewTicker(pollInterval)
	defer poll.Stop()

	fmt.Fprintf(out, "%s · %s · %ds on the clock\n", sess.Mode().DisplayName(), sess.Subject(), sess.Timer().Time())
	fmt.Fprintln(out, sess.Mode().Description())
	fmt.Fprintln(out, `Type the answer, or "#2" to pick choice 2. "q" quits.`)

	q, err := sess.Start()
	if err != nil {
		return game.Summary{}, err
	}
	printQuestion(out, sess, q)

	for playing := true; playing && !sess.TimeUp(); {
		select {
		case <-ctx.Done():
			playing = false
		case <-poll.C:
		case line, ok := <-lines:
			line = strings.TrimSpace(line)
			if !ok || strings.EqualFold(line, "q") {
				playing = false
				break
			}
			if line == "" {
				continue
			}
			var res game.AnswerResult
			if idx, ok := parseChoice(line); ok {
				res, err = sess.AnswerChoice(ctx, idx)
			} else {
				res, err = sess.Answer(ctx, line)
			}
			if errors.Is(err, game.ErrNotPlaying) {
				playing = false
				break
			}
			if err != nil {
				return game.Summary{}, err
			}
			printResult(out, res)
			if sess.TimeUp() {
				break
			}
			printQuestion(out, sess, sess.NextQuestion())
		}
	}

	if sess.TimeUp() {
		fmt.Fprintln(out, "\n⏱  Time's up!")
	}
	return sess.Finish(ctx)
}

func printQuestion(out io.Writer, sess *game.Session, q quiz.Question) {
	fmt.Fprintf(out, "\n[%ds] (%s) %s\n", sess.Timer().Time(), q.Difficulty, q.Prompt)
	for i, c := range q.Choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}
	fmt.Fprint(out, "> ")
}

func printResult(out io.Writer, res game.AnswerResult) {
	if res.Correct {
		line := fmt.Sprintf("✓ +%d", res.Points)
		if res.Combo >= 2 {
			line += fmt.Sprintf("  combo x%d (%.1fx)", res.Combo, res.Multiplier)
		}
		if res.TimeBonus > 0 {
			line += fmt.Sprintf("  speed bonus %d", res.TimeBonus)
		}
		fmt.Fprintln(out, line)
	} else {
		fmt.Fprintf(out, "✗ The answer was %s\n", res.Question.Answer)
	}
	for _, m := range res.Missions {
		fmt.Fprintf(out, "★ Mission complete: %s (claim %d XP with `cramgames mission claim`)\n", m.Title, m.XPReward)
	}
}

func printSummary(out io.Writer, sum game.Summary) {
	st := sum.State
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score:      %d\n", st.Score)
	fmt.Fprintf(out, "Grade:      %s (%d%% accuracy)\n", sum.Grade, sum.Accuracy)
	fmt.Fprintf(out, "Answers:    %d correct, %d wrong\n", st.CorrectAnswers, st.WrongAnswers)
	fmt.Fprintf(out, "Best combo: %d\n", st.MaxCombo)
	fmt.Fprintf(out, "XP earned:  %d\n", sum.XP)
	if sum.Perfect {
		fmt.Fprintln(out, "Perfect game!")
	}
	if sum.Outcome.LeveledUp() {
		fmt.Fprintf(out, "Level up! You are now level %d.\n", sum.Outcome.Profile.Level())
	}
	if sum.Outcome.NewBest {
		fmt.Fprintf(out, "New best score for %s!\n", sum.Mode.DisplayName())
	}
	for _, m := range sum.Missions {
		fmt.Fprintf(out, "★ Mission complete: %s\n", m.Title)
	}
}
