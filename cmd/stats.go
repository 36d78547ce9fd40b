package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/cramgames/internal/game"
	"github.com/abhisek/cramgames/internal/progression"
	"github.com/abhisek/cramgames/internal/quiz"
	"github.com/abhisek/cramgames/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, streaks, best scores and subject badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		p, err := svc.progress.Profile(ctx)
		if err != nil {
			return err
		}
		totals, err := svc.store.EventRepo().GameTotals(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("game totals: %w", err)
		}

		printStats(cmd.OutOrStdout(), svc.cfg.YearGroup, p, totals)
		return nil
	},
}

func printStats(out io.Writer, yearGroup int, p progression.Profile, t store.GameTotals) {
	level, into, span := progression.LevelProgress(p.TotalXP)

	fmt.Fprintf(out, "Year %d player\n", yearGroup)
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "Level        %d  (%d/%d XP to next)\n", level, into, span)
	fmt.Fprintf(out, "Total XP     %d\n", p.TotalXP)
	fmt.Fprintf(out, "Games        %d\n", p.GamesPlayed)
	fmt.Fprintf(out, "Streak       %d days (longest %d)\n", p.CurrentStreak, p.LongestStreak)
	if p.LastPlayedDate != "" {
		fmt.Fprintf(out, "Last played  %s\n", p.LastPlayedDate)
	}

	fmt.Fprintln(out, "\nBest scores")
	for _, m := range game.AllModes() {
		fmt.Fprintf(out, "  %-12s %d\n", m.DisplayName(), p.BestScores[string(m)])
	}

	fmt.Fprintln(out, "\nSubjects")
	names := quiz.SubjectNames()
	extra := lo.Filter(lo.Keys(p.Subjects), func(name string, _ int) bool {
		return !slices.Contains(names, name)
	})
	slices.Sort(extra)
	names = append(names, extra...)
	for _, name := range names {
		tally := p.Subjects[name]
		badge := tally.Badge()
		label := badge.String()
		if badge != progression.BadgeNone {
			label = badge.Icon() + " " + label
		}
		fmt.Fprintf(out, "  %-10s %3d/%-4d %s\n", name, tally.Correct, tally.Total, label)
	}

	if t.Games > 0 {
		fmt.Fprintln(out, "\nGame log")
		fmt.Fprintf(out, "  %d games, %d points, best %d, %d perfect\n", t.Games, t.TotalScore, t.BestScore, t.Perfect)
		fmt.Fprintf(out, "  %d correct, %d wrong\n", t.Correct, t.Wrong)
	}
}
