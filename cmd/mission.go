package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/cramgames/internal/missions"
	"github.com/spf13/cobra"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Show today's daily mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		m, err := svc.missions.Mission(ctx)
		if err != nil {
			return err
		}
		st, err := svc.missions.Stats(ctx)
		if err != nil {
			return err
		}
		printMission(cmd.OutOrStdout(), m, st)
		return nil
	},
}

var missionClaimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim the XP reward for a completed mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		m, err := svc.missions.Mission(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch {
		case m.Claimed():
			fmt.Fprintln(out, "Today's reward has already been claimed.")
			return nil
		case !m.Completed:
			fmt.Fprintf(out, "Mission not complete yet: %d/%d.\n", m.Progress, m.Target)
			return nil
		}

		xp, err := svc.missions.ClaimReward(ctx)
		if err != nil {
			return err
		}
		p, err := svc.progress.AddBonusXP(ctx, xp)
		if err != nil {
			return err
		}
		st, err := svc.missions.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "+%d XP! Total %d XP, level %d. Mission streak: %d.\n",
			xp, p.TotalXP, p.Level(), st.CurrentMissionStreak)
		return nil
	},
}

func init() {
	missionCmd.AddCommand(missionClaimCmd)
}

func printMission(out io.Writer, m missions.Mission, st missions.Stats) {
	const barWidth = 20
	filled := int(m.Fraction() * barWidth)

	fmt.Fprintf(out, "%s  (%s)\n", m.Title, m.Date)
	fmt.Fprintln(out, m.Description)
	fmt.Fprintf(out, "[%s%s] %d/%d\n", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), m.Progress, m.Target)

	switch {
	case m.Claimed():
		fmt.Fprintf(out, "Reward: %d XP (claimed)\n", m.XPReward)
	case m.Claimable():
		fmt.Fprintf(out, "Reward: %d XP, ready! Run `cramgames mission claim`.\n", m.XPReward)
	default:
		fmt.Fprintf(out, "Reward: %d XP\n", m.XPReward)
	}

	fmt.Fprintf(out, "\nMissions completed: %d   Bonus XP: %d   Streak: %d\n",
		st.MissionsCompleted, st.TotalBonusXP, st.CurrentMissionStreak)
}
