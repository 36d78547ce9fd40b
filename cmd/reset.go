package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/abhisek/cramgames/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset saved progress (difficulty, missions, profile)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		what := "difficulty, missions and profile"
		if all {
			what += ", and the game log"
		}
		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "This deletes your %s. Continue? [y/N] ", what)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
				return nil
			}
		}

		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := store.ResetState(ctx, svc.state); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}
		if all {
			if err := svc.store.EventRepo().DeleteGameEvents(ctx); err != nil {
				return fmt.Errorf("clear game log: %w", err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted your %s.\n", what)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear the game log")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
