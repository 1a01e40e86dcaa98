package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/ui"
)

const errMsgResetNeedsConfirm = "reset erases points, quests and history but keeps today's daily quests; re-run with --yes"

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New(errMsgResetNeedsConfirm)
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All progress erased"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}
