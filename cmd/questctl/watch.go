package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/tui"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Open the live quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunWatch(ctx, svc, cmd.OutOrStdout())
		},
	}
}
