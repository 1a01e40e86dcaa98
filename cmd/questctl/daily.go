package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/ui"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daily",
		Aliases: []string{"d"},
		Short:   "Today's daily quests",
	}
	cmd.AddCommand(newDailyListCmd(), newDailyCheckCmd())
	return cmd
}

func newDailyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show today's three daily quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			view, err := svc.DailyQuests(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDaily, "Daily quests "+view.Date))
			for i, q := range view.Quests {
				mark := "[ ]"
				if view.IsCompleted(q.Name) {
					mark = ui.Good.Render("[x]")
				}
				fmt.Fprintf(out, "%s %d. %s %s %s\n", mark, i+1, q.Icon, q.Name, ui.Points(q.Reward))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d left today", view.Remaining)))
			return nil
		},
	}
}

func newDailyCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <number|name>",
		Short: "Check a daily quest by its number in today's list or by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			if n, err := strconv.Atoi(name); err == nil {
				view, err := svc.DailyQuests(ctx)
				if err != nil {
					return err
				}
				if n >= 1 && n <= len(view.Quests) {
					name = view.Quests[n-1].Name
				}
			}

			outcome, err := svc.CompleteDaily(ctx, name)
			if err != nil {
				return err
			}
			printCompletion(cmd, outcome)
			return nil
		},
	}
}
