package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/ui"
)

const historyTimeLayout = "2006-01-02 15:04"

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Reward ledger",
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the most recent history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.History(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}

			// newest last, like a log
			start := 0
			if limit > 0 && len(entries) > limit {
				start = len(entries) - limit
			}
			for _, e := range entries[start:] {
				fmt.Fprintf(out, "%s %s %-8s %s %s\n",
					ui.Muted.Render(e.At.Local().Format(historyTimeLayout)),
					ui.CategoryIcon(e.Category), ui.CategoryLabel(e.Category), e.Text, ui.Points(e.Amount))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the history (this also resets the completed-quest count)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearHistory(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconInfo+" History cleared")
			return nil
		},
	}
}
