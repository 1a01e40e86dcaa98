package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show points, progression and the active quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.Summary(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "QuestCraft"))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconCoin, s.Points)))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", s.CompletedCount))
			if s.NextTierAt != nil {
				fmt.Fprintln(out, ui.LabelValue("Next shop tier", fmt.Sprintf("%d completions (%d to go)", *s.NextTierAt, *s.NextTierAt-s.CompletedCount)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Next shop tier", ui.Gold.Render("all tiers unlocked")))
			}
			fmt.Fprintln(out, ui.LabelValue("Daily quests today", s.DailyCount))
			fmt.Fprintln(out, ui.LabelValue("Custom quests", s.QuestCount))

			if s.ActiveQuest == nil {
				fmt.Fprintln(out, ui.LabelValue("Active quest", ui.Muted.Render("none")))
				return nil
			}

			p, err := svc.QuestProgress(ctx, *s.ActiveQuest)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Active quest", fmt.Sprintf("#%d %s", p.Index, p.Quest.Name)))
			fmt.Fprintf(out, "  %s %3.0f%% %s\n", ui.Bar(p.Percent, 20), p.Percent, p.RemainingText)
			if p.Eligible {
				fmt.Fprintln(out, "  "+ui.Good.Render(ui.IconDone+" can be validated"))
			}
			return nil
		},
	}
}
