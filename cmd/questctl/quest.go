package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/quest"
	"github.com/osse101/QuestCraft_Go/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage custom timed quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestShowCmd(),
		newQuestStartCmd(),
		newQuestCancelCmd(),
		newQuestCompleteCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var difficulty int
	var minutes int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest with a difficulty (1-5) and a duration in minutes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.AddQuest(ctx, strings.Join(args, " "), difficulty, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q %s %s, %s points on completion\n",
				ui.IconQuest, q.Name, ui.Stars(q.Difficulty), quest.FormatMinutes(q.DurationMinutes), ui.Points(q.Reward))
			return nil
		},
	}

	cmd.Flags().IntVarP(&difficulty, "difficulty", "d", 1, "Difficulty (1-5), worth 10 points per level")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 30, "Duration in minutes (max 240)")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List quests with their timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Quests(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none, add one with: questctl quest add <name> -d 3 -m 45)"))
				return nil
			}
			for _, p := range list {
				fmt.Fprintln(out, questLine(p))
			}
			return nil
		},
	}
}

func questLine(p domain.QuestProgress) string {
	line := fmt.Sprintf("%s %s %s %s %s",
		ui.Key.Render(fmt.Sprintf("[%d]", p.Index)),
		p.Quest.Name,
		ui.Stars(p.Quest.Difficulty),
		ui.Muted.Render(quest.FormatMinutes(p.Quest.DurationMinutes)),
		ui.Points(p.Quest.Reward))
	if !p.Started {
		return line
	}

	state := ui.Warn.Render(p.RemainingText)
	if p.Eligible {
		state = ui.Good.Render(p.RemainingText + ", ready")
	}
	return fmt.Sprintf("%s\n    %s %3.0f%% %s", line, ui.Bar(p.Percent, 20), p.Percent, state)
}

func newQuestShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show the timer of one quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.QuestProgress(ctx, idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), questLine(p))
			return nil
		},
	}
}

func newQuestStartCmd() *cobra.Command {
	return indexCmd("start <index>", "Start the timer of a quest", func(cmd *cobra.Command, svc game.Service, idx int) error {
		q, err := svc.StartQuest(cmd.Context(), idx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Started %q, come back in %s\n", ui.IconTimer, q.Name, quest.FormatMinutes(q.DurationMinutes))
		return nil
	})
}

func newQuestCancelCmd() *cobra.Command {
	return indexCmd("cancel <index>", "Cancel a quest without reward", func(cmd *cobra.Command, svc game.Service, idx int) error {
		q, err := svc.CancelQuest(cmd.Context(), idx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Cancelled %q\n", ui.IconWarn, q.Name)
		return nil
	})
}

func newQuestCompleteCmd() *cobra.Command {
	return indexCmd("complete <index>", "Validate a started quest once 90% of its duration has elapsed", func(cmd *cobra.Command, svc game.Service, idx int) error {
		outcome, err := svc.CompleteQuest(cmd.Context(), idx)
		if err != nil {
			return err
		}
		printCompletion(cmd, outcome)
		return nil
	})
}

func indexCmd(use, short string, run func(cmd *cobra.Command, svc game.Service, idx int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			return run(cmd, svc, idx)
		},
	}
}

func printCompletion(cmd *cobra.Command, outcome *game.CompletionOutcome) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s (balance %d, %d completed)\n",
		ui.IconDone, outcome.Name, ui.Points(outcome.Reward), outcome.Balance, outcome.CompletedCount)
	for _, n := range outcome.Notices {
		fmt.Fprintln(out, ui.Gold.Render(n.Message))
	}
}
