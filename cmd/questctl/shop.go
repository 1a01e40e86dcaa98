package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestCraft_Go/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy Minecraft items",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the items unlocked by your completed quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			view, err := svc.ShopItems(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%s %d", ui.IconCoin, view.Balance)))
			for _, item := range view.Items {
				price := fmt.Sprintf("%d", item.Cost)
				if item.Cost > view.Balance {
					price = ui.Muted.Render(price)
				}
				fmt.Fprintf(out, "  %-14s %-22s %s\n", item.ID, ui.ItemName(item.ID), price)
			}
			if view.NextTierAt != nil {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s more items at %d completed quests (you have %d)", ui.IconLock, *view.NextTierAt, view.CompletedCount)))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item; it is sent to the game server when a relay is configured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.BuyItem(ctx, strings.ToUpper(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Bought %s %s (balance %d)\n", ui.IconShop, ui.ItemName(res.Item.ID), ui.Points(-res.Item.Cost), res.Balance)
			if res.GameCompleted {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" You finished the game!"))
			}
			return nil
		},
	}
}
