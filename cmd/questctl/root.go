package main

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var verbose bool

const rootLong = `questctl drives the QuestCraft game state from the terminal, using the same store as the API server.
Do not run it while the server is up: each process rewrites the whole saved state, so one side's changes are lost.`

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "questctl",
		Short:         "QuestCraft: timed quests, daily quests and a Minecraft-themed shop",
		Long:          rootLong,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured LOG_LEVEL instead of warnings only")

	root.AddCommand(
		newStatusCmd(),
		newQuestCmd(),
		newDailyCmd(),
		newShopCmd(),
		newHistoryCmd(),
		newResetCmd(),
		newWatchCmd(),
	)
	return root
}
