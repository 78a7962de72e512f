package utils

import (
	"github.com/PancyStudios/FPBotGo/pkg/discord"
)

// RegisterUtilsCommands registers the utility commands as /utils subcommands
// plus the standalone /com help command
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	statsCmd := createStatsCommand()

	// Build the /utils command group with all subcommands
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Comandos de utilidad",
		pingCmd,
		statusCmd,
		statsCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(utilsGroup)

	// /com lives at the top level, matching the old prefix command
	comCmd := createComCommand()
	client.CommandHandler.RegisterCommand(comCmd)
	client.CommandHandler.AddGlobalCommand(comCmd.ToApplicationCommand())
}
