// Package fp provides the score commands organized as subcommands under /fp
// Each command is in its own file for better organization
package fp

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterFPCommands registers all score commands as /fp subcommands
func RegisterFPCommands(client *discord.ExtendedClient) {
	addCmd := createAddCommand()
	setCmd := createSetCommand()
	checkCmd := createCheckCommand()
	roleSyncCmd := createRoleSyncCommand()
	allCmd := createAllCommand()
	topCmd := createTopCommand()

	fpGroup := client.CommandHandler.BuildCommandGroup(
		"fp",
		"Comandos de puntos FP",
		addCmd,
		setCmd,
		checkCmd,
		roleSyncCmd,
		allCmd,
		topCmd,
	)

	client.CommandHandler.AddGlobalCommand(fpGroup)
}

// targetID resolves the numeric id of a command's user option
func targetID(user *discordgo.User) (int64, error) {
	return discord.ParseSnowflake(user.ID)
}

// roleNote returns the suffix appended when the matching FP role is missing
func roleNote(existed bool, fp int) string {
	if existed {
		return ""
	}
	return fmt.Sprintf(" *(role `%d FP` not found)*", fp)
}
