// Package warn provides the warning commands organized as subcommands under /warn
// Each command is in its own file for better organization
package warn

import (
	"fmt"
	"strconv"

	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterWarnCommands registers all warning commands as /warn subcommands
func RegisterWarnCommands(client *discord.ExtendedClient) {
	addCmd := createAddCommand()
	checkCmd := createCheckCommand()
	clearCmd := createClearCommand()
	subCmd := createSubCommand()
	topCmd := createTopCommand()

	warnGroup := client.CommandHandler.BuildCommandGroup(
		"warn",
		"Comandos de advertencias",
		addCmd,
		checkCmd,
		clearCmd,
		subCmd,
		topCmd,
	)

	client.CommandHandler.AddGlobalCommand(warnGroup)
}

// targetID resolves the numeric id of a command's user option
func targetID(user *discordgo.User) (int64, error) {
	return discord.ParseSnowflake(user.ID)
}

// displayName resolves a member's display name through the session state,
// falling back to the raw id for members who already left
func displayName(ctx *discord.CommandContext, userID int64) string {
	id := strconv.FormatInt(userID, 10)
	if member, err := ctx.Session.State.Member(ctx.Interaction.GuildID, id); err == nil && member.User != nil {
		if member.Nick != "" {
			return member.Nick
		}
		return member.User.Username
	}
	return fmt.Sprintf("User ID %d", userID)
}
