// Package fp - /fp top command
package fp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
)

// createTopCommand creates the /fp top subcommand
func createTopCommand() *discord.Command {
	return discord.NewCommand(
		"top",
		"Muestra el top 5 de miembros con más FP",
		"fp",
		topHandler,
	)
}

// topHandler handles the /fp top command
func topHandler(ctx *discord.CommandContext) error {
	entries, err := database.Get().TopFP(5)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar el ranking.")
	}

	if len(entries) == 0 {
		return ctx.Reply("No FP data found.")
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		name := displayName(ctx, entry.UserID)
		lines = append(lines, fmt.Sprintf("**%d.** %s — **%d FP**", i+1, name, entry.FP))
	}

	return ctx.Reply("__**Top FP Havers**__\n" + strings.Join(lines, "\n"))
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
