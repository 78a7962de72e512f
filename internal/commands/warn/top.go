// Package warn - /warn top command
package warn

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
)

// createTopCommand creates the /warn top subcommand
func createTopCommand() *discord.Command {
	return discord.NewCommand(
		"top",
		"Muestra el top 5 de miembros con más advertencias",
		"warn",
		topHandler,
	)
}

// topHandler handles the /warn top command
func topHandler(ctx *discord.CommandContext) error {
	entries, err := database.Get().TopWarnings(5)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar el ranking.")
	}

	if len(entries) == 0 {
		return ctx.Reply("No warnings recorded.")
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		name := displayName(ctx, entry.UserID)
		lines = append(lines, fmt.Sprintf("**%d.** %s — **%d warnings**", i+1, name, entry.Count))
	}

	return ctx.Reply("__**Top Warning Havers**__\n" + strings.Join(lines, "\n"))
}
