// Package warn - /warn check command
package warn

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCheckCommand creates the /warn check subcommand
func createCheckCommand() *discord.Command {
	return discord.NewCommand(
		"check",
		"Muestra el historial de advertencias de un miembro",
		"warn",
		checkHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// checkHandler handles the /warn check command
func checkHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	warnings, err := database.Get().ListWarnings(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar las advertencias.")
	}

	if len(warnings) == 0 {
		return ctx.Reply(fmt.Sprintf("%s has no warnings.", user.Mention()))
	}

	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, fmt.Sprintf("- [%s] %s", w.Date, w.Reason))
	}

	return ctx.Reply(fmt.Sprintf("%s has been warned %d times:\n%s", user.Mention(), len(warnings), strings.Join(lines, "\n")))
}
