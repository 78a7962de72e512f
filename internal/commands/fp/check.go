// Package fp - /fp check command
package fp

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCheckCommand creates the /fp check subcommand
func createCheckCommand() *discord.Command {
	return discord.NewCommand(
		"check",
		"Muestra el FP de un miembro",
		"fp",
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

// checkHandler handles the /fp check command
func checkHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	fp, err := database.Get().GetFP(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar el FP.")
	}

	return ctx.Reply(fmt.Sprintf("%s has **%d FP**.", user.Mention(), fp))
}
