// Package warn - /warn add command
package warn

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/config"
	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
	"github.com/PancyStudios/FPBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /warn add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Advierte a un miembro",
		"warn",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// addHandler handles the /warn add command
func addHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	reason := ctx.GetStringOption("razon")

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	db := database.Get()
	if err := db.AddWarning(id, reason); err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo registrar la advertencia.")
	}

	total, err := db.CountWarnings(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo registrar la advertencia.")
	}

	var warnMessage string
	if reason != "" && reason != database.DefaultWarnReason {
		warnMessage = fmt.Sprintf("%s you have been warned for %s. You are at %d warnings.", user.Mention(), reason, total)
	} else {
		warnMessage = fmt.Sprintf("%s you have been warned. You are at %d warnings.", user.Mention(), total)
	}

	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishWarning(mqtt.WarningEvent{
			GuildID: ctx.Interaction.GuildID,
			UserID:  id,
			Action:  "add",
			Total:   total,
		})
	}()

	generalChannel := config.Get().GeneralChannelID
	if generalChannel != "" {
		if _, err := ctx.Session.ChannelMessageSend(generalChannel, warnMessage); err == nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("⚠️ Advertencia registrada para %s.", user.Mention()))
		}
		logger.Warn("No se pudo enviar el aviso al canal general: "+generalChannel, "WarnAdd")
	}

	return ctx.Reply(fmt.Sprintf("Could not find the general channel. Warning recorded: %s", warnMessage))
}
