// Package fp - /fp set command
package fp

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/fprole"
	"github.com/PancyStudios/FPBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createSetCommand creates the /fp set subcommand
func createSetCommand() *discord.Command {
	return discord.NewCommand(
		"set",
		"Fija el FP de un miembro en un valor exacto",
		"fp",
		setHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a ajustar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "valor",
			Description: "Nuevo valor de FP",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// setHandler handles the /fp set command
func setHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	value := int(ctx.GetIntOption("valor"))

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	if err := database.Get().SetFP(id, value); err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo actualizar el FP.")
	}

	existed := fprole.Sync(ctx.Session, ctx.Interaction.GuildID, user.ID, value)

	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishScore(mqtt.ScoreEvent{
			GuildID: ctx.Interaction.GuildID,
			UserID:  id,
			FP:      value,
		})
	}()

	return ctx.Reply(fmt.Sprintf("%s set to **%d FP**.%s", user.Mention(), value, roleNote(existed, value)))
}
