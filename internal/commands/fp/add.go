// Package fp - /fp add command
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

// createAddCommand creates the /fp add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Suma o resta FP a un miembro",
		"fp",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a ajustar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "FP a sumar (negativo para restar)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// addHandler handles the /fp add command
func addHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	delta := int(ctx.GetIntOption("cantidad"))

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	newFP, err := database.Get().ApplyDelta(id, delta)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo actualizar el FP.")
	}

	existed := fprole.Sync(ctx.Session, ctx.Interaction.GuildID, user.ID, newFP)

	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishScore(mqtt.ScoreEvent{
			GuildID: ctx.Interaction.GuildID,
			UserID:  id,
			FP:      newFP,
			Delta:   delta,
		})
	}()

	return ctx.Reply(fmt.Sprintf("%s is now **%d FP**.%s", user.Mention(), newFP, roleNote(existed, newFP)))
}
