// Package warn - /warn sub command
package warn

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createSubCommand creates the /warn sub subcommand
func createSubCommand() *discord.Command {
	return discord.NewCommand(
		"sub",
		"Elimina la advertencia más reciente de un miembro",
		"warn",
		subHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a aliviar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// subHandler handles the /warn sub command
func subHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	db := database.Get()
	removed, err := db.RemoveLastWarning(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo eliminar la advertencia.")
	}

	if !removed {
		return ctx.Reply(fmt.Sprintf("%s has no warnings to remove.", user.Mention()))
	}

	total, err := db.CountWarnings(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar las advertencias.")
	}

	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishWarning(mqtt.WarningEvent{
			GuildID: ctx.Interaction.GuildID,
			UserID:  id,
			Action:  "sub",
			Total:   total,
		})
	}()

	return ctx.Reply(fmt.Sprintf("Removed most recent warning for %s. Now at **%d** warnings.", user.Mention(), total))
}
