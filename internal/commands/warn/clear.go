// Package warn - /warn clear command
package warn

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createClearCommand creates the /warn clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Elimina TODAS las advertencias de un miembro",
		"warn",
		clearHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a limpiar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// clearHandler handles the /warn clear command
func clearHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	removed, err := database.Get().ClearWarnings(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo limpiar las advertencias.")
	}

	if removed == 0 {
		return ctx.Reply(fmt.Sprintf("%s has no warnings to clear.", user.Mention()))
	}

	go func() {
		defer errors.RecoverMiddleware()()
		mqtt.PublishWarning(mqtt.WarningEvent{
			GuildID: ctx.Interaction.GuildID,
			UserID:  id,
			Action:  "clear",
			Total:   0,
		})
	}()

	return ctx.Reply(fmt.Sprintf("Cleared **%d** warnings for %s.", removed, user.Mention()))
}
