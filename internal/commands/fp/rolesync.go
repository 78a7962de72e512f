// Package fp - /fp rolesync command
package fp

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/fprole"
	"github.com/bwmarrin/discordgo"
)

// createRoleSyncCommand creates the /fp rolesync subcommand
func createRoleSyncCommand() *discord.Command {
	return discord.NewCommand(
		"rolesync",
		"Resincroniza el rol FP de un miembro con su puntaje",
		"fp",
		roleSyncHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a sincronizar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// roleSyncHandler handles the /fp rolesync command
func roleSyncHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	id, err := targetID(user)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Usuario inválido.")
	}

	value, err := database.Get().GetFP(id)
	if err != nil {
		return ctx.ReplyEphemeral("❌ No se pudo consultar el FP.")
	}

	existed := fprole.Sync(ctx.Session, ctx.Interaction.GuildID, user.ID, value)

	return ctx.Reply(fmt.Sprintf("Synchronized %s to **%d FP**.%s", user.Mention(), value, roleNote(existed, value)))
}
