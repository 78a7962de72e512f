// Package fp - /fp all command
package fp

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/fprole"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createAllCommand creates the /fp all subcommand
func createAllCommand() *discord.Command {
	return discord.NewCommand(
		"all",
		"Suma o resta FP a TODOS los miembros del servidor",
		"fp",
		allHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "FP a sumar (negativo para restar)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).AsPrivileged()
}

// allHandler handles the /fp all command
func allHandler(ctx *discord.CommandContext) error {
	delta := int(ctx.GetIntOption("cantidad"))
	guildID := ctx.Interaction.GuildID

	// Walking every member can take a while, defer the reply
	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		members, err := guildMembers(ctx.Session, guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error listando miembros de %s: %v", guildID, err), "FPAll")
			ctx.EditReply("❌ No se pudo listar los miembros del servidor.")
			return
		}

		updated := 0
		failedSyncs := 0

		for _, member := range members {
			if member.User == nil || member.User.Bot {
				continue
			}

			id, err := targetID(member.User)
			if err != nil {
				continue
			}

			newFP, err := database.Get().ApplyDelta(id, delta)
			if err != nil {
				logger.Warn(fmt.Sprintf("Fallo actualizando FP de %s: %v", member.User.ID, err), "FPAll")
				continue
			}

			if !fprole.Sync(ctx.Session, guildID, member.User.ID, newFP) {
				failedSyncs++
			}
			updated++
		}

		msg := fmt.Sprintf("Applied **%+d FP** to **%d** members.", delta, updated)
		if failedSyncs > 0 {
			msg += fmt.Sprintf("\nNote: **%d** member had no matching FP role (e.g., `123 FP`).", failedSyncs)
		}

		ctx.EditReply(msg)
	}()

	return nil
}

// guildMembers lists every member of the guild, preferring the session
// state and falling back to paginated REST requests
func guildMembers(s *discordgo.Session, guildID string) ([]*discordgo.Member, error) {
	if guild, err := s.State.Guild(guildID); err == nil && len(guild.Members) > 0 {
		return guild.Members, nil
	}

	members := make([]*discordgo.Member, 0)
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		members = append(members, page...)
		if len(page) < 1000 {
			break
		}
		after = page[len(page)-1].User.ID
	}
	return members, nil
}
