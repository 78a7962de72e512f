// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberRemove is called when a member leaves or is kicked.
// Their score and warning history leave with them.
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	id, err := discord.ParseSnowflake(m.User.ID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Id de miembro no numérico: %s", m.User.ID), "Member")
		return
	}

	if err := database.Get().RemoveUser(id); err != nil {
		logger.Error(fmt.Sprintf("Error limpiando el ledger de %s: %v", m.User.ID, err), "Member")
		return
	}

	logger.Info(fmt.Sprintf("Removed FP and warnings for %s (%s) because they left or were kicked.",
		m.User.Username, m.User.ID), "Member")
}
