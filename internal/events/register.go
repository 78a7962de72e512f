// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, ready)
package events

import (
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
// Add your event registration calls here
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (leave -> ledger cleanup)
	RegisterMemberEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
