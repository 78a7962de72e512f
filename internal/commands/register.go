// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (fp, warn, utils)
package commands

import (
	"github.com/PancyStudios/FPBotGo/internal/commands/fp"
	"github.com/PancyStudios/FPBotGo/internal/commands/utils"
	"github.com/PancyStudios/FPBotGo/internal/commands/warn"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
// Add your command registration calls here
func RegisterAll(client *discord.ExtendedClient) {
	// Score commands (/fp add, /fp set, /fp check, /fp rolesync, /fp all, /fp top)
	fp.RegisterFPCommands(client)

	// Warning commands (/warn add, /warn check, /warn clear, /warn sub, /warn top)
	warn.RegisterWarnCommands(client)

	// Utility commands (/utils ping, /utils status, /utils stats, /com)
	utils.RegisterUtilsCommands(client)
}
