package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

type comEntry struct {
	usage string
	desc  string
}

var publicCommands = []comEntry{
	{"/fp check [usuario]", "Show a member's FP"},
	{"/fp top", "Show top FP havers"},
	{"/warn check [usuario]", "Show member's warning history"},
	{"/warn top", "Show top warning havers"},
	{"/com", "Help command"},
}

var adminCommands = []comEntry{
	{"/fp add <usuario> <cantidad>", "Add or subtract FP from a member"},
	{"/fp set <usuario> <valor>", "Set member FP to a value"},
	{"/fp rolesync <usuario>", "Sync FP and role"},
	{"/fp all <cantidad>", "Add or subtract FP for ALL members"},
	{"/warn add <usuario> [razon]", "Issue a warning"},
	{"/warn sub <usuario>", "Remove the most recent warning from a member"},
	{"/warn clear <usuario>", "Clear ALL warnings for a member"},
}

// createComCommand creates the /com help command
func createComCommand() *discord.Command {
	return discord.NewCommand(
		"com",
		"Muestra los comandos disponibles según tus permisos",
		"utils",
		comHandler,
	)
}

// comHandler handles the /com command
func comHandler(ctx *discord.CommandContext) error {
	isAdmin := ctx.HasPermissions(discordgo.PermissionManageRoles)

	lines := make([]string, 0, len(publicCommands)+len(adminCommands)+3)
	if isAdmin {
		lines = append(lines, "**Public:**")
	}
	for _, c := range publicCommands {
		lines = append(lines, fmt.Sprintf("- `%s` — %s", c.usage, c.desc))
	}
	if isAdmin {
		lines = append(lines, "", "**Admin:**")
		for _, c := range adminCommands {
			lines = append(lines, fmt.Sprintf("- `%s` — %s", c.usage, c.desc))
		}
	}

	return ctx.Reply("__**Commands**__\n" + strings.Join(lines, "\n"))
}
