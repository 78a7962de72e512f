package discord

import (
	"fmt"

	"github.com/PancyStudios/FPBotGo/pkg/gate"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
)

// GateMiddleware verifica los permisos del usuario antes de ejecutar un
// comando privilegiado y frena a los que insisten sin autorización.
func (c *ExtendedClient) GateMiddleware(ctx *CommandContext, cmd *Command) error {
	if !cmd.Privileged {
		return nil
	}

	userID := ctx.User().ID
	decision := c.Gate.Check(userID, ctx.HasPermissions(cmd.UserPermissions))
	if decision.Allowed {
		return nil
	}

	ctx.ReplyEphemeral(decision.Message)

	if decision.Message == gate.EscalatedMessage {
		logger.Warn(fmt.Sprintf("Usuario %s sigue intentando comandos privilegiados", userID), "GateMiddleware")
	} else {
		logger.Debug(fmt.Sprintf("Intento no autorizado de %s en /%s", userID, cmd.Name), "GateMiddleware")
	}

	return fmt.Errorf("user %s is not authorized for %s", userID, cmd.Name)
}
