// Package fprole keeps a member's FP-derived guild role in sync with the
// ledger. Roles named like "12 FP" are a projection of the score; every
// other role is foreign and never touched. All guild mutations are
// best-effort: the ledger stays the source of truth even when Discord
// refuses a role change.
package fprole

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/PancyStudios/FPBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// rolePattern matches score-derived role names: "<n> FP", case-insensitive
var rolePattern = regexp.MustCompile(`(?i)^\d+\s*FP$`)

// requestTimeout bounds every Discord role call; a stuck call fails fast
// and the synchronizer moves on.
const requestTimeout = 10 * time.Second

// IsFPRole reports whether a role name follows the FP naming convention
func IsFPRole(name string) bool {
	return rolePattern.MatchString(name)
}

// RoleName returns the role name that represents a score
func RoleName(fp int) string {
	return fmt.Sprintf("%d FP", fp)
}

// Plan computes which of the member's roles should be shed and which
// guild role matches the target score. Pure; the session calls live in
// Sync.
func Plan(memberRoleIDs []string, guildRoles []*discordgo.Role, newFP int) (removeIDs []string, targetID string) {
	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}

	for _, id := range memberRoleIDs {
		if r, ok := byID[id]; ok && IsFPRole(r.Name) {
			removeIDs = append(removeIDs, id)
		}
	}

	want := RoleName(newFP)
	for _, r := range guildRoles {
		if r.Name == want {
			targetID = r.ID
			break
		}
	}
	return removeIDs, targetID
}

// Sync reconciles a member's role set to carry exactly the role named
// after newFP. Returns whether a role with that name exists in the
// guild; removal or attach refusals are swallowed.
func Sync(s *discordgo.Session, guildID, userID string, newFP int) bool {
	member := lookupMember(s, guildID, userID)
	if member == nil {
		logger.Warn(fmt.Sprintf("Member %s not found in guild %s, skipping role sync", userID, guildID), "FPRole")
		return false
	}

	roles := lookupGuildRoles(s, guildID)
	removeIDs, targetID := Plan(member.Roles, roles, newFP)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	for _, roleID := range removeIDs {
		err := s.GuildMemberRoleRemove(guildID, userID, roleID,
			discordgo.WithContext(ctx), discordgo.WithAuditLogReason("FP update"))
		if err != nil {
			// Refused removals are not reported to the caller
			logger.Debug(fmt.Sprintf("Could not remove role %s from %s: %v", roleID, userID, err), "FPRole")
		}
	}

	if targetID == "" {
		return false
	}

	err := s.GuildMemberRoleAdd(guildID, userID, targetID,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(fmt.Sprintf("Set to %d FP", newFP)))
	if err != nil {
		logger.Debug(fmt.Sprintf("Could not add role %s to %s: %v", targetID, userID, err), "FPRole")
	}
	return true
}

// lookupMember prefers session state over a REST round-trip
func lookupMember(s *discordgo.Session, guildID, userID string) *discordgo.Member {
	if member, err := s.State.Member(guildID, userID); err == nil {
		return member
	}
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		return nil
	}
	return member
}

// lookupGuildRoles prefers session state over a REST round-trip
func lookupGuildRoles(s *discordgo.Session, guildID string) []*discordgo.Role {
	if guild, err := s.State.Guild(guildID); err == nil && len(guild.Roles) > 0 {
		return guild.Roles
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		logger.Debug(fmt.Sprintf("Could not list roles for guild %s: %v", guildID, err), "FPRole")
		return nil
	}
	return roles
}
