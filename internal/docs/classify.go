package docs

import (
	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/cog"
)

// Classify maps a command's declared permission predicates to exactly
// one tier. A command with no declared predicates is open (TierNone).
// Pure function of the descriptor; never fails.
func Classify(c *cog.Command) Tier {
	req := c.Requires

	switch {
	case req.OwnerOnly:
		return TierBotOwner
	case req.GuildOwnerOnly,
		req.Permissions&discordgo.PermissionManageServer != 0:
		return TierGuildOwner
	case req.Permissions&discordgo.PermissionAdministrator != 0,
		req.Permissions&discordgo.PermissionManageRoles != 0:
		return TierAdmin
	case req.Permissions&discordgo.PermissionManageMessages != 0,
		req.Permissions&discordgo.PermissionKickMembers != 0,
		req.Permissions&discordgo.PermissionBanMembers != 0,
		req.Permissions&discordgo.PermissionModerateMembers != 0:
		return TierMod
	default:
		return TierNone
	}
}
