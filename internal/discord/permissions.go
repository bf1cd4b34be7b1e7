package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/LeDeathAmongst/vrt-cogs/internal/config"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
)

// ResolveTier maps a member's standing in the guild to a privilege
// tier: configured developer is bot owner, then guild ownership and
// role permission bits in descending order of authority.
func ResolveTier(s *discordgo.Session, cfg *config.Config, guildID string, m *discordgo.Member) docs.Tier {
	if m == nil || m.User == nil {
		return docs.TierNone
	}
	if config.IsDeveloper(cfg, m.User.ID) {
		return docs.TierBotOwner
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil || guild == nil {
			return docs.TierNone
		}
	}
	if m.User.ID == guild.OwnerID {
		return docs.TierGuildOwner
	}

	perms := memberPermissions(s, guild, m)
	switch {
	case perms&discordgo.PermissionManageServer != 0:
		return docs.TierGuildOwner
	case perms&discordgo.PermissionAdministrator != 0,
		perms&discordgo.PermissionManageRoles != 0:
		return docs.TierAdmin
	case perms&discordgo.PermissionManageMessages != 0:
		return docs.TierMod
	default:
		return docs.TierNone
	}
}

func memberPermissions(s *discordgo.Session, guild *discordgo.Guild, m *discordgo.Member) int64 {
	var perms int64
	for _, roleID := range m.Roles {
		if role, _ := s.State.Role(guild.ID, roleID); role != nil {
			perms |= role.Permissions
		}
	}
	return perms
}
