package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/shuffle"
)

// Authority is the typed outcome of a permission check. Denied outcomes carry
// a user-facing reason and are surfaced verbatim, never treated as faults.
type Authority struct {
	Authorized bool
	Reason     string
}

// Authorized is the positive authority outcome.
var Authorized = Authority{Authorized: true}

// Denied builds a negative authority outcome.
func Denied(reason string) Authority {
	return Authority{Reason: reason}
}

// CheckMemberAuthority decides whether a member may configure or trigger
// shuffles: guild owner, Administrator or Manage Roles all qualify.
func CheckMemberAuthority(member *discordgo.Member, ownerID string) Authority {
	if member == nil || member.User == nil {
		return Denied("This command can only be used inside a server.")
	}
	if member.User.ID == ownerID {
		return Authorized
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return Authorized
	}
	if member.Permissions&discordgo.PermissionManageRoles != 0 {
		return Authorized
	}
	return Denied(fmt.Sprintf("<@%s>, you need **Manage Roles or Administrator** permission to use this command.", member.User.ID))
}

// BotAuthorityFor computes the bot's role-management authority in a guild:
// whether it holds Manage Roles anywhere and the position of its highest role.
func BotAuthorityFor(s *discordgo.Session, guildID string) (shuffle.BotAuthority, error) {
	botMember, err := s.GuildMember(guildID, s.State.User.ID)
	if err != nil {
		return shuffle.BotAuthority{}, fmt.Errorf("failed to fetch bot member in guild %s: %w", guildID, err)
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return shuffle.BotAuthority{}, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}

	byID := make(map[string]*discordgo.Role, len(roles))
	for _, role := range roles {
		byID[role.ID] = role
	}

	var authority shuffle.BotAuthority
	for _, roleID := range botMember.Roles {
		role, ok := byID[roleID]
		if !ok {
			continue
		}
		if role.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageRoles) != 0 {
			authority.CanManageRoles = true
		}
		if role.Position > authority.TopRolePosition {
			authority.TopRolePosition = role.Position
		}
	}
	return authority, nil
}

// CanBotManageRole reports whether the bot may add or remove the given role,
// with a user-facing reason when it may not.
func CanBotManageRole(authority shuffle.BotAuthority, guildID string, role *discordgo.Role) Authority {
	if !authority.CanManageRoles {
		return Denied(fmt.Sprintf("I cannot manage **%s**: I am missing the **Manage Roles** permission.", role.Name))
	}
	if role.ID == guildID {
		return Denied("The @everyone role cannot be shuffled.")
	}
	if role.Position >= authority.TopRolePosition {
		return Denied(fmt.Sprintf("I cannot manage **%s**: it is at or above my highest role.", role.Name))
	}
	return Authorized
}
