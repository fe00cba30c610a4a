package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"role-shuffler/shuffle"
)

const memberPageSize = 1000

// buildGuildSnapshot takes a one-off read snapshot of a guild's roles and
// their members. The shuffle core works only against this snapshot, so the
// previewed plan cannot drift while the initiator decides.
func buildGuildSnapshot(s *discordgo.Session, guildID string) (*shuffle.GuildSnapshot, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}

	snapshot := &shuffle.GuildSnapshot{
		GuildID: guildID,
		Roles:   make(map[string]shuffle.Role, len(roles)),
	}
	for _, role := range roles {
		snapshot.Roles[role.ID] = shuffle.Role{
			ID:       role.ID,
			Name:     role.Name,
			Position: role.Position,
		}
	}

	after := ""
	for {
		members, err := s.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch members for guild %s: %w", guildID, err)
		}
		if len(members) == 0 {
			break
		}
		for _, member := range members {
			for _, roleID := range member.Roles {
				role, ok := snapshot.Roles[roleID]
				if !ok {
					continue
				}
				role.Members = append(role.Members, member.User.ID)
				snapshot.Roles[roleID] = role
			}
			after = member.User.ID
		}
		if len(members) < memberPageSize {
			break
		}
	}

	return snapshot, nil
}

// guildOwnerID resolves the owner of a guild, preferring the state cache.
func guildOwnerID(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil && guild.OwnerID != "" {
		return guild.OwnerID
	}
	guild, err := s.Guild(guildID)
	if err != nil {
		return ""
	}
	return guild.OwnerID
}
