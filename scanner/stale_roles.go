package scanner

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"role-shuffler/utils/database"
)

// CleanStaleRoles walks every guild the bot is in and unregisters shuffleable
// roles that no longer exist on the platform. Deleted roles are harmless at
// shuffle time, since the resolver drops them anyway; this sweep just keeps
// the config listing honest.
func CleanStaleRoles(s *discordgo.Session, db *sqlx.DB) {
	for _, guild := range s.State.Guilds {
		records, err := database.GetShuffleableRoles(db, guild.ID)
		if err != nil {
			log.Printf("Error getting shuffleable roles for guild %s: %v", guild.ID, err)
			continue
		}
		if len(records) == 0 {
			continue
		}

		roles, err := s.GuildRoles(guild.ID)
		if err != nil {
			log.Printf("Error fetching roles for guild %s: %v", guild.ID, err)
			continue
		}
		live := make(map[string]bool, len(roles))
		for _, role := range roles {
			live[role.ID] = true
		}

		for _, record := range records {
			if live[record.RoleID] {
				continue
			}
			removed, err := database.RemoveShuffleableRole(db, guild.ID, record.RoleID)
			if err != nil {
				log.Printf("Error removing stale role %s in guild %s: %v", record.RoleID, guild.ID, err)
				continue
			}
			if removed {
				log.Printf("Removed stale shuffleable role %s (%s) in guild %s", record.RoleName, record.RoleID, guild.ID)
			}
		}
	}
}
