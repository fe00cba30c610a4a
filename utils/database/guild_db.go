package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// UpsertGuild records a guild the bot is a member of, refreshing its name.
func UpsertGuild(db *sqlx.DB, guildID, guildName string, now time.Time) error {
	query := `INSERT INTO guilds (guild_id, guild_name, created_at, updated_at)
	          VALUES (?, ?, ?, ?)
	          ON CONFLICT(guild_id) DO UPDATE SET guild_name = excluded.guild_name, updated_at = excluded.updated_at`

	_, err := db.Exec(query, guildID, guildName, now.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert guild %s: %w", guildID, err)
	}
	return nil
}

// RemoveGuild deletes a guild and, via cascade, its roles, cooldown and
// history.
func RemoveGuild(db *sqlx.DB, guildID string) error {
	_, err := db.Exec("DELETE FROM guilds WHERE guild_id = ?", guildID)
	if err != nil {
		return fmt.Errorf("failed to remove guild %s: %w", guildID, err)
	}
	return nil
}
