package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"role-shuffler/model"
)

// AppendShuffleHistory writes one audit record for an executed shuffle.
// History is write-once; nothing in the bot ever mutates or deletes entries.
func AppendShuffleHistory(db *sqlx.DB, guildID, triggeredBy string, usersAffected int, roleNames []string, now time.Time) error {
	names, err := json.Marshal(roleNames)
	if err != nil {
		return fmt.Errorf("failed to encode role names: %w", err)
	}

	query := `INSERT INTO shuffle_history (guild_id, triggered_by, users_affected, roles_shuffled, timestamp)
	          VALUES (?, ?, ?, ?, ?)`
	_, err = db.Exec(query, guildID, triggeredBy, usersAffected, string(names), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert shuffle history for guild %s: %w", guildID, err)
	}
	return nil
}

// GetShuffleHistory returns the most recent shuffle records for a guild,
// newest first.
func GetShuffleHistory(db *sqlx.DB, guildID string, limit int) ([]model.ShuffleHistoryEntry, error) {
	var entries []model.ShuffleHistoryEntry
	query := `SELECT id, guild_id, triggered_by, users_affected, roles_shuffled, timestamp
	          FROM shuffle_history WHERE guild_id = ? ORDER BY timestamp DESC, id DESC LIMIT ?`
	err := db.Select(&entries, query, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get shuffle history for guild %s: %w", guildID, err)
	}
	return entries, nil
}

// DecodeRoleNames unpacks the JSON role-name list stored on a history entry.
func DecodeRoleNames(entry model.ShuffleHistoryEntry) []string {
	var names []string
	if err := json.Unmarshal([]byte(entry.RolesShuffled), &names); err != nil {
		return nil
	}
	return names
}
