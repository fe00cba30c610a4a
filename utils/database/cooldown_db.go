package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"role-shuffler/model"
)

// CooldownStore is the sqlx-backed implementation of shuffle.CooldownStore.
type CooldownStore struct {
	DB *sqlx.DB
}

// GetCooldown returns the last shuffle time of a guild, if one is recorded.
func (s *CooldownStore) GetCooldown(guildID string) (time.Time, bool, error) {
	var record model.ShuffleCooldown
	query := "SELECT guild_id, last_shuffle, triggered_by FROM shuffle_cooldowns WHERE guild_id = ?"
	err := s.DB.Get(&record, query, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get cooldown for guild %s: %w", guildID, err)
	}
	return time.Unix(record.LastShuffle, 0), true, nil
}

// SetCooldown overwrites the guild's cooldown record.
func (s *CooldownStore) SetCooldown(guildID, userID string, at time.Time) error {
	query := `INSERT INTO shuffle_cooldowns (guild_id, last_shuffle, triggered_by)
	          VALUES (?, ?, ?)
	          ON CONFLICT(guild_id) DO UPDATE SET last_shuffle = excluded.last_shuffle, triggered_by = excluded.triggered_by`

	_, err := s.DB.Exec(query, guildID, at.Unix(), userID)
	if err != nil {
		return fmt.Errorf("failed to set cooldown for guild %s: %w", guildID, err)
	}
	return nil
}
