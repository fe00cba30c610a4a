package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"role-shuffler/model"
)

// AddShuffleableRole registers a role for shuffling. It returns false when
// the role was already registered for the guild.
func AddShuffleableRole(db *sqlx.DB, record model.ShuffleableRole) (bool, error) {
	query := `INSERT INTO shuffleable_roles (guild_id, role_id, role_name, added_by, created_at)
	          VALUES (:guild_id, :role_id, :role_name, :added_by, :created_at)
	          ON CONFLICT(guild_id, role_id) DO NOTHING`

	result, err := db.NamedExec(query, record)
	if err != nil {
		return false, fmt.Errorf("failed to insert shuffleable role: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected for role %s: %w", record.RoleID, err)
	}
	return rowsAffected > 0, nil
}

// RemoveShuffleableRole unregisters a role. It returns false when the role
// was not registered.
func RemoveShuffleableRole(db *sqlx.DB, guildID, roleID string) (bool, error) {
	result, err := db.Exec("DELETE FROM shuffleable_roles WHERE guild_id = ? AND role_id = ?", guildID, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to remove shuffleable role %s: %w", roleID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected for role %s: %w", roleID, err)
	}
	return rowsAffected > 0, nil
}

// GetShuffleableRoles returns the registered roles of a guild ordered by
// name. This order is also the assignment order used by the planner.
func GetShuffleableRoles(db *sqlx.DB, guildID string) ([]model.ShuffleableRole, error) {
	var records []model.ShuffleableRole
	query := "SELECT guild_id, role_id, role_name, added_by, created_at FROM shuffleable_roles WHERE guild_id = ? ORDER BY role_name"
	err := db.Select(&records, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shuffleable roles for guild %s: %w", guildID, err)
	}
	return records, nil
}

// NewShuffleableRole builds a record with the creation time set.
func NewShuffleableRole(guildID, roleID, roleName, addedBy string, now time.Time) model.ShuffleableRole {
	return model.ShuffleableRole{
		GuildID:   guildID,
		RoleID:    roleID,
		RoleName:  roleName,
		AddedBy:   addedBy,
		CreatedAt: now.Unix(),
	}
}
