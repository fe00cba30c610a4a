package model

// ShuffleableRole is a role an admin registered for shuffling, unique per
// (guild_id, role_id).
type ShuffleableRole struct {
	GuildID   string `db:"guild_id"`
	RoleID    string `db:"role_id"`
	RoleName  string `db:"role_name"`
	AddedBy   string `db:"added_by"`
	CreatedAt int64  `db:"created_at"`
}

// ShuffleCooldown tracks the last completed shuffle per guild. One live row
// per guild, overwritten on every shuffle.
type ShuffleCooldown struct {
	GuildID     string `db:"guild_id"`
	LastShuffle int64  `db:"last_shuffle"`
	TriggeredBy string `db:"triggered_by"`
}

// ShuffleHistoryEntry is an append-only audit record of one executed shuffle.
// RolesShuffled holds the role names as a JSON array.
type ShuffleHistoryEntry struct {
	ID            int64  `db:"id"`
	GuildID       string `db:"guild_id"`
	TriggeredBy   string `db:"triggered_by"`
	UsersAffected int    `db:"users_affected"`
	RolesShuffled string `db:"roles_shuffled"`
	Timestamp     int64  `db:"timestamp"`
}

// Guild mirrors a server the bot is a member of.
type Guild struct {
	GuildID   string `db:"guild_id"`
	GuildName string `db:"guild_name"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
