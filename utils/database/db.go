package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the bot database and ensures all tables exist.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// Pin a single connection so the foreign_keys pragma holds for every
	// statement (and so an in-memory database is not silently recreated per
	// pool connection).
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, err
	}
	return db, nil
}

func createTables(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS guilds (
		guild_id TEXT NOT NULL PRIMARY KEY,
		guild_name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shuffleable_roles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL REFERENCES guilds(guild_id) ON DELETE CASCADE,
		role_id TEXT NOT NULL,
		role_name TEXT NOT NULL,
		added_by TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		UNIQUE(guild_id, role_id)
	);

	CREATE TABLE IF NOT EXISTS shuffle_cooldowns (
		guild_id TEXT NOT NULL PRIMARY KEY REFERENCES guilds(guild_id) ON DELETE CASCADE,
		last_shuffle INTEGER NOT NULL,
		triggered_by TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shuffle_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL REFERENCES guilds(guild_id) ON DELETE CASCADE,
		triggered_by TEXT NOT NULL,
		users_affected INTEGER NOT NULL,
		roles_shuffled TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
