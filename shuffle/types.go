package shuffle

// Role is a read-only snapshot of a guild role taken at invocation start.
// It is never refreshed while a shuffle is awaiting confirmation.
type Role struct {
	ID       string
	Name     string
	Position int
	Members  []string
}

// GuildSnapshot captures the live roles of one guild at a point in time.
type GuildSnapshot struct {
	GuildID string
	Roles   map[string]Role
}

// BotAuthority describes what the bot is allowed to do in a guild.
type BotAuthority struct {
	CanManageRoles  bool
	TopRolePosition int
}

// CanManage reports whether the bot may mutate membership of the given role.
// The @everyone role shares its ID with the guild and is never manageable.
func (a BotAuthority) CanManage(guildID string, role Role) bool {
	if !a.CanManageRoles {
		return false
	}
	if role.ID == guildID {
		return false
	}
	return role.Position < a.TopRolePosition
}
