package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"role-shuffler/model"
)

func configFor(roleIDs ...string) []model.ShuffleableRole {
	records := make([]model.ShuffleableRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		records = append(records, model.ShuffleableRole{GuildID: "g1", RoleID: id, RoleName: "role-" + id})
	}
	return records
}

func TestResolveRolesFilters(t *testing.T) {
	snapshot := &GuildSnapshot{
		GuildID: "g1",
		Roles: map[string]Role{
			"g1":       {ID: "g1", Name: "@everyone", Position: 0, Members: []string{"u1", "u2"}},
			"ok1":      {ID: "ok1", Name: "Red", Position: 3, Members: []string{"u1"}},
			"ok2":      {ID: "ok2", Name: "Blue", Position: 2, Members: []string{"u2", "u3"}},
			"empty":    {ID: "empty", Name: "Ghost town", Position: 1},
			"too-high": {ID: "too-high", Name: "Admin", Position: 10, Members: []string{"u4"}},
		},
	}
	authority := BotAuthority{CanManageRoles: true, TopRolePosition: 5}

	eligible := ResolveRoles(configFor("ok1", "missing", "g1", "too-high", "empty", "ok2"), snapshot, authority)

	ids := make([]string, 0, len(eligible))
	for _, role := range eligible {
		ids = append(ids, role.ID)
	}
	assert.Equal(t, []string{"ok1", "ok2"}, ids, "survivors must keep configured order")
}

func TestResolveRolesWithoutManagePermission(t *testing.T) {
	snapshot := &GuildSnapshot{
		GuildID: "g1",
		Roles: map[string]Role{
			"r1": {ID: "r1", Position: 1, Members: []string{"u1"}},
		},
	}
	authority := BotAuthority{CanManageRoles: false, TopRolePosition: 5}

	assert.Empty(t, ResolveRoles(configFor("r1"), snapshot, authority))
}

func TestBotAuthorityCanManage(t *testing.T) {
	authority := BotAuthority{CanManageRoles: true, TopRolePosition: 5}

	assert.True(t, authority.CanManage("g1", Role{ID: "r1", Position: 4}))
	assert.False(t, authority.CanManage("g1", Role{ID: "r1", Position: 5}), "equal position is not strictly below")
	assert.False(t, authority.CanManage("g1", Role{ID: "g1", Position: 0}), "@everyone is never manageable")
}
