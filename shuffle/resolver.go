package shuffle

import "role-shuffler/model"

// ResolveRoles maps the configured shuffleable roles of a guild onto live
// role snapshots, in configured order. Roles that no longer exist, that the
// bot cannot manage, or that have no members are dropped without error; the
// caller decides whether the surviving set is large enough to shuffle.
func ResolveRoles(configured []model.ShuffleableRole, snapshot *GuildSnapshot, authority BotAuthority) []Role {
	eligible := make([]Role, 0, len(configured))
	for _, record := range configured {
		role, ok := snapshot.Roles[record.RoleID]
		if !ok {
			continue
		}
		if !authority.CanManage(snapshot.GuildID, role) {
			continue
		}
		if len(role.Members) == 0 {
			continue
		}
		eligible = append(eligible, role)
	}
	return eligible
}
