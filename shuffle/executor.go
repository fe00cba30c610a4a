package shuffle

import "log"

// RoleModifier is the narrow surface of the platform needed to apply a plan.
type RoleModifier interface {
	GrantRole(guildID, userID, roleID string) error
	RevokeRole(guildID, userID, roleID string) error
}

// Failure records one grant that did not go through.
type Failure struct {
	UserID   string
	RoleID   string
	RoleName string
	Reason   string
}

// Result aggregates the outcome of one executed plan. Succeeded plus
// len(Failures) equals the number of attempted grants.
type Result struct {
	Succeeded    int
	Failures     []Failure
	Participants int
}

// Executor applies a shuffle plan against a guild. Every (user, role) call is
// attempted independently: a failed revoke or grant is recorded and the
// remaining operations still run, so a partially applied shuffle is a normal
// terminal outcome rather than an abort.
type Executor struct {
	guildID  string
	modifier RoleModifier
}

// NewExecutor creates an executor for one guild.
func NewExecutor(guildID string, modifier RoleModifier) *Executor {
	return &Executor{guildID: guildID, modifier: modifier}
}

// Execute runs the two passes of a shuffle. The revoke pass strips every
// shuffleable role each participant currently holds, not just the one they
// are leaving, so nobody keeps a stale role after holding several. The assign
// pass then grants the planned subsets, re-granting unchanged roles
// unconditionally.
func (e *Executor) Execute(plan *Plan) Result {
	held := make(map[string]map[string]bool, len(plan.Roles))
	for _, role := range plan.Roles {
		members := make(map[string]bool, len(role.Members))
		for _, userID := range role.Members {
			members[userID] = true
		}
		held[role.ID] = members
	}

	for _, userID := range plan.Participants {
		for _, role := range plan.Roles {
			if !held[role.ID][userID] {
				continue
			}
			if err := e.modifier.RevokeRole(e.guildID, userID, role.ID); err != nil {
				log.Printf("Failed to remove role %s from user %s: %v", role.ID, userID, err)
			}
		}
	}

	result := Result{Participants: len(plan.Participants)}
	for _, role := range plan.Roles {
		for _, userID := range plan.Assignments[role.ID] {
			if err := e.modifier.GrantRole(e.guildID, userID, role.ID); err != nil {
				log.Printf("Failed to add role %s to user %s: %v", role.ID, userID, err)
				result.Failures = append(result.Failures, Failure{
					UserID:   userID,
					RoleID:   role.ID,
					RoleName: role.Name,
					Reason:   err.Error(),
				})
				continue
			}
			result.Succeeded++
		}
	}
	return result
}
