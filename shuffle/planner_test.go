package shuffle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRole(id string, members ...string) Role {
	return Role{ID: id, Name: "role-" + id, Position: 1, Members: members}
}

func rolesWithMembers(k, n int) []Role {
	roles := make([]Role, k)
	for i := range roles {
		roles[i] = makeRole(fmt.Sprintf("r%d", i))
	}
	for u := 0; u < n; u++ {
		idx := u % k
		roles[idx].Members = append(roles[idx].Members, fmt.Sprintf("u%d", u))
	}
	return roles
}

func TestBuildPlanRequiresTwoRoles(t *testing.T) {
	_, err := BuildPlan(nil)
	assert.ErrorIs(t, err, ErrInsufficientRoles)

	_, err = BuildPlan([]Role{makeRole("a", "u1")})
	assert.ErrorIs(t, err, ErrInsufficientRoles)
}

func TestBuildPlanBalancedSizes(t *testing.T) {
	cases := []struct{ n, k int }{
		{2, 2}, {3, 2}, {4, 2}, {5, 3}, {6, 3}, {7, 3}, {10, 4}, {11, 4}, {100, 7}, {3, 5},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d k=%d", tc.n, tc.k), func(t *testing.T) {
			roles := rolesWithMembers(tc.k, tc.n)
			plan, err := BuildPlan(roles)
			require.NoError(t, err)

			base := tc.n / tc.k
			extra := tc.n % tc.k
			for i, role := range plan.Roles {
				want := base
				if i < extra {
					want++
				}
				assert.Len(t, plan.Assignments[role.ID], want, "role index %d", i)
			}
		})
	}
}

func TestBuildPlanPartitionsParticipants(t *testing.T) {
	roles := rolesWithMembers(3, 11)
	plan, err := BuildPlan(roles)
	require.NoError(t, err)

	assigned := make(map[string]int)
	for _, subset := range plan.Assignments {
		for _, userID := range subset {
			assigned[userID]++
		}
	}
	assert.Len(t, assigned, len(plan.Participants))
	for userID, count := range assigned {
		assert.Equal(t, 1, count, "user %s assigned more than once", userID)
	}
	for _, userID := range plan.Participants {
		assert.Contains(t, assigned, userID)
	}
}

func TestBuildPlanDeduplicatesMembers(t *testing.T) {
	roles := []Role{
		makeRole("a", "u1", "u2"),
		makeRole("b", "u2", "u3"),
	}
	plan, err := BuildPlan(roles)
	require.NoError(t, err)

	assert.Len(t, plan.Participants, 3)
	total := 0
	for _, subset := range plan.Assignments {
		total += len(subset)
	}
	assert.Equal(t, 3, total)
}

func TestBuildPlanThreeRolesSixUsers(t *testing.T) {
	roles := []Role{
		makeRole("a", "A", "B"),
		makeRole("b", "C"),
		makeRole("c", "D", "E", "F"),
	}
	plan, err := BuildPlan(roles)
	require.NoError(t, err)

	for _, role := range roles {
		assert.Len(t, plan.Assignments[role.ID], 2)
	}
}

func TestBuildPlanTwoRolesFourUsers(t *testing.T) {
	roles := []Role{
		makeRole("a", "A", "B", "C"),
		makeRole("b", "D"),
	}
	plan, err := BuildPlan(roles)
	require.NoError(t, err)

	assert.Len(t, plan.Assignments["a"], 2)
	assert.Len(t, plan.Assignments["b"], 2)
}
