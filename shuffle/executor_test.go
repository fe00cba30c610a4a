package shuffle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModifier struct {
	grants      []string
	revokes     []string
	failGrants  map[string]bool
	failRevokes map[string]bool
}

func key(userID, roleID string) string {
	return fmt.Sprintf("%s:%s", userID, roleID)
}

func (m *fakeModifier) GrantRole(guildID, userID, roleID string) error {
	m.grants = append(m.grants, key(userID, roleID))
	if m.failGrants[key(userID, roleID)] {
		return errors.New("missing permissions")
	}
	return nil
}

func (m *fakeModifier) RevokeRole(guildID, userID, roleID string) error {
	m.revokes = append(m.revokes, key(userID, roleID))
	if m.failRevokes[key(userID, roleID)] {
		return errors.New("missing permissions")
	}
	return nil
}

func fixedPlan() *Plan {
	roles := []Role{
		{ID: "r1", Name: "Red", Members: []string{"u1", "u2"}},
		{ID: "r2", Name: "Blue", Members: []string{"u2", "u3", "u4"}},
	}
	return &Plan{
		Roles:        roles,
		Participants: []string{"u1", "u2", "u3", "u4"},
		Assignments: map[string][]string{
			"r1": {"u3", "u1"},
			"r2": {"u4", "u2"},
		},
	}
}

func TestExecuteRevokesEveryHeldRole(t *testing.T) {
	mod := &fakeModifier{}
	result := NewExecutor("g1", mod).Execute(fixedPlan())

	// u2 held both shuffleable roles and must lose both.
	assert.ElementsMatch(t, []string{
		key("u1", "r1"),
		key("u2", "r1"),
		key("u2", "r2"),
		key("u3", "r2"),
		key("u4", "r2"),
	}, mod.revokes)

	assert.Equal(t, 4, result.Succeeded)
	assert.Empty(t, result.Failures)
	assert.Equal(t, 4, result.Participants)
}

func TestExecuteAccumulatesGrantFailures(t *testing.T) {
	mod := &fakeModifier{failGrants: map[string]bool{
		key("u3", "r1"): true,
		key("u2", "r2"): true,
	}}
	result := NewExecutor("g1", mod).Execute(fixedPlan())

	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, 4, result.Succeeded+len(result.Failures), "counts must sum to attempted grants")
	assert.Len(t, mod.grants, 4, "a failed grant must not abort the pass")

	for _, failure := range result.Failures {
		assert.Equal(t, "missing permissions", failure.Reason)
		assert.NotEmpty(t, failure.RoleName)
	}
}

func TestExecuteRevokeFailuresDoNotAbort(t *testing.T) {
	mod := &fakeModifier{failRevokes: map[string]bool{
		key("u1", "r1"): true,
		key("u2", "r2"): true,
	}}
	result := NewExecutor("g1", mod).Execute(fixedPlan())

	assert.Len(t, mod.revokes, 5, "every revoke must still be attempted")
	assert.Len(t, mod.grants, 4, "the assign pass must still run")
	assert.Equal(t, 4, result.Succeeded)
}
