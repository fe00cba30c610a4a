package shuffle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := BuildPlan([]Role{
		makeRole("a", "u1", "u2"),
		makeRole("b", "u3"),
	})
	require.NoError(t, err)
	return plan
}

func TestGateConfirmByInitiator(t *testing.T) {
	gate := NewGate("g1", "alice", testPlan(t), time.Minute, nil)

	plan, result := gate.Confirm("alice")
	assert.Equal(t, TransitionApplied, result)
	assert.NotNil(t, plan)
	assert.Equal(t, StateConfirmed, gate.State())

	// The plan is handed out exactly once.
	plan, result = gate.Confirm("alice")
	assert.Equal(t, TransitionClosed, result)
	assert.Nil(t, plan)
}

func TestGateRejectsOtherUsers(t *testing.T) {
	gate := NewGate("g1", "alice", testPlan(t), time.Minute, nil)

	plan, result := gate.Confirm("bob")
	assert.Equal(t, TransitionNotInitiator, result)
	assert.Nil(t, plan)
	assert.Equal(t, StatePending, gate.State())

	assert.Equal(t, TransitionNotInitiator, gate.Cancel("bob"))
	assert.Equal(t, StatePending, gate.State())
}

func TestGateCancel(t *testing.T) {
	gate := NewGate("g1", "alice", testPlan(t), time.Minute, nil)

	assert.Equal(t, TransitionApplied, gate.Cancel("alice"))
	assert.Equal(t, StateCancelled, gate.State())

	plan, result := gate.Confirm("alice")
	assert.Equal(t, TransitionClosed, result)
	assert.Nil(t, plan)
}

func TestGateTimesOutOnItsOwn(t *testing.T) {
	var fired atomic.Int32
	gate := NewGate("g1", "alice", testPlan(t), 20*time.Millisecond, func(g *Gate) {
		fired.Add(1)
	})

	assert.Eventually(t, func() bool {
		return gate.State() == StateTimedOut
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// A decision after the timeout is rejected.
	plan, result := gate.Confirm("alice")
	assert.Equal(t, TransitionClosed, result)
	assert.Nil(t, plan)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "timeout fired more than once")
}

func TestGateDecisionBeatsTimeout(t *testing.T) {
	var fired atomic.Int32
	gate := NewGate("g1", "alice", testPlan(t), 20*time.Millisecond, func(g *Gate) {
		fired.Add(1)
	})

	_, result := gate.Confirm("alice")
	require.Equal(t, TransitionApplied, result)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, StateConfirmed, gate.State())
}

func TestGateRegistrySingleLiveGatePerGuild(t *testing.T) {
	registry := NewGateRegistry()

	first := NewGate("g1", "alice", testPlan(t), time.Minute, nil)
	require.True(t, registry.Add(first))

	second := NewGate("g1", "bob", testPlan(t), time.Minute, nil)
	assert.False(t, registry.Add(second), "second pending gate accepted for the same guild")

	other := NewGate("g2", "carol", testPlan(t), time.Minute, nil)
	assert.True(t, registry.Add(other), "gates in different guilds must not interfere")

	// Once the first gate is decided it can be replaced.
	first.Cancel("alice")
	assert.True(t, registry.Add(second))

	got, ok := registry.Get("g1")
	require.True(t, ok)
	assert.Same(t, second, got)

	registry.Remove("g1")
	_, ok = registry.Get("g1")
	assert.False(t, ok)
}
