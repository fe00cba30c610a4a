package shuffle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCooldownStore struct {
	last map[string]time.Time
	by   map[string]string
}

func newMemoryCooldownStore() *memoryCooldownStore {
	return &memoryCooldownStore{
		last: make(map[string]time.Time),
		by:   make(map[string]string),
	}
}

func (s *memoryCooldownStore) GetCooldown(guildID string) (time.Time, bool, error) {
	at, ok := s.last[guildID]
	return at, ok, nil
}

func (s *memoryCooldownStore) SetCooldown(guildID, userID string, at time.Time) error {
	s.last[guildID] = at
	s.by[guildID] = userID
	return nil
}

func TestCooldownGuardWindow(t *testing.T) {
	store := newMemoryCooldownStore()
	guard := NewCooldownGuard(store, 5*time.Minute)
	t0 := time.Unix(1_700_000_000, 0)

	_, active, err := guard.Check("g1", t0)
	require.NoError(t, err)
	assert.False(t, active, "fresh guild must not be on cooldown")

	require.NoError(t, guard.Record("g1", "alice", t0))

	expiry, active, err := guard.Check("g1", t0.Add(4*time.Minute+59*time.Second))
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, t0.Add(5*time.Minute), expiry)

	_, active, err = guard.Check("g1", t0.Add(5*time.Minute))
	require.NoError(t, err)
	assert.False(t, active, "cooldown must end exactly at the window boundary")
}

func TestCooldownGuardIsPerGuild(t *testing.T) {
	guard := NewCooldownGuard(newMemoryCooldownStore(), 5*time.Minute)
	t0 := time.Unix(1_700_000_000, 0)

	require.NoError(t, guard.Record("g1", "alice", t0))

	_, active, err := guard.Check("g2", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, active)
}

func TestCooldownGuardRecordOverwrites(t *testing.T) {
	store := newMemoryCooldownStore()
	guard := NewCooldownGuard(store, 5*time.Minute)
	t0 := time.Unix(1_700_000_000, 0)

	require.NoError(t, guard.Record("g1", "alice", t0))
	require.NoError(t, guard.Record("g1", "bob", t0.Add(10*time.Minute)))

	expiry, active, err := guard.Check("g1", t0.Add(11*time.Minute))
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, t0.Add(15*time.Minute), expiry)
	assert.Equal(t, "bob", store.by["g1"])
}
