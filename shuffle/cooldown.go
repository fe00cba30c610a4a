package shuffle

import "time"

// CooldownStore persists the last-shuffle timestamp per guild.
type CooldownStore interface {
	GetCooldown(guildID string) (time.Time, bool, error)
	SetCooldown(guildID, userID string, at time.Time) error
}

// CooldownGuard rate-limits shuffles per guild. It is consulted once, when a
// shuffle is requested, and recorded after execution; a confirmation that
// straddles the window is deliberately not re-checked.
type CooldownGuard struct {
	store  CooldownStore
	window time.Duration
}

// NewCooldownGuard wraps a store with a fixed cooldown window.
func NewCooldownGuard(store CooldownStore, window time.Duration) *CooldownGuard {
	return &CooldownGuard{store: store, window: window}
}

// Check returns the expiry instant and true while the guild is still inside
// the cooldown window, and a zero time and false once it may shuffle again.
func (c *CooldownGuard) Check(guildID string, now time.Time) (time.Time, bool, error) {
	last, ok, err := c.store.GetCooldown(guildID)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, nil
	}
	expiry := last.Add(c.window)
	if now.Before(expiry) {
		return expiry, true, nil
	}
	return time.Time{}, false, nil
}

// Record overwrites the guild's cooldown. It is called after every executed
// shuffle, failed grants included, because the attempt consumes the window.
func (c *CooldownGuard) Record(guildID, userID string, now time.Time) error {
	return c.store.SetCooldown(guildID, userID, now)
}
