package shuffle

import (
	"sync"
	"time"
)

// GateState is the lifecycle state of a confirmation gate.
type GateState int

const (
	StatePending GateState = iota
	StateConfirmed
	StateCancelled
	StateTimedOut
)

func (s GateState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	case StateTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// TransitionResult reports the outcome of a confirm/cancel attempt.
type TransitionResult int

const (
	// TransitionApplied means the gate moved to the requested terminal state.
	TransitionApplied TransitionResult = iota
	// TransitionNotInitiator means someone other than the initiator pressed
	// the button. The gate is unchanged.
	TransitionNotInitiator
	// TransitionClosed means the gate was already in a terminal state.
	TransitionClosed
)

// Gate holds one precomputed shuffle plan while the initiator decides whether
// to run it. It moves from Pending to exactly one of Confirmed, Cancelled or
// TimedOut; the timeout fires on its own via a deferred timer, so a gate can
// never stay pending forever even if nobody touches it again.
type Gate struct {
	GuildID     string
	InitiatorID string

	mu    sync.Mutex
	state GateState
	plan  *Plan
	timer *time.Timer
}

// NewGate creates a pending gate around plan. onTimeout runs at most once, in
// the timer's goroutine, if the window elapses with no decision.
func NewGate(guildID, initiatorID string, plan *Plan, timeout time.Duration, onTimeout func(*Gate)) *Gate {
	g := &Gate{
		GuildID:     guildID,
		InitiatorID: initiatorID,
		state:       StatePending,
		plan:        plan,
	}
	g.timer = time.AfterFunc(timeout, func() {
		if g.expire() && onTimeout != nil {
			onTimeout(g)
		}
	})
	return g
}

// Confirm attempts the Pending -> Confirmed transition. On success it returns
// the held plan; the plan is handed out exactly once.
func (g *Gate) Confirm(userID string) (*Plan, TransitionResult) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if userID != g.InitiatorID {
		return nil, TransitionNotInitiator
	}
	if g.state != StatePending {
		return nil, TransitionClosed
	}
	g.state = StateConfirmed
	g.timer.Stop()
	plan := g.plan
	g.plan = nil
	return plan, TransitionApplied
}

// Cancel attempts the Pending -> Cancelled transition and discards the plan.
func (g *Gate) Cancel(userID string) TransitionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if userID != g.InitiatorID {
		return TransitionNotInitiator
	}
	if g.state != StatePending {
		return TransitionClosed
	}
	g.state = StateCancelled
	g.timer.Stop()
	g.plan = nil
	return TransitionApplied
}

// expire performs the Pending -> TimedOut transition. It returns false when a
// decision already landed, so a late-firing timer is a no-op.
func (g *Gate) expire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePending {
		return false
	}
	g.state = StateTimedOut
	g.plan = nil
	return true
}

// State returns the current gate state.
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// GateRegistry tracks the live confirmation gate per guild. Only one shuffle
// may await confirmation in a guild at a time; a second initiation is rejected
// until the first gate reaches a terminal state and is removed.
type GateRegistry struct {
	mu    sync.Mutex
	gates map[string]*Gate
}

// NewGateRegistry creates an empty registry.
func NewGateRegistry() *GateRegistry {
	return &GateRegistry{gates: make(map[string]*Gate)}
}

// Add registers g as the live gate for its guild. It returns false if another
// gate is still pending there.
func (r *GateRegistry) Add(g *Gate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.gates[g.GuildID]; ok && existing.State() == StatePending {
		return false
	}
	r.gates[g.GuildID] = g
	return true
}

// Get returns the live gate for a guild, if any.
func (r *GateRegistry) Get(guildID string) (*Gate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gates[guildID]
	return g, ok
}

// Remove drops the gate for a guild once it has reached a terminal state.
func (r *GateRegistry) Remove(guildID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.gates, guildID)
}
