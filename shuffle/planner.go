package shuffle

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInsufficientRoles is returned when fewer than two eligible roles remain
// after resolving; there is nothing meaningful to shuffle between.
var ErrInsufficientRoles = errors.New("at least 2 eligible roles with members are required")

// Plan is the committed outcome of one shuffle draw. It is computed once,
// before the initiator is asked to confirm, and is never recomputed: the
// distribution that gets executed is exactly the one that was previewed.
type Plan struct {
	Roles        []Role
	Participants []string
	Assignments  map[string][]string // role ID -> assigned user IDs
}

// BuildPlan deduplicates the members of the eligible roles, shuffles them and
// distributes them across the roles in order. With n participants and k roles
// the first n%k roles receive one extra member, so no two subsets differ in
// size by more than one. A user holding several shuffleable roles counts once,
// and may well be assigned a role they already had.
func BuildPlan(eligible []Role) (*Plan, error) {
	if len(eligible) < 2 {
		return nil, ErrInsufficientRoles
	}

	seen := make(map[string]bool)
	var participants []string
	for _, role := range eligible {
		for _, userID := range role.Members {
			if seen[userID] {
				continue
			}
			seen[userID] = true
			participants = append(participants, userID)
		}
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	base := len(participants) / len(eligible)
	extra := len(participants) % len(eligible)

	assignments := make(map[string][]string, len(eligible))
	next := 0
	for i, role := range eligible {
		count := base
		if i < extra {
			count++
		}
		assignments[role.ID] = participants[next : next+count]
		next += count
	}

	return &Plan{
		Roles:        eligible,
		Participants: participants,
		Assignments:  assignments,
	}, nil
}
