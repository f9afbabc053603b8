// Package settlement computes equal-share balances for shared-expense events.
// Every function is a pure computation over its arguments: no storage access,
// no side effects, safe to call from any number of goroutines.
package settlement

import (
	"errors"

	"github.com/evenshare/evenshare/internal/models"
)

var (
	// ErrInvalidEvent marks an internal contract violation (an event with no
	// participants reaching the balance math), not a user input error.
	ErrInvalidEvent = errors.New("event has no participants")

	// ErrNotAParticipant is returned when balance output holds no entry for
	// the requested user.
	ErrNotAParticipant = errors.New("user is not a participant")
)

// ParticipantBalance is one participant's position relative to the equal
// share: positive balance means they overpaid and are owed money by the
// group, negative means they owe.
type ParticipantBalance struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
	Balance      float64 `json:"balance"`
}

// Position is the sign-based classification of a single balance. At most one
// of Owed and Owing is non-zero. This is a net position relative to the group
// average, not a pairwise debt edge.
type Position struct {
	Owed  float64 `json:"owed"`
	Owing float64 `json:"owing"`
}

// EventBalances computes each participant's balance against an equal split.
//
// The share base is the sum of participant contributions, recomputed here
// rather than trusted from the stored TotalCost, so any drift between the two
// reconciles in favor of what participants actually paid. Returns
// ErrInvalidEvent when the event has no participants (the equal share would
// be a division by zero). The input event is never mutated; output order
// matches participant order.
func EventBalances(event *models.Event) ([]ParticipantBalance, error) {
	n := len(event.Participants)
	if n == 0 {
		return nil, ErrInvalidEvent
	}

	var sum float64
	for _, p := range event.Participants {
		sum += p.Contribution
	}
	share := sum / float64(n)

	balances := make([]ParticipantBalance, 0, n)
	for _, p := range event.Participants {
		balances = append(balances, ParticipantBalance{
			UserID:       p.UserID,
			Name:         p.Name,
			Contribution: p.Contribution,
			Balance:      p.Contribution - share,
		})
	}
	return balances, nil
}

// OwedForUser classifies one participant's balance as owed (overpaid) or
// owing (underpaid). Returns ErrNotAParticipant when userID has no entry.
func OwedForUser(balances []ParticipantBalance, userID string) (Position, error) {
	for _, b := range balances {
		if b.UserID == userID {
			return classify(b.Balance), nil
		}
	}
	return Position{}, ErrNotAParticipant
}

func classify(balance float64) Position {
	switch {
	case balance > 0:
		return Position{Owed: balance}
	case balance < 0:
		return Position{Owing: -balance}
	default:
		return Position{}
	}
}
