package settlement

import (
	"fmt"

	"github.com/evenshare/evenshare/internal/models"
)

// Summary aggregates one user's position across a set of events.
type Summary struct {
	TotalOwed  float64 `json:"totalOwed"`
	TotalOwing float64 `json:"totalOwing"`
	NetBalance float64 `json:"netBalance"`
	EventCount int     `json:"eventCount"`
}

// EventDetail is the per-event breakdown behind a Summary.
type EventDetail struct {
	EventID          string  `json:"eventId"`
	EventName        string  `json:"eventName"`
	TotalCost        float64 `json:"totalCost"`
	UserContribution float64 `json:"userContribution"`
	EqualShare       float64 `json:"equalShare"`
	Balance          float64 `json:"balance"`
}

// Summarize folds the user's balance over events, in the given order.
//
// Every event must carry a participant entry for userID; callers filter
// creator-only events out before calling. An event without the user's entry
// fails with ErrNotAParticipant rather than being skipped, so a bad caller
// surfaces instead of silently under-counting. The fold is deterministic:
// the same events in the same order always produce identical output, and
// details preserve the input order.
func Summarize(events []*models.Event, userID string) (Summary, []EventDetail, error) {
	summary := Summary{EventCount: len(events)}
	details := make([]EventDetail, 0, len(events))

	for _, event := range events {
		balances, err := EventBalances(event)
		if err != nil {
			return Summary{}, nil, fmt.Errorf("event %s: %w", event.ID, err)
		}

		found := false
		for _, b := range balances {
			if b.UserID != userID {
				continue
			}
			found = true

			pos := classify(b.Balance)
			summary.TotalOwed += pos.Owed
			summary.TotalOwing += pos.Owing

			details = append(details, EventDetail{
				EventID:          event.ID,
				EventName:        event.Name,
				TotalCost:        event.TotalCost,
				UserContribution: b.Contribution,
				EqualShare:       b.Contribution - b.Balance,
				Balance:          b.Balance,
			})
			break
		}
		if !found {
			return Summary{}, nil, fmt.Errorf("event %s: %w", event.ID, ErrNotAParticipant)
		}
	}

	summary.NetBalance = summary.TotalOwed - summary.TotalOwing
	return summary, details, nil
}
