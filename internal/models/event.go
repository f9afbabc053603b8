package models

// Participant is one user's stake within an Event. The Name is a display-name
// snapshot taken when the entry was written, not a live lookup.
type Participant struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
}

// Event is a shared-expense record. CreatedBy is fixed at creation and is the
// sole holder of update/delete rights; participants may read but not mutate.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string `json:"id"`

	Name string `json:"name"`

	// Date is the day the expense happened (YYYY-MM-DD).
	Date string `json:"date"`

	// TotalCost is the stated total. Balance math always recomputes the share
	// base from participant contributions, so drift here never skews results.
	TotalCost float64 `json:"totalCost"`

	CreatedBy string `json:"createdBy"`

	// Participants is ordered; listing and summary output preserve this order.
	Participants []Participant `json:"participants"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// EventPatch is a partial event update. Nil fields are left unchanged.
// A non-nil Participants pointer replaces the whole list.
type EventPatch struct {
	Name         *string        `json:"name,omitempty"`
	Date         *string        `json:"date,omitempty"`
	TotalCost    *float64       `json:"totalCost,omitempty"`
	Participants *[]Participant `json:"participants,omitempty"`
}

// HasParticipant reports whether userID has a contribution entry on the event.
func (e *Event) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// IsMember reports whether userID is the creator or a participant.
func (e *Event) IsMember(userID string) bool {
	return e.CreatedBy == userID || e.HasParticipant(userID)
}
