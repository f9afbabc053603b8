// Package access holds the authorization predicates for events and friend
// records. Every rule is a pure function of (requester, resource); there is
// no capability list and no hidden state.
package access

import (
	"errors"

	"github.com/evenshare/evenshare/internal/models"
)

// ErrDenied marks an authenticated requester that is not permitted to act on
// the resource. Callers must keep it distinct from not-found: denied means
// the resource exists and the requester may know that.
var ErrDenied = errors.New("access denied")

// CanReadEvent permits the creator and every participant.
func CanReadEvent(requesterID string, event *models.Event) bool {
	return event.IsMember(requesterID)
}

// CanModifyEvent permits only the creator. Participants read but never
// mutate or delete.
func CanModifyEvent(requesterID string, event *models.Event) bool {
	return event.CreatedBy == requesterID
}

// CanAccessFriend permits only the record's owner, for reads and mutations
// alike.
func CanAccessFriend(requesterID string, friend *models.Friend) bool {
	return friend.OwnerID == requesterID
}

// IsSharedEvent reports whether an event is visible to both the requester and
// the friend: each must be its creator or a participant.
func IsSharedEvent(requesterID, friendUserID string, event *models.Event) bool {
	return event.IsMember(requesterID) && event.IsMember(friendUserID)
}
