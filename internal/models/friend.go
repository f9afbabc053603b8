package models

// FriendStatus is the lifecycle state of a friend relationship.
// Only FriendAccepted is reachable today; Pending and Declined are reserved
// for a future request/approval flow.
type FriendStatus string

const (
	FriendAccepted FriendStatus = "accepted"
	FriendPending  FriendStatus = "pending"
	FriendDeclined FriendStatus = "declined"
)

// Friend is a directed relationship record: it belongs to OwnerID and is
// never visible to any other user.
type Friend struct {
	// ID is the unique identifier for the friend record (UUID format).
	ID string `json:"id"`

	// OwnerID is the user who owns this record.
	OwnerID string `json:"userId"`

	// Name is a free-text display name chosen by the owner.
	Name string `json:"name"`

	Status FriendStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`
}
