// Package storage provides abstractions for data storage.
package storage

import (
	"context"
	"errors"

	"github.com/evenshare/evenshare/internal/models"
)

var (
	// ErrNotFound marks an absent record or relationship. Callers surface it
	// as 404 and must never conflate it with an authorization denial.
	ErrNotFound = errors.New("record not found")

	// ErrConflict marks a uniqueness violation on create (duplicate email or
	// username).
	ErrConflict = errors.New("record already exists")
)

// Stats reports record counts per store, for the health endpoint.
type Stats struct {
	Users   int `json:"users"`
	Friends int `json:"friends"`
	Events  int `json:"events"`
}

// Store defines the persistence operations for users, friends and events.
// This abstraction keeps the backend pluggable (in-memory, SQLite, ...)
// without changing the service layer.
//
// Mutations are whole-record replace-or-append, atomic within one call.
// Patch-based updates apply only the fields present in the patch; absent
// fields are a no-op, not a reset. List order is stable insertion order.
type Store interface {
	// CreateUser persists a new user. A missing ID or CreatedAt is populated
	// by the store. Returns ErrConflict when the email or username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// FindUserByEmailOrUsername retrieves a user whose email or username
	// matches key.
	FindUserByEmailOrUsername(ctx context.Context, key string) (*models.User, error)

	// UpdateUserProfile applies the patch to the user and returns the
	// updated record.
	UpdateUserProfile(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)

	// ListFriends returns the friend records owned by ownerID, in insertion
	// order.
	ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error)

	// AddFriend persists a new friend record.
	AddFriend(ctx context.Context, friend *models.Friend) error

	// GetFriend retrieves a friend record by ID, scoped to its owner.
	// Records owned by anyone else are reported as ErrNotFound.
	GetFriend(ctx context.Context, ownerID, friendID string) (*models.Friend, error)

	// DeleteFriend removes a friend record, scoped to its owner.
	DeleteFriend(ctx context.Context, ownerID, friendID string) error

	// CreateEvent persists a new event with its participants.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event by ID, participants included.
	GetEvent(ctx context.Context, id string) (*models.Event, error)

	// ListEvents returns events matching the filter, in insertion order.
	// A nil filter matches everything.
	ListEvents(ctx context.Context, filter func(*models.Event) bool) ([]*models.Event, error)

	// UpdateEvent applies the patch to the event, bumps UpdatedAt and
	// returns the updated record.
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)

	// DeleteEvent removes an event and its participants.
	DeleteEvent(ctx context.Context, id string) error

	// Stats reports record counts.
	Stats(ctx context.Context) (Stats, error)

	// Close releases any resources held by the store.
	Close() error
}
