// Package memory provides an in-memory implementation of the storage.Store
// interface. Records live in maps keyed by ID, with separate insertion-order
// slices so listings are stable; a single RWMutex serializes mutation.
// There is no durability: the data lives and dies with the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with process-resident maps.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[string]*models.User
	userOrder []string

	friends     map[string]*models.Friend
	friendOrder []string

	events     map[string]*models.Event
	eventOrder []string
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]*models.User),
		friends: make(map[string]*models.Friend),
		events:  make(map[string]*models.Event),
	}
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error { return nil }

// CreateUser persists a new user, generating ID and CreatedAt if unset.
func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return storage.ErrConflict
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	stored := *user
	s.users[stored.ID] = &stored
	s.userOrder = append(s.userOrder, stored.ID)
	return nil
}

// GetUser retrieves a user by ID.
func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// FindUserByEmailOrUsername retrieves a user whose email or username matches.
func (s *MemoryStore) FindUserByEmailOrUsername(_ context.Context, key string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		user := s.users[id]
		if user.Email == key || user.Username == key {
			copied := *user
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

// UpdateUserProfile applies the patch field by field under the write lock.
func (s *MemoryStore) UpdateUserProfile(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.DOB != nil {
		user.DOB = *patch.DOB
	}
	if patch.PortraitURI != nil {
		user.PortraitURI = *patch.PortraitURI
	}

	copied := *user
	return &copied, nil
}

// ListFriends returns the owner's friend records in insertion order.
func (s *MemoryStore) ListFriends(_ context.Context, ownerID string) ([]models.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Friend{}
	for _, id := range s.friendOrder {
		if f := s.friends[id]; f.OwnerID == ownerID {
			out = append(out, *f)
		}
	}
	return out, nil
}

// AddFriend persists a new friend record, generating ID and CreatedAt if unset.
func (s *MemoryStore) AddFriend(_ context.Context, friend *models.Friend) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	stored := *friend
	s.friends[stored.ID] = &stored
	s.friendOrder = append(s.friendOrder, stored.ID)
	return nil
}

// GetFriend retrieves a friend record scoped to its owner.
func (s *MemoryStore) GetFriend(_ context.Context, ownerID, friendID string) (*models.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friend, ok := s.friends[friendID]
	if !ok || friend.OwnerID != ownerID {
		return nil, storage.ErrNotFound
	}
	copied := *friend
	return &copied, nil
}

// DeleteFriend removes a friend record scoped to its owner.
func (s *MemoryStore) DeleteFriend(_ context.Context, ownerID, friendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	friend, ok := s.friends[friendID]
	if !ok || friend.OwnerID != ownerID {
		return storage.ErrNotFound
	}

	delete(s.friends, friendID)
	s.friendOrder = removeID(s.friendOrder, friendID)
	return nil
}

// CreateEvent persists a new event, generating ID and timestamps if unset.
func (s *MemoryStore) CreateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if event.CreatedAt == 0 {
		event.CreatedAt = now
	}
	if event.UpdatedAt == 0 {
		event.UpdatedAt = now
	}

	s.events[event.ID] = cloneEvent(event)
	s.eventOrder = append(s.eventOrder, event.ID)
	return nil
}

// GetEvent retrieves an event by ID.
func (s *MemoryStore) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneEvent(event), nil
}

// ListEvents returns matching events in insertion order. Nil matches all.
func (s *MemoryStore) ListEvents(_ context.Context, filter func(*models.Event) bool) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Event{}
	for _, id := range s.eventOrder {
		event := s.events[id]
		if filter == nil || filter(event) {
			out = append(out, cloneEvent(event))
		}
	}
	return out, nil
}

// UpdateEvent applies the patch under the write lock and bumps UpdatedAt.
func (s *MemoryStore) UpdateEvent(_ context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.TotalCost != nil {
		event.TotalCost = *patch.TotalCost
	}
	if patch.Participants != nil {
		event.Participants = append([]models.Participant(nil), (*patch.Participants)...)
	}
	event.UpdatedAt = time.Now().Unix()

	return cloneEvent(event), nil
}

// DeleteEvent removes an event and its participant entries.
func (s *MemoryStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return storage.ErrNotFound
	}

	delete(s.events, id)
	s.eventOrder = removeID(s.eventOrder, id)
	return nil
}

// Stats reports record counts.
func (s *MemoryStore) Stats(_ context.Context) (storage.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return storage.Stats{
		Users:   len(s.users),
		Friends: len(s.friends),
		Events:  len(s.events),
	}, nil
}

// cloneEvent deep-copies an event so callers never share the stored
// participant slice.
func cloneEvent(event *models.Event) *models.Event {
	copied := *event
	copied.Participants = append([]models.Participant(nil), event.Participants...)
	return &copied
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
