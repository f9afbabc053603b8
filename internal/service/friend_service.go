package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
)

// FriendService manages a user's friend list. Every operation is scoped to
// the owning user; the store enforces that a record owned by someone else is
// indistinguishable from an absent one.
type FriendService struct {
	store storage.Store
}

// NewFriendService creates a new friend service.
func NewFriendService(store storage.Store) *FriendService {
	return &FriendService{store: store}
}

// List returns the owner's accepted friends.
func (s *FriendService) List(ctx context.Context, ownerID string) ([]models.Friend, error) {
	friends, err := s.store.ListFriends(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	accepted := []models.Friend{}
	for _, f := range friends {
		if f.Status == models.FriendAccepted {
			accepted = append(accepted, f)
		}
	}
	return accepted, nil
}

// Add creates a friend record for the owner. The relationship is accepted
// immediately; there is no request/approval flow yet.
func (s *FriendService) Add(ctx context.Context, ownerID, name string) (*models.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	friend := &models.Friend{
		OwnerID: ownerID,
		Name:    name,
		Status:  models.FriendAccepted,
	}
	if err := s.store.AddFriend(ctx, friend); err != nil {
		return nil, err
	}

	slog.Info("friend added", "user_id", ownerID, "friend_id", friend.ID)
	return friend, nil
}

// Delete removes a friend record owned by the requester.
func (s *FriendService) Delete(ctx context.Context, ownerID, friendID string) error {
	if err := s.store.DeleteFriend(ctx, ownerID, friendID); err != nil {
		return err
	}
	slog.Info("friend deleted", "user_id", ownerID, "friend_id", friendID)
	return nil
}
