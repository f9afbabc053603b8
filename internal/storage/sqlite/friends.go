package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
)

// ListFriends returns the owner's friend records in insertion order.
func (s *SQLiteStore) ListFriends(ctx context.Context, ownerID string) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, status, created_at FROM friends WHERE owner_id = ? ORDER BY rowid",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	friends := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.Status, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return friends, nil
}

// AddFriend persists a new friend record.
func (s *SQLiteStore) AddFriend(ctx context.Context, friend *models.Friend) error {
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (id, owner_id, name, status, created_at) VALUES (?, ?, ?, ?, ?)",
		friend.ID, friend.OwnerID, friend.Name, friend.Status, friend.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}
	return nil
}

// GetFriend retrieves a friend record scoped to its owner. Records owned by
// anyone else are reported as storage.ErrNotFound.
func (s *SQLiteStore) GetFriend(ctx context.Context, ownerID, friendID string) (*models.Friend, error) {
	var f models.Friend
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, status, created_at FROM friends WHERE id = ? AND owner_id = ?",
		friendID, ownerID,
	).Scan(&f.ID, &f.OwnerID, &f.Name, &f.Status, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}
	return &f, nil
}

// DeleteFriend removes a friend record scoped to its owner.
func (s *SQLiteStore) DeleteFriend(ctx context.Context, ownerID, friendID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM friends WHERE id = ? AND owner_id = ?",
		friendID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
