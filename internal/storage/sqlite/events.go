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

// CreateEvent persists a new event with its participants in one transaction.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO events (id, name, date, total_cost, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		event.ID, event.Name, event.Date, event.TotalCost, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	if err := insertParticipants(ctx, tx, event.ID, event.Participants); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID, participants included.
func (s *SQLiteStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event := &models.Event{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, date, total_cost, created_by, created_at, updated_at FROM events WHERE id = ?",
		id,
	).Scan(&event.ID, &event.Name, &event.Date, &event.TotalCost, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Participants, err = s.eventParticipants(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns matching events in insertion order. The filter runs in
// Go over fully loaded events; a nil filter matches everything.
func (s *SQLiteStore) ListEvents(ctx context.Context, filter func(*models.Event) bool) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, date, total_cost, created_by, created_at, updated_at FROM events ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.Name, &event.Date, &event.TotalCost,
			&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	out := []*models.Event{}
	for _, event := range events {
		event.Participants, err = s.eventParticipants(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		if filter == nil || filter(event) {
			out = append(out, event)
		}
	}
	return out, nil
}

// UpdateEvent applies the patch in a single transaction. A non-nil
// Participants pointer replaces the whole participant list.
func (s *SQLiteStore) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event := &models.Event{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, name, date, total_cost, created_by, created_at, updated_at FROM events WHERE id = ?",
		id,
	).Scan(&event.ID, &event.Name, &event.Date, &event.TotalCost, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
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
	event.UpdatedAt = time.Now().Unix()

	_, err = tx.ExecContext(ctx,
		"UPDATE events SET name = ?, date = ?, total_cost = ?, updated_at = ? WHERE id = ?",
		event.Name, event.Date, event.TotalCost, event.UpdatedAt, event.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if patch.Participants != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE event_id = ?", event.ID); err != nil {
			return nil, fmt.Errorf("failed to clear participants: %w", err)
		}
		if err := insertParticipants(ctx, tx, event.ID, *patch.Participants); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	event.Participants, err = s.eventParticipants(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event; participants cascade.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
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

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertParticipants writes the participant list, recording each entry's
// position so the stored order round-trips.
func insertParticipants(ctx context.Context, tx execer, eventID string, participants []models.Participant) error {
	for i, p := range participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO participants (event_id, user_id, name, contribution, position) VALUES (?, ?, ?, ?, ?)",
			eventID, p.UserID, p.Name, p.Contribution, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) eventParticipants(ctx context.Context, eventID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, name, contribution FROM participants WHERE event_id = ? ORDER BY position",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.UserID, &p.Name, &p.Contribution); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
