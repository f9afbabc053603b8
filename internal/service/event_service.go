package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/evenshare/evenshare/internal/access"
	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/settlement"
	"github.com/evenshare/evenshare/internal/storage"
)

// driftTolerance is how far the stated total may sit from the contribution
// sum before we log a warning. Totals drifting beyond this are accepted but
// flagged; balance math never trusts the stored total anyway.
const driftTolerance = 0.01

// EventService manages shared-expense events and derives balances from them.
type EventService struct {
	store storage.Store
}

// NewEventService creates a new event service.
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store}
}

// CreateEventParams carries the create request fields.
type CreateEventParams struct {
	Name         string
	Date         string
	TotalCost    float64
	Participants []models.Participant
}

// Create makes the requester the immutable creator of a new event.
func (s *EventService) Create(ctx context.Context, creatorID string, params CreateEventParams) (*models.Event, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if params.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := validateParticipants(params.Participants); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:         name,
		Date:         params.Date,
		TotalCost:    params.TotalCost,
		CreatedBy:    creatorID,
		Participants: params.Participants,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	warnOnDrift(event)
	slog.Info("event created", "event_id", event.ID, "created_by", creatorID)
	return event, nil
}

// Get returns an event the requester is permitted to read.
func (s *EventService) Get(ctx context.Context, requesterID, eventID string) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !access.CanReadEvent(requesterID, event) {
		return nil, access.ErrDenied
	}
	return event, nil
}

// List returns every event the requester created or participates in, in
// stored order.
func (s *EventService) List(ctx context.Context, requesterID string) ([]*models.Event, error) {
	return s.store.ListEvents(ctx, func(e *models.Event) bool {
		return access.CanReadEvent(requesterID, e)
	})
}

// Update applies a partial update. Only the creator may mutate; participants
// get access.ErrDenied, an absent event storage.ErrNotFound.
func (s *EventService) Update(ctx context.Context, requesterID, eventID string, patch models.EventPatch) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !access.CanModifyEvent(requesterID, event) {
		return nil, access.ErrDenied
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		patch.Name = &trimmed
	}
	if patch.Participants != nil {
		if err := validateParticipants(*patch.Participants); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateEvent(ctx, eventID, patch)
	if err != nil {
		return nil, err
	}

	warnOnDrift(updated)
	slog.Info("event updated", "event_id", eventID, "user_id", requesterID)
	return updated, nil
}

// Delete removes an event. Creator only.
func (s *EventService) Delete(ctx context.Context, requesterID, eventID string) error {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !access.CanModifyEvent(requesterID, event) {
		return access.ErrDenied
	}

	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	slog.Info("event deleted", "event_id", eventID, "user_id", requesterID)
	return nil
}

// SharedWithFriend returns events visible to both the requester and the
// friend behind one of the requester's accepted friend records. A missing or
// foreign-owned record is storage.ErrNotFound: shared visibility is gated on
// the friendship existing, not on user-id equality.
func (s *EventService) SharedWithFriend(ctx context.Context, requesterID, friendID string) ([]*models.Event, error) {
	friend, err := s.store.GetFriend(ctx, requesterID, friendID)
	if err != nil {
		return nil, err
	}
	if friend.Status != models.FriendAccepted {
		return nil, storage.ErrNotFound
	}

	return s.store.ListEvents(ctx, func(e *models.Event) bool {
		return access.IsSharedEvent(requesterID, friend.ID, e)
	})
}

// Balances returns the per-participant equal-share balances of one event.
func (s *EventService) Balances(ctx context.Context, requesterID, eventID string) ([]settlement.ParticipantBalance, error) {
	event, err := s.Get(ctx, requesterID, eventID)
	if err != nil {
		return nil, err
	}
	return settlement.EventBalances(event)
}

// Summary aggregates the requester's owed/owing position across every event
// carrying a contribution entry for them. Events the requester merely
// created, without contributing, carry no balance and are excluded.
func (s *EventService) Summary(ctx context.Context, requesterID string) (settlement.Summary, []settlement.EventDetail, error) {
	events, err := s.store.ListEvents(ctx, func(e *models.Event) bool {
		return e.HasParticipant(requesterID)
	})
	if err != nil {
		return settlement.Summary{}, nil, err
	}
	return settlement.Summarize(events, requesterID)
}

func validateParticipants(participants []models.Participant) error {
	for i, p := range participants {
		if p.UserID == "" || p.Name == "" {
			return fmt.Errorf("%w: participant %d must have userId and name", ErrInvalidInput, i)
		}
		if p.Contribution < 0 {
			return fmt.Errorf("%w: participant %d contribution cannot be negative", ErrInvalidInput, i)
		}
	}
	return nil
}

// warnOnDrift flags events whose stated total disagrees with the sum of
// contributions. Drift is tolerated on write but worth surfacing.
func warnOnDrift(event *models.Event) {
	var sum float64
	for _, p := range event.Participants {
		sum += p.Contribution
	}
	if math.Abs(sum-event.TotalCost) > driftTolerance {
		slog.Warn("event total drifts from contribution sum",
			"event_id", event.ID,
			"total_cost", event.TotalCost,
			"contribution_sum", sum,
		)
	}
}
