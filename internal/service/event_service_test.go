package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/evenshare/evenshare/internal/access"
	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
	"github.com/evenshare/evenshare/internal/storage/memory"
)

func newEventService() (*EventService, *memory.MemoryStore) {
	store := memory.New()
	return NewEventService(store), store
}

func mustCreate(t *testing.T, svc *EventService, creator string, params CreateEventParams) *models.Event {
	t.Helper()
	event, err := svc.Create(context.Background(), creator, params)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return event
}

func twoPersonEvent(u1 string, c1 float64, u2 string, c2 float64) CreateEventParams {
	return CreateEventParams{
		Name:      "Dinner",
		Date:      "2025-08-01",
		TotalCost: c1 + c2,
		Participants: []models.Participant{
			{UserID: u1, Name: u1, Contribution: c1},
			{UserID: u2, Name: u2, Contribution: c2},
		},
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	tests := []struct {
		name   string
		params CreateEventParams
	}{
		{"missing name", CreateEventParams{Date: "2025-08-01"}},
		{"missing date", CreateEventParams{Name: "Dinner"}},
		{"participant without userId", CreateEventParams{
			Name: "Dinner", Date: "2025-08-01",
			Participants: []models.Participant{{Name: "x", Contribution: 1}},
		}},
		{"negative contribution", CreateEventParams{
			Name: "Dinner", Date: "2025-08-01",
			Participants: []models.Participant{{UserID: "U1", Name: "x", Contribution: -5}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, "U1", tt.params); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestEventAccessMatrix(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	event := mustCreate(t, svc, "U1", twoPersonEvent("U1", 50, "U2", 50))
	rename := "Renamed"
	patch := models.EventPatch{Name: &rename}

	// U3 is neither creator nor participant: everything denies. The event
	// exists, so the fault class is denial, not absence.
	if _, err := svc.Get(ctx, "U3", event.ID); !errors.Is(err, access.ErrDenied) {
		t.Errorf("U3 get err = %v, want ErrDenied", err)
	}
	if _, err := svc.Update(ctx, "U3", event.ID, patch); !errors.Is(err, access.ErrDenied) {
		t.Errorf("U3 update err = %v, want ErrDenied", err)
	}
	if err := svc.Delete(ctx, "U3", event.ID); !errors.Is(err, access.ErrDenied) {
		t.Errorf("U3 delete err = %v, want ErrDenied", err)
	}

	// U2 participates: read permits, mutation denies.
	if _, err := svc.Get(ctx, "U2", event.ID); err != nil {
		t.Errorf("U2 get err = %v, want nil", err)
	}
	if _, err := svc.Update(ctx, "U2", event.ID, patch); !errors.Is(err, access.ErrDenied) {
		t.Errorf("U2 update err = %v, want ErrDenied", err)
	}
	if err := svc.Delete(ctx, "U2", event.ID); !errors.Is(err, access.ErrDenied) {
		t.Errorf("U2 delete err = %v, want ErrDenied", err)
	}

	// U1 created it: everything permits.
	if _, err := svc.Get(ctx, "U1", event.ID); err != nil {
		t.Errorf("U1 get err = %v", err)
	}
	updated, err := svc.Update(ctx, "U1", event.ID, patch)
	if err != nil {
		t.Fatalf("U1 update err = %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name = %s, want Renamed", updated.Name)
	}
	if err := svc.Delete(ctx, "U1", event.ID); err != nil {
		t.Errorf("U1 delete err = %v", err)
	}

	// Absent resource is a different fault class than denial.
	if _, err := svc.Get(ctx, "U1", event.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
}

func TestListScopedToMembership(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	mustCreate(t, svc, "U1", twoPersonEvent("U1", 10, "U2", 10))
	mustCreate(t, svc, "U2", twoPersonEvent("U2", 10, "U3", 10))

	events, err := svc.List(ctx, "U1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("U1 sees %d events, want 1", len(events))
	}

	events, err = svc.List(ctx, "U2")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("U2 sees %d events, want 2", len(events))
	}
}

func TestSharedWithFriend(t *testing.T) {
	svc, store := newEventService()
	ctx := context.Background()

	// U1's friend record for U2; the record id doubles as the friend's user id.
	friend := &models.Friend{ID: "U2", OwnerID: "U1", Name: "Grace", Status: models.FriendAccepted}
	if err := store.AddFriend(ctx, friend); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	both := mustCreate(t, svc, "U1", twoPersonEvent("U1", 10, "U2", 10))
	mustCreate(t, svc, "U1", twoPersonEvent("U1", 10, "U3", 10)) // no U2
	mustCreate(t, svc, "U2", twoPersonEvent("U2", 10, "U3", 10)) // no U1

	shared, err := svc.SharedWithFriend(ctx, "U1", "U2")
	if err != nil {
		t.Fatalf("SharedWithFriend failed: %v", err)
	}
	if len(shared) != 1 || shared[0].ID != both.ID {
		t.Errorf("shared = %d events, want exactly the joint one", len(shared))
	}

	// No friendship record means not found, regardless of overlapping events.
	if _, err := svc.SharedWithFriend(ctx, "U1", "U3"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	// Another user cannot ride U1's friendship.
	if _, err := svc.SharedWithFriend(ctx, "U3", "U2"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSummaryAcrossEvents(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	// U1: +15 on the first event, -25 on the second.
	mustCreate(t, svc, "U1", CreateEventParams{
		Name: "Dinner", Date: "2025-08-01", TotalCost: 90,
		Participants: []models.Participant{
			{UserID: "U1", Name: "a", Contribution: 45},
			{UserID: "U2", Name: "b", Contribution: 30},
			{UserID: "U3", Name: "c", Contribution: 15},
		},
	})
	mustCreate(t, svc, "U2", CreateEventParams{
		Name: "Road Trip", Date: "2025-08-02", TotalCost: 100,
		Participants: []models.Participant{
			{UserID: "U1", Name: "a", Contribution: 25},
			{UserID: "U2", Name: "b", Contribution: 75},
		},
	})
	// Created by U1 but without a contribution entry: excluded from summary.
	mustCreate(t, svc, "U1", twoPersonEvent("U2", 10, "U3", 10))

	summary, details, err := svc.Summary(ctx, "U1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if math.Abs(summary.TotalOwed-15) > 1e-9 || math.Abs(summary.TotalOwing-25) > 1e-9 {
		t.Errorf("summary = %+v, want owed 15 owing 25", summary)
	}
	if math.Abs(summary.NetBalance+10) > 1e-9 {
		t.Errorf("netBalance = %v, want -10", summary.NetBalance)
	}
	if summary.EventCount != 2 || len(details) != 2 {
		t.Errorf("eventCount = %d details = %d, want 2 and 2", summary.EventCount, len(details))
	}
}

func TestSummaryEmpty(t *testing.T) {
	svc, _ := newEventService()

	summary, details, err := svc.Summary(context.Background(), "U1")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalOwed != 0 || summary.TotalOwing != 0 || summary.NetBalance != 0 || summary.EventCount != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
	if len(details) != 0 {
		t.Errorf("details = %d, want 0", len(details))
	}
}

func TestBalancesRequiresMembership(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	event := mustCreate(t, svc, "U1", twoPersonEvent("U1", 50, "U2", 30))

	balances, err := svc.Balances(ctx, "U2", event.ID)
	if err != nil {
		t.Fatalf("Balances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("got %d balances, want 2", len(balances))
	}
	if math.Abs(balances[0].Balance-10) > 1e-9 || math.Abs(balances[1].Balance+10) > 1e-9 {
		t.Errorf("balances = %+v, want +10/-10", balances)
	}

	if _, err := svc.Balances(ctx, "U3", event.ID); !errors.Is(err, access.ErrDenied) {
		t.Errorf("outsider balances err = %v, want ErrDenied", err)
	}
}
