package settlement

import (
	"math"
	"testing"

	"github.com/evenshare/evenshare/internal/models"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEventBalances(t *testing.T) {
	tests := []struct {
		name         string
		event        *models.Event
		wantErr      bool
		wantShare    float64
		wantBalances map[string]float64
	}{
		{
			name: "three-way split from the reference scenario",
			event: &models.Event{
				ID:        "1",
				TotalCost: 120,
				Participants: []models.Participant{
					{UserID: "U1", Name: "Anon", Contribution: 50},
					{UserID: "U3", Name: "Einstein", Contribution: 40},
					{UserID: "U4", Name: "Newton", Contribution: 30},
				},
			},
			wantShare:    40,
			wantBalances: map[string]float64{"U1": 10, "U3": 0, "U4": -10},
		},
		{
			name: "single participant carries the whole event",
			event: &models.Event{
				Participants: []models.Participant{
					{UserID: "U1", Contribution: 42.5},
				},
			},
			wantShare:    42.5,
			wantBalances: map[string]float64{"U1": 0},
		},
		{
			name: "share base comes from contributions, not the stored total",
			event: &models.Event{
				TotalCost: 999, // drifted
				Participants: []models.Participant{
					{UserID: "U1", Contribution: 30},
					{UserID: "U2", Contribution: 10},
				},
			},
			wantShare:    20,
			wantBalances: map[string]float64{"U1": 10, "U2": -10},
		},
		{
			name: "all-zero contributions",
			event: &models.Event{
				Participants: []models.Participant{
					{UserID: "U1", Contribution: 0},
					{UserID: "U2", Contribution: 0},
				},
			},
			wantShare:    0,
			wantBalances: map[string]float64{"U1": 0, "U2": 0},
		},
		{
			name:    "zero participants rejected",
			event:   &models.Event{TotalCost: 50},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := EventBalances(tt.event)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("EventBalances failed: %v", err)
			}
			if len(balances) != len(tt.event.Participants) {
				t.Fatalf("got %d balances, want %d", len(balances), len(tt.event.Participants))
			}

			var sum float64
			for i, b := range balances {
				p := tt.event.Participants[i]
				if b.UserID != p.UserID {
					t.Errorf("balance %d: got user %s, want %s (order must match input)", i, b.UserID, p.UserID)
				}
				want := tt.wantBalances[b.UserID]
				if !almostEqual(b.Balance, want) {
					t.Errorf("%s balance = %v, want %v", b.UserID, b.Balance, want)
				}
				if !almostEqual(b.Contribution-b.Balance, tt.wantShare) {
					t.Errorf("%s implied share = %v, want %v", b.UserID, b.Contribution-b.Balance, tt.wantShare)
				}
				sum += b.Balance
			}
			if !almostEqual(sum, 0) {
				t.Errorf("balances sum to %v, want 0", sum)
			}
		})
	}
}

func TestEventBalancesDoesNotMutateInput(t *testing.T) {
	event := &models.Event{
		TotalCost: 60,
		Participants: []models.Participant{
			{UserID: "U1", Contribution: 40},
			{UserID: "U2", Contribution: 20},
		},
	}

	first, err := EventBalances(event)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := EventBalances(event)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("call results differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if event.Participants[0].Contribution != 40 || event.Participants[1].Contribution != 20 {
		t.Error("input event was mutated")
	}
}

func TestOwedForUser(t *testing.T) {
	balances := []ParticipantBalance{
		{UserID: "U1", Balance: 10},
		{UserID: "U3", Balance: 0},
		{UserID: "U4", Balance: -10},
	}

	tests := []struct {
		userID    string
		wantOwed  float64
		wantOwing float64
		wantErr   bool
	}{
		{userID: "U1", wantOwed: 10, wantOwing: 0},
		{userID: "U3", wantOwed: 0, wantOwing: 0},
		{userID: "U4", wantOwed: 0, wantOwing: 10},
		{userID: "U9", wantErr: true},
	}

	for _, tt := range tests {
		pos, err := OwedForUser(balances, tt.userID)
		if tt.wantErr {
			if err == nil {
				t.Errorf("OwedForUser(%s): expected error", tt.userID)
			}
			continue
		}
		if err != nil {
			t.Errorf("OwedForUser(%s) failed: %v", tt.userID, err)
			continue
		}
		if !almostEqual(pos.Owed, tt.wantOwed) || !almostEqual(pos.Owing, tt.wantOwing) {
			t.Errorf("OwedForUser(%s) = %+v, want owed=%v owing=%v", tt.userID, pos, tt.wantOwed, tt.wantOwing)
		}
		if pos.Owed > 0 && pos.Owing > 0 {
			t.Errorf("OwedForUser(%s): owed and owing both positive", tt.userID)
		}
	}
}
