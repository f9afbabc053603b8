package settlement

import (
	"errors"
	"reflect"
	"testing"

	"github.com/evenshare/evenshare/internal/models"
)

func eventWith(id, name string, total float64, parts ...models.Participant) *models.Event {
	return &models.Event{ID: id, Name: name, TotalCost: total, Participants: parts}
}

func TestSummarizeEmpty(t *testing.T) {
	summary, details, err := Summarize(nil, "U1")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary != (Summary{}) {
		t.Errorf("empty summary = %+v, want zero value", summary)
	}
	if len(details) != 0 {
		t.Errorf("expected no details, got %d", len(details))
	}
}

func TestSummarizeAcrossEvents(t *testing.T) {
	// U1 is +15 on the first event and -25 on the second.
	events := []*models.Event{
		eventWith("e1", "Dinner", 90,
			models.Participant{UserID: "U1", Contribution: 45},
			models.Participant{UserID: "U2", Contribution: 30},
			models.Participant{UserID: "U3", Contribution: 15},
		),
		eventWith("e2", "Road Trip", 100,
			models.Participant{UserID: "U1", Contribution: 25},
			models.Participant{UserID: "U2", Contribution: 75},
		),
	}

	summary, details, err := Summarize(events, "U1")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if !almostEqual(summary.TotalOwed, 15) {
		t.Errorf("totalOwed = %v, want 15", summary.TotalOwed)
	}
	if !almostEqual(summary.TotalOwing, 25) {
		t.Errorf("totalOwing = %v, want 25", summary.TotalOwing)
	}
	if !almostEqual(summary.NetBalance, -10) {
		t.Errorf("netBalance = %v, want -10", summary.NetBalance)
	}
	if summary.EventCount != 2 {
		t.Errorf("eventCount = %d, want 2", summary.EventCount)
	}

	if len(details) != 2 {
		t.Fatalf("got %d details, want 2", len(details))
	}
	if details[0].EventID != "e1" || details[1].EventID != "e2" {
		t.Errorf("details out of input order: %s, %s", details[0].EventID, details[1].EventID)
	}
	if !almostEqual(details[0].EqualShare, 30) || !almostEqual(details[0].Balance, 15) {
		t.Errorf("e1 detail = %+v, want share 30 balance 15", details[0])
	}
	if !almostEqual(details[1].UserContribution, 25) || !almostEqual(details[1].Balance, -25) {
		t.Errorf("e2 detail = %+v, want contribution 25 balance -25", details[1])
	}
}

func TestSummarizeIsDeterministic(t *testing.T) {
	events := []*models.Event{
		eventWith("e1", "Picnic", 105,
			models.Participant{UserID: "U1", Contribution: 25},
			models.Participant{UserID: "U2", Contribution: 35},
			models.Participant{UserID: "U3", Contribution: 45},
		),
		eventWith("e2", "Game Night", 60,
			models.Participant{UserID: "U1", Contribution: 15},
			models.Participant{UserID: "U2", Contribution: 25},
			models.Participant{UserID: "U3", Contribution: 20},
		),
	}

	s1, d1, err := Summarize(events, "U1")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	s2, d2, err := Summarize(events, "U1")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if s1 != s2 {
		t.Errorf("summaries differ: %+v vs %+v", s1, s2)
	}
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("details differ: %+v vs %+v", d1, d2)
	}
}

func TestSummarizeRejectsNonParticipantEvent(t *testing.T) {
	events := []*models.Event{
		eventWith("e1", "Movie Night", 60,
			models.Participant{UserID: "U2", Contribution: 30},
			models.Participant{UserID: "U3", Contribution: 30},
		),
	}

	_, _, err := Summarize(events, "U1")
	if !errors.Is(err, ErrNotAParticipant) {
		t.Errorf("err = %v, want ErrNotAParticipant", err)
	}
}

func TestSummarizeRejectsEmptyEvent(t *testing.T) {
	_, _, err := Summarize([]*models.Event{eventWith("e1", "Ghost", 10)}, "U1")
	if !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("err = %v, want ErrInvalidEvent", err)
	}
}
