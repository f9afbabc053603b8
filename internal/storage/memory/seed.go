package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/evenshare/evenshare/internal/models"
)

// demoPassword is the login password for every seeded account.
const demoPassword = "password123"

// SeedDemo loads the sample data set used for manual testing: six accounts,
// a friend list for the first one, and five events with varied balances.
// Friend record IDs mirror the friend's user ID so shared-event lookups line
// up out of the box.
func SeedDemo(ctx context.Context, s *MemoryStore) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := []models.User{
		{ID: "1", FirstName: "Anon", LastName: "User", Username: "anonuser", Email: "anon@email.com", Phone: "000-000-0000", DOB: "1990-01-01"},
		{ID: "2", FirstName: "J. Robert", LastName: "Oppenheimer", Username: "oppenheimer", Email: "oppenheimer@email.com", Phone: "111-111-1111", DOB: "1904-04-22"},
		{ID: "3", FirstName: "Albert", LastName: "Einstein", Username: "einstein", Email: "einstein@email.com", Phone: "222-222-2222", DOB: "1879-03-14"},
		{ID: "4", FirstName: "Isaac", LastName: "Newton", Username: "newton", Email: "newton@email.com", Phone: "333-333-3333", DOB: "1643-01-04"},
		{ID: "5", FirstName: "Marie", LastName: "Curie", Username: "curie", Email: "curie@email.com", Phone: "444-444-4444", DOB: "1867-11-07"},
		{ID: "6", FirstName: "Nikola", LastName: "Tesla", Username: "tesla", Email: "tesla@email.com", Phone: "555-555-5555", DOB: "1856-07-10"},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := s.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Username, err)
		}
	}

	friends := []models.Friend{
		{ID: "3", OwnerID: "1", Name: "Einstein", Status: models.FriendAccepted},
		{ID: "4", OwnerID: "1", Name: "Newton", Status: models.FriendAccepted},
		{ID: "2", OwnerID: "1", Name: "Oppenheimer", Status: models.FriendAccepted},
	}
	for i := range friends {
		if err := s.AddFriend(ctx, &friends[i]); err != nil {
			return fmt.Errorf("failed to seed friend %s: %w", friends[i].Name, err)
		}
	}

	events := []models.Event{
		{
			ID: "1", Name: "Birthday Party", Date: "2025-08-01", TotalCost: 120, CreatedBy: "1",
			Participants: []models.Participant{
				{UserID: "1", Name: "Anon User", Contribution: 50},
				{UserID: "3", Name: "Albert Einstein", Contribution: 40},
				{UserID: "4", Name: "Isaac Newton", Contribution: 30},
			},
		},
		{
			ID: "2", Name: "Movie Night", Date: "2025-08-15", TotalCost: 60, CreatedBy: "1",
			Participants: []models.Participant{
				{UserID: "2", Name: "J. Robert Oppenheimer", Contribution: 20},
				{UserID: "3", Name: "Albert Einstein", Contribution: 30},
				{UserID: "4", Name: "Isaac Newton", Contribution: 10},
			},
		},
		{
			ID: "3", Name: "Game Night", Date: "2025-09-01", TotalCost: 60, CreatedBy: "1",
			Participants: []models.Participant{
				{UserID: "1", Name: "Anon User", Contribution: 15},
				{UserID: "2", Name: "J. Robert Oppenheimer", Contribution: 25},
				{UserID: "4", Name: "Isaac Newton", Contribution: 20},
			},
		},
		{
			ID: "4", Name: "Dinner Party", Date: "2025-09-15", TotalCost: 120, CreatedBy: "1",
			Participants: []models.Participant{
				{UserID: "1", Name: "Anon User", Contribution: 30},
				{UserID: "2", Name: "J. Robert Oppenheimer", Contribution: 40},
				{UserID: "3", Name: "Albert Einstein", Contribution: 50},
			},
		},
		{
			ID: "5", Name: "Picnic", Date: "2025-10-01", TotalCost: 105, CreatedBy: "1",
			Participants: []models.Participant{
				{UserID: "1", Name: "Anon User", Contribution: 25},
				{UserID: "2", Name: "J. Robert Oppenheimer", Contribution: 35},
				{UserID: "3", Name: "Albert Einstein", Contribution: 45},
			},
		},
	}
	for i := range events {
		if err := s.CreateEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", events[i].Name, err)
		}
	}

	return nil
}
