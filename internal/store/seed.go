package store

import (
	"log"
	"time"

	"spontrip/internal/models/db_models"
	"spontrip/pkg/utils"
)

func strPtr(s string) *string { return &s }

// Seed loads the demo fixtures so a fresh process has something to show:
// the demo account (demo@example.com / password), a companion user that
// search can find, one trip with a generated plan, one memory and one
// friend edge.
func Seed(s *Store) {
	demoHash, err := utils.HashPassword("password")
	if err != nil {
		log.Printf("Seed: hashing demo password failed: %v", err)
	}

	s.AddUser(db_models.User{
		ID:           "1",
		Name:         "Demo User",
		Email:        "demo@example.com",
		Age:          28,
		Location:     "New York, NY",
		PasswordHash: demoHash,
	})
	s.AddUser(db_models.User{
		ID:             "2",
		Name:           "Jane Smith",
		Email:          "jane@example.com",
		Age:            31,
		Location:       "Austin, TX",
		ProfilePicture: strPtr("https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg"),
	})

	createdAt, _ := time.Parse(time.RFC3339, "2025-05-01T12:00:00Z")
	s.AddTrip(db_models.Trip{
		ID:        "1",
		Name:      "Weekend Getaway",
		Location:  "Miami Beach",
		Duration:  "2 days",
		Mood:      "relaxing",
		People:    2,
		Date:      "2025-06-15",
		Plan:      strPtr("Day 1: Beach relaxation and seafood dinner\nDay 2: Spa treatment and shopping"),
		UserID:    "1",
		CreatedAt: createdAt,
	})

	s.AddMemory(db_models.Memory{
		ID:     "1",
		Name:   "Beach Fun",
		TripID: "1",
		UserID: "1",
		Date:   "2025-06-15",
		Images: []string{
			"https://images.pexels.com/photos/1268855/pexels-photo-1268855.jpeg",
			"https://images.pexels.com/photos/1591373/pexels-photo-1591373.jpeg",
		},
	})

	s.AddFriend(db_models.Friend{
		ID:             "2",
		Name:           "Jane Smith",
		Email:          "jane@example.com",
		ProfilePicture: strPtr("https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg"),
	})
}
