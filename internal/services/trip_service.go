package services

import (
	"context"
	"log"
	"time"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/pkg/utils"
)

type TripServiceInterface interface {
	ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error)
	Get(ctx context.Context, tripID string) (*db_models.Trip, error)
	Create(ctx context.Context, userID string, request request_models.CreateTripRequest) (*db_models.Trip, error)
	Update(ctx context.Context, userID string, tripID string, request request_models.UpdateTripRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, userID string, tripID string) (bool, error)
	AddComment(ctx context.Context, userID string, tripID string, text string) (*db_models.Trip, error)
	AddCollaborator(ctx context.Context, userID string, tripID string, collaboratorID string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	userRepo    repositories.UserRepository
	planService PlanServiceInterface
	moodService MoodServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	planService PlanServiceInterface,
	moodService MoodServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		userRepo:    userRepo,
		planService: planService,
		moodService: moodService,
	}
}

func (s *TripService) ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	trips, err := s.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("List trips error: %v", err)
		return nil, utils.ErrStorageError
	}
	return trips, nil
}

func (s *TripService) Get(ctx context.Context, tripID string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		log.Printf("Get trip error: %v", err)
		return nil, utils.ErrStorageError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) Create(ctx context.Context, userID string, request request_models.CreateTripRequest) (*db_models.Trip, error) {
	if !s.moodService.IsValidMood(request.Mood) {
		return nil, utils.ErrUnknownMood
	}

	trip := &db_models.Trip{
		ID:        utils.NewID(),
		Name:      request.Name,
		Location:  request.Location,
		Duration:  request.Duration,
		Mood:      request.Mood,
		People:    request.People,
		Date:      request.Date,
		Plan:      request.Plan,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if trip.Plan == nil {
		plan, err := s.planService.GeneratePlan(ctx, trip.Location, trip.Duration, trip.Mood, trip.People)
		if err != nil {
			// a trip without a plan is still a trip
			log.Printf("Create trip: plan generation failed: %v", err)
		} else {
			trip.Plan = &plan
		}
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		log.Printf("Create trip error: %v", err)
		return nil, utils.ErrStorageError
	}
	return trip, nil
}

func (s *TripService) Update(ctx context.Context, userID string, tripID string, request request_models.UpdateTripRequest) (*db_models.Trip, error) {
	if request.Mood != nil && !s.moodService.IsValidMood(*request.Mood) {
		return nil, utils.ErrUnknownMood
	}

	if _, err := s.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}

	patch := db_models.TripPatch{
		Name:     request.Name,
		Location: request.Location,
		Duration: request.Duration,
		Mood:     request.Mood,
		People:   request.People,
		Date:     request.Date,
		Plan:     request.Plan,
	}

	trip, err := s.tripRepo.Update(ctx, tripID, patch)
	if err != nil {
		if err == utils.ErrTripNotFound {
			return nil, err
		}
		log.Printf("Update trip error: %v", err)
		return nil, utils.ErrStorageError
	}
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, userID string, tripID string) (bool, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		log.Printf("Delete trip error: %v", err)
		return false, utils.ErrStorageError
	}
	if trip == nil {
		// already gone; deletion is reported false, not as an error
		return false, nil
	}
	if trip.UserID != userID {
		return false, utils.ErrForbidden
	}

	removed, err := s.tripRepo.Delete(ctx, tripID)
	if err != nil {
		log.Printf("Delete trip error: %v", err)
		return false, utils.ErrStorageError
	}
	return removed, nil
}

func (s *TripService) AddComment(ctx context.Context, userID string, tripID string, text string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		log.Printf("Add comment error: %v", err)
		return nil, utils.ErrStorageError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID && !contains(trip.Collaborators, userID) {
		return nil, utils.ErrForbidden
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Add comment error: %v", err)
		return nil, utils.ErrStorageError
	}
	if author == nil {
		return nil, utils.ErrUserNotFound
	}

	comments := append(trip.Comments, db_models.Comment{
		ID:        utils.NewID(),
		Text:      text,
		UserID:    author.ID,
		UserName:  author.Name,
		CreatedAt: time.Now().UTC(),
	})

	updated, err := s.tripRepo.Update(ctx, tripID, db_models.TripPatch{Comments: comments})
	if err != nil {
		log.Printf("Add comment error: %v", err)
		return nil, utils.ErrStorageError
	}
	return updated, nil
}

func (s *TripService) AddCollaborator(ctx context.Context, userID string, tripID string, collaboratorID string) (*db_models.Trip, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	collaborator, err := s.userRepo.FindByID(ctx, collaboratorID)
	if err != nil {
		log.Printf("Add collaborator error: %v", err)
		return nil, utils.ErrStorageError
	}
	if collaborator == nil {
		return nil, utils.ErrUserNotFound
	}

	if contains(trip.Collaborators, collaboratorID) {
		return trip, nil
	}

	collaborators := append(trip.Collaborators, collaboratorID)
	updated, err := s.tripRepo.Update(ctx, tripID, db_models.TripPatch{Collaborators: collaborators})
	if err != nil {
		log.Printf("Add collaborator error: %v", err)
		return nil, utils.ErrStorageError
	}
	return updated, nil
}

// ownedTrip fetches a trip and checks the caller owns it.
func (s *TripService) ownedTrip(ctx context.Context, userID string, tripID string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		log.Printf("Trip lookup error: %v", err)
		return nil, utils.ErrStorageError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
