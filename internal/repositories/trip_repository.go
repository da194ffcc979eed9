package repositories

import (
	"context"

	"spontrip/internal/models/db_models"
	"spontrip/internal/store"
	"spontrip/pkg/utils"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	// FindByID returns (nil, nil) when no record matches.
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	// ListByUser returns the user's trips in insertion order.
	ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error)
	// Update merges patch over the stored record; id, userId and createdAt
	// are immutable.
	Update(ctx context.Context, id string, patch db_models.TripPatch) (*db_models.Trip, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type memoryTripRepository struct {
	store *store.Store
}

func NewMemoryTripRepository(s *store.Store) TripRepository {
	return &memoryTripRepository{store: s}
}

func (r *memoryTripRepository) Insert(_ context.Context, trip *db_models.Trip) error {
	r.store.AddTrip(*trip)
	return nil
}

func (r *memoryTripRepository) FindByID(_ context.Context, id string) (*db_models.Trip, error) {
	trip, ok := r.store.FindTrip(id)
	if !ok {
		return nil, nil
	}
	return &trip, nil
}

func (r *memoryTripRepository) ListByUser(_ context.Context, userID string) ([]db_models.Trip, error) {
	trips := []db_models.Trip{}
	for _, t := range r.store.Trips() {
		if t.UserID == userID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (r *memoryTripRepository) Update(_ context.Context, id string, patch db_models.TripPatch) (*db_models.Trip, error) {
	trip, ok := r.store.PatchTrip(id, func(t *db_models.Trip) {
		patch.Apply(t)
	})
	if !ok {
		return nil, utils.ErrTripNotFound
	}
	return &trip, nil
}

func (r *memoryTripRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.RemoveTrip(id), nil
}
