package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spontrip/internal/models/db_models"
	"spontrip/pkg/utils"
)

type pgTripRepository struct {
	db *gorm.DB
}

func NewPostgresTripRepository(db *gorm.DB) TripRepository {
	return &pgTripRepository{db: db}
}

func (r *pgTripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *pgTripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *pgTripRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *pgTripRepository) Update(ctx context.Context, id string, patch db_models.TripPatch) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}

	createdAt, userID := trip.CreatedAt, trip.UserID
	patch.Apply(&trip)
	trip.ID = id
	trip.CreatedAt = createdAt
	trip.UserID = userID

	if err := r.db.WithContext(ctx).Save(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *pgTripRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
