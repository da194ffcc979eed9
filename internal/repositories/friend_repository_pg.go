package repositories

import (
	"context"

	"gorm.io/gorm"

	"spontrip/internal/models/db_models"
)

type pgFriendRepository struct {
	db *gorm.DB
}

func NewPostgresFriendRepository(db *gorm.DB) FriendRepository {
	return &pgFriendRepository{db: db}
}

func (r *pgFriendRepository) Insert(ctx context.Context, _ string, friend *db_models.Friend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

// ListByOwner mirrors the memory backend: the friends table is a single
// shared collection, so ownerID is accepted but not filtered on.
func (r *pgFriendRepository) ListByOwner(ctx context.Context, _ string) ([]db_models.Friend, error) {
	var friends []db_models.Friend
	if err := r.db.WithContext(ctx).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}
