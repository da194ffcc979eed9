package repositories

import (
	"context"

	"gorm.io/gorm"

	"spontrip/internal/models/db_models"
)

type pgMemoryRepository struct {
	db *gorm.DB
}

func NewPostgresMemoryRepository(db *gorm.DB) MemoryRepository {
	return &pgMemoryRepository{db: db}
}

func (r *pgMemoryRepository) Insert(ctx context.Context, memory *db_models.Memory) error {
	return r.db.WithContext(ctx).Create(memory).Error
}

func (r *pgMemoryRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Memory, error) {
	var memories []db_models.Memory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memories).Error
	if err != nil {
		return nil, err
	}
	return memories, nil
}
