package repositories

import (
	"context"

	"spontrip/internal/models/db_models"
	"spontrip/internal/store"
)

type MemoryRepository interface {
	Insert(ctx context.Context, memory *db_models.Memory) error
	// ListByUser returns the user's memories in insertion order.
	ListByUser(ctx context.Context, userID string) ([]db_models.Memory, error)
}

type memoryMemoryRepository struct {
	store *store.Store
}

func NewMemoryMemoryRepository(s *store.Store) MemoryRepository {
	return &memoryMemoryRepository{store: s}
}

func (r *memoryMemoryRepository) Insert(_ context.Context, memory *db_models.Memory) error {
	r.store.AddMemory(*memory)
	return nil
}

func (r *memoryMemoryRepository) ListByUser(_ context.Context, userID string) ([]db_models.Memory, error) {
	memories := []db_models.Memory{}
	for _, m := range r.store.Memories() {
		if m.UserID == userID {
			memories = append(memories, m)
		}
	}
	return memories, nil
}
