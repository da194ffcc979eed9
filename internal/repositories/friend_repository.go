package repositories

import (
	"context"

	"spontrip/internal/models/db_models"
	"spontrip/internal/store"
)

type FriendRepository interface {
	Insert(ctx context.Context, ownerID string, friend *db_models.Friend) error
	// ListByOwner currently returns the entire friends collection; the
	// store keeps no per-owner partition. The ownerID parameter stays so a
	// partitioned backend can slot in without touching callers.
	ListByOwner(ctx context.Context, ownerID string) ([]db_models.Friend, error)
}

type memoryFriendRepository struct {
	store *store.Store
}

func NewMemoryFriendRepository(s *store.Store) FriendRepository {
	return &memoryFriendRepository{store: s}
}

func (r *memoryFriendRepository) Insert(_ context.Context, _ string, friend *db_models.Friend) error {
	r.store.AddFriend(*friend)
	return nil
}

func (r *memoryFriendRepository) ListByOwner(_ context.Context, _ string) ([]db_models.Friend, error) {
	return r.store.Friends(), nil
}
