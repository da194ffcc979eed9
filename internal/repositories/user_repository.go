package repositories

import (
	"context"
	"strings"

	"spontrip/internal/models/db_models"
	"spontrip/internal/store"
	"spontrip/pkg/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	// FindByID and FindByEmail return (nil, nil) when no record matches.
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	// Update merges patch over the stored record. The id never changes.
	Update(ctx context.Context, id string, patch db_models.UserPatch) (*db_models.User, error)
	// Search matches case-insensitively on name and by substring on email.
	// It does not exclude the requester; callers filter on their side.
	Search(ctx context.Context, query string) ([]db_models.User, error)
}

type memoryUserRepository struct {
	store *store.Store
}

func NewMemoryUserRepository(s *store.Store) UserRepository {
	return &memoryUserRepository{store: s}
}

func (r *memoryUserRepository) Insert(_ context.Context, user *db_models.User) error {
	r.store.AddUser(*user)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*db_models.User, error) {
	user, ok := r.store.FindUser(func(u db_models.User) bool { return u.ID == id })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	// exact equality, no case folding
	user, ok := r.store.FindUser(func(u db_models.User) bool { return u.Email == email })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) Update(_ context.Context, id string, patch db_models.UserPatch) (*db_models.User, error) {
	user, ok := r.store.PatchUser(id, func(u *db_models.User) {
		patch.Apply(u)
	})
	if !ok {
		return nil, utils.ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) Search(_ context.Context, query string) ([]db_models.User, error) {
	loweredQuery := strings.ToLower(query)

	matches := []db_models.User{}
	for _, u := range r.store.Users() {
		if strings.Contains(strings.ToLower(u.Name), loweredQuery) || strings.Contains(u.Email, query) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}
