package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"spontrip/internal/models/db_models"
	"spontrip/pkg/utils"
)

type pgUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *pgUserRepository) Update(ctx context.Context, id string, patch db_models.UserPatch) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}

	patch.Apply(&user)
	user.ID = id
	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *pgUserRepository) Search(ctx context.Context, query string) ([]db_models.User, error) {
	var users []db_models.User
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR email LIKE ?", pattern, "%"+query+"%").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
