package services

import (
	"context"
	"log"

	"spontrip/internal/models/db_models"
	"spontrip/internal/repositories"
	"spontrip/pkg/utils"
)

type FriendServiceInterface interface {
	ListFriends(ctx context.Context, userID string) ([]db_models.Friend, error)
	// Search returns users matching query, excluding the requester and
	// anyone already on the friends list.
	Search(ctx context.Context, userID string, query string) ([]db_models.User, error)
	AddFriend(ctx context.Context, userID string, friendUserID string) (*db_models.Friend, error)
}

type FriendService struct {
	friendRepo repositories.FriendRepository
	userRepo   repositories.UserRepository
}

func NewFriendService(friendRepo repositories.FriendRepository, userRepo repositories.UserRepository) FriendServiceInterface {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]db_models.Friend, error) {
	friends, err := s.friendRepo.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("List friends error: %v", err)
		return nil, utils.ErrStorageError
	}
	return friends, nil
}

func (s *FriendService) Search(ctx context.Context, userID string, query string) ([]db_models.User, error) {
	matches, err := s.userRepo.Search(ctx, query)
	if err != nil {
		log.Printf("Search users error: %v", err)
		return nil, utils.ErrStorageError
	}

	friends, err := s.friendRepo.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("Search users error: %v", err)
		return nil, utils.ErrStorageError
	}
	friendIDs := make(map[string]struct{}, len(friends))
	for _, f := range friends {
		friendIDs[f.ID] = struct{}{}
	}

	// filter out the requester and already-added friends; the repository
	// deliberately matches everyone
	results := []db_models.User{}
	for _, u := range matches {
		if u.ID == userID {
			continue
		}
		if _, ok := friendIDs[u.ID]; ok {
			continue
		}
		results = append(results, u)
	}
	return results, nil
}

// AddFriend records a one-directional edge holding the target's public
// summary. The target user is read, never mutated.
func (s *FriendService) AddFriend(ctx context.Context, userID string, friendUserID string) (*db_models.Friend, error) {
	target, err := s.userRepo.FindByID(ctx, friendUserID)
	if err != nil {
		log.Printf("Add friend error: %v", err)
		return nil, utils.ErrStorageError
	}
	if target == nil {
		return nil, utils.ErrUserNotFound
	}

	friend := &db_models.Friend{
		ID:             target.ID,
		Name:           target.Name,
		Email:          target.Email,
		ProfilePicture: target.ProfilePicture,
	}

	if err := s.friendRepo.Insert(ctx, userID, friend); err != nil {
		log.Printf("Add friend error: %v", err)
		return nil, utils.ErrStorageError
	}

	log.Printf("User %s added friend %s", userID, friendUserID)
	return friend, nil
}
