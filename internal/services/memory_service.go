package services

import (
	"context"
	"log"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/pkg/utils"
)

type MemoryServiceInterface interface {
	ListByUser(ctx context.Context, userID string) ([]db_models.Memory, error)
	Create(ctx context.Context, userID string, request request_models.CreateMemoryRequest) (*db_models.Memory, error)
}

type MemoryService struct {
	memoryRepo repositories.MemoryRepository
	tripRepo   repositories.TripRepository
}

func NewMemoryService(memoryRepo repositories.MemoryRepository, tripRepo repositories.TripRepository) MemoryServiceInterface {
	return &MemoryService{
		memoryRepo: memoryRepo,
		tripRepo:   tripRepo,
	}
}

func (s *MemoryService) ListByUser(ctx context.Context, userID string) ([]db_models.Memory, error) {
	memories, err := s.memoryRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("List memories error: %v", err)
		return nil, utils.ErrStorageError
	}
	return memories, nil
}

func (s *MemoryService) Create(ctx context.Context, userID string, request request_models.CreateMemoryRequest) (*db_models.Memory, error) {
	trip, err := s.tripRepo.FindByID(ctx, request.TripID)
	if err != nil {
		log.Printf("Create memory error: %v", err)
		return nil, utils.ErrStorageError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	images := request.Images
	if images == nil {
		images = []string{}
	}

	memory := &db_models.Memory{
		ID:     utils.NewID(),
		Name:   request.Name,
		TripID: request.TripID,
		UserID: userID,
		Date:   request.Date,
		Images: images,
	}

	if err := s.memoryRepo.Insert(ctx, memory); err != nil {
		log.Printf("Create memory error: %v", err)
		return nil, utils.ErrStorageError
	}
	return memory, nil
}
