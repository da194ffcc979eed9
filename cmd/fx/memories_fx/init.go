package memories_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/repositories"
	"spontrip/internal/services"
)

var Module = fx.Provide(
	provideMemoryService)

func provideMemoryService(memoryRepo repositories.MemoryRepository, tripRepo repositories.TripRepository) services.MemoryServiceInterface {
	return services.NewMemoryService(memoryRepo, tripRepo)
}
