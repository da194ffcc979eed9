package trips_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/repositories"
	"spontrip/internal/services"
)

var Module = fx.Provide(
	provideTripService)

func provideTripService(
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	planService services.PlanServiceInterface,
	moodService services.MoodServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, userRepo, planService, moodService)
}
