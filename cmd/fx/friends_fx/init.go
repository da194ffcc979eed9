package friends_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/repositories"
	"spontrip/internal/services"
)

var Module = fx.Provide(
	provideFriendService)

func provideFriendService(friendRepo repositories.FriendRepository, userRepo repositories.UserRepository) services.FriendServiceInterface {
	return services.NewFriendService(friendRepo, userRepo)
}
