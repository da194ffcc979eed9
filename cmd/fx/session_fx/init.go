package session_fx

import (
	"context"

	"go.uber.org/fx"

	"spontrip/internal/repositories"
	"spontrip/internal/services"
	"spontrip/pkg/kvstore"
)

var Module = fx.Options(
	fx.Provide(provideSessionService),
	fx.Invoke(restoreSession),
)

func provideSessionService(userRepo repositories.UserRepository, kv kvstore.Store) services.SessionServiceInterface {
	return services.NewSessionService(userRepo, kv)
}

// restoreSession replays a persisted session before the server accepts
// traffic.
func restoreSession(lc fx.Lifecycle, sessionService services.SessionServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sessionService.Restore(ctx)
			return nil
		},
	})
}
