package store_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/config"
	"spontrip/internal/infra"
	"spontrip/internal/repositories"
	"spontrip/internal/store"
)

var Module = fx.Provide(
	provideRepositories)

// provideRepositories wires the record store behind the repository
// interfaces: the in-memory collections by default, Postgres when
// STORAGE_BACKEND says so.
func provideRepositories(cfg *config.Config) (
	repositories.UserRepository,
	repositories.TripRepository,
	repositories.MemoryRepository,
	repositories.FriendRepository,
) {
	if cfg.Storage.Backend == "postgres" {
		db := infra.InitPostgresql(cfg.Storage.PostgresURL)
		return repositories.NewPostgresUserRepository(db),
			repositories.NewPostgresTripRepository(db),
			repositories.NewPostgresMemoryRepository(db),
			repositories.NewPostgresFriendRepository(db)
	}

	s := store.New()
	if cfg.App.SeedDemoData {
		store.Seed(s)
	}
	return repositories.NewMemoryUserRepository(s),
		repositories.NewMemoryTripRepository(s),
		repositories.NewMemoryMemoryRepository(s),
		repositories.NewMemoryFriendRepository(s)
}
