package kv_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/config"
	"spontrip/internal/infra"
	"spontrip/pkg/kvstore"
)

var Module = fx.Provide(
	provideKVStore)

// provideKVStore selects the durable storage behind sessions and
// preferences: Redis when an address is configured, process memory
// otherwise.
func provideKVStore(cfg *config.Config) kvstore.Store {
	if cfg.Storage.RedisAddr != "" {
		client := infra.InitRedis(cfg.Storage.RedisAddr, cfg.Storage.RedisPassword)
		return kvstore.NewRedisStore(client)
	}
	return kvstore.NewMemoryStore()
}
