package prefs_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/config"
	"spontrip/internal/services"
	"spontrip/pkg/kvstore"
)

var Module = fx.Provide(
	providePreferenceService)

func providePreferenceService(kv kvstore.Store, cfg *config.Config) services.PreferenceServiceInterface {
	return services.NewPreferenceService(kv, cfg.App.DefaultTheme)
}
