package moods_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/services"
)

var Module = fx.Provide(
	services.NewMoodService)
