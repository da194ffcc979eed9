package config_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/config"
)

var Module = fx.Provide(
	config.Load)
