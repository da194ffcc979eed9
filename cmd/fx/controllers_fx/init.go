package controllers_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewMemoryController),
	fx.Provide(controllers.NewFriendController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewPreferenceController),
	fx.Provide(controllers.NewMoodController))
