package plan_fx

import (
	"go.uber.org/fx"

	"spontrip/internal/config"
	"spontrip/internal/services"
)

var Module = fx.Provide(
	providePlanProvider, providePlanService)

func providePlanProvider(cfg *config.Config) (services.PlanProvider, error) {
	switch cfg.Planner.Provider {
	case "gemini":
		return services.NewGeminiProvider(cfg.Planner.GeminiAPIKey, "")
	case "openai":
		return services.NewOpenAIProvider(cfg.Planner.OpenAIAPIKey, ""), nil
	default:
		return services.TemplateProvider{}, nil
	}
}

func providePlanService(provider services.PlanProvider) services.PlanServiceInterface {
	return services.NewPlanService(provider)
}
