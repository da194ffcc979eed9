package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Planner PlannerConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	// Backend selects the record-store implementation: "memory" (default)
	// or "postgres".
	Backend       string
	PostgresURL   string
	RedisAddr     string
	RedisPassword string
}

type PlannerConfig struct {
	// Provider selects the itinerary generator: "template" (default,
	// deterministic), "gemini" or "openai".
	Provider     string
	GeminiAPIKey string
	OpenAIAPIKey string
}

type AppConfig struct {
	Environment  string
	DefaultTheme string
	SeedDemoData bool
}

func Load() (*Config, error) {
	// Load .env if present (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Storage: StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", "memory"),
			PostgresURL:   getEnv("POSTGRES_URL", ""),
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
		Planner: PlannerConfig{
			Provider:     getEnv("PLANNER_PROVIDER", "template"),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		},
		App: AppConfig{
			Environment:  getEnv("APP_ENV", "development"),
			DefaultTheme: getEnv("DEFAULT_THEME", "light"),
			SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.Backend != "memory" && c.Storage.Backend != "postgres" {
		return fmt.Errorf("invalid STORAGE_BACKEND %q", c.Storage.Backend)
	}
	if c.Storage.Backend == "postgres" && c.Storage.PostgresURL == "" {
		return fmt.Errorf("STORAGE_BACKEND=postgres requires POSTGRES_URL")
	}
	switch c.Planner.Provider {
	case "template":
	case "gemini":
		if c.Planner.GeminiAPIKey == "" {
			return fmt.Errorf("PLANNER_PROVIDER=gemini requires GEMINI_API_KEY")
		}
	case "openai":
		if c.Planner.OpenAIAPIKey == "" {
			return fmt.Errorf("PLANNER_PROVIDER=openai requires OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("invalid PLANNER_PROVIDER %q", c.Planner.Provider)
	}
	if c.App.DefaultTheme != "light" && c.App.DefaultTheme != "dark" {
		return fmt.Errorf("invalid DEFAULT_THEME %q", c.App.DefaultTheme)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
