package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

type Config struct {
	App     App
	Flipp   Flipp
	Recipe  Recipe
	Planner Planner
	SMTP    SMTP
}

type App struct {
	Name       string `env:"APP_NAME" envDefault:"flyerplan"`
	Version    string `env:"APP_VERSION" envDefault:"dev"`
	ExportPath string `env:"EXPORT_PATH" envDefault:"flyer_items.csv"`
	// RunInterval of zero means a single pass and exit.
	RunInterval    time.Duration `env:"RUN_INTERVAL"`
	ProbeAddress   string        `env:"PROBE_ADDRESS"`
	MetricsAddress string        `env:"METRICS_ADDRESS"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(&config); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}

	if config.Recipe.Verify && config.Recipe.APIKey == "" {
		return Config{}, fmt.Errorf("RECIPE_VERIFY is on but RECIPE_API_KEY is empty")
	}

	return config, nil
}
