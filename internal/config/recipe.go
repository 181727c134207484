package config

import "time"

type Recipe struct {
	BaseURL     string        `env:"RECIPE_BASE_URL" envDefault:"https://api.spoonacular.com"`
	APIKey      string        `env:"RECIPE_API_KEY" json:"-"`
	Verify      bool          `env:"RECIPE_VERIFY" envDefault:"false"`
	HTTPTimeout time.Duration `env:"RECIPE_HTTP_TIMEOUT" envDefault:"15s"`
}
