package config

type Planner struct {
	APIKey string  `env:"PLANNER_API_KEY,required" json:"-" validate:"required"`
	Model  string  `env:"PLANNER_MODEL" envDefault:"gemini-2.0-flash"`
	Budget float64 `env:"PLANNER_BUDGET" envDefault:"100" validate:"gt=0"`
	Days   int     `env:"PLANNER_DAYS" envDefault:"7" validate:"min=1"`
	// MaxDeals caps how many deal rows are rendered into the prompt.
	MaxDeals int `env:"PLANNER_MAX_DEALS" envDefault:"100" validate:"min=1"`
}
