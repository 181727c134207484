package config

import "time"

const (
	StrategySearch = "search"
	StrategyFlyers = "flyers"
)

type Flipp struct {
	BaseURL             string        `env:"FLIPP_BASE_URL" envDefault:"https://backflipp.wishabi.com/flipp"`
	PostalCode          string        `env:"FLIPP_POSTAL_CODE,required" validate:"required"`
	Locale              string        `env:"FLIPP_LOCALE" envDefault:"en-us"`
	Strategy            string        `env:"FLIPP_STRATEGY" envDefault:"search" validate:"oneof=search flyers"`
	Categories          []string      `env:"FLIPP_CATEGORIES" envDefault:"meat,produce,dairy,bakery,pantry"`
	PageSize            int           `env:"FLIPP_PAGE_SIZE" envDefault:"100" validate:"min=1"`
	MaxItemsPerCategory int           `env:"FLIPP_MAX_ITEMS_PER_CATEGORY" envDefault:"500" validate:"min=1"`
	PolitenessDelay     time.Duration `env:"FLIPP_POLITENESS_DELAY" envDefault:"500ms"`
	HTTPTimeout         time.Duration `env:"FLIPP_HTTP_TIMEOUT" envDefault:"15s"`
}
