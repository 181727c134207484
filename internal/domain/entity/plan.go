package entity

import "time"

// MealPlan is the generated multi-day dinner plan text.
type MealPlan struct {
	Text        string
	Model       string
	GeneratedAt time.Time
	DealCount   int
}
