package entity

type Ingredient struct {
	Original string `json:"original"`
	Aisle    string `json:"aisle,omitempty"`
}

// RecipeMatch is the single top hit returned by the recipe search service
// for a dish name.
type RecipeMatch struct {
	Title       string       `json:"title"`
	SourceURL   string       `json:"source_url"`
	Ingredients []Ingredient `json:"ingredients"`
}
