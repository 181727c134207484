package entity

import "strings"

const groceryTag = "Groceries"

// FlyerHandle identifies a retailer's current flyer for a postal code.
// Fetched fresh per run, never cached.
type FlyerHandle struct {
	ID         int64
	Merchant   string
	Categories []string
}

// IsGrocery reports whether the flyer carries the Groceries category tag.
// Tags are compared after trimming, case preserved as retrieved.
func (f FlyerHandle) IsGrocery() bool {
	for _, tag := range f.Categories {
		if strings.TrimSpace(tag) == groceryTag {
			return true
		}
	}
	return false
}
