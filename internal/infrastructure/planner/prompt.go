package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"flyerplan/internal/domain/entity"
)

//nolint:gochecknoglobals
var pantrySpices = []string{
	"Salt", "Black Pepper", "Garlic Powder", "Onion Powder", "Cumin",
	"Paprika", "Smoked Paprika", "Chili Powder", "Red Pepper Flakes",
	"Cayenne Pepper", "Thyme", "Sage", "Bay Leaves", "Italian Seasoning",
	"Cinnamon", "Nutmeg", "Ground Ginger", "Coriander", "Cardamom",
	"Cloves", "Allspice", "Garam Masala",
}

var dayHeadingPattern = regexp.MustCompile(`(?m)^###\s*Day\s*\d+:\s*(.+?)\s*$`)

const promptTemplate = `You are an elite Michelin-star Culinary Consultant.
Task: Provide a %d-day dinner plan for two ($%.0f max).

PANTRY (Use these freely): %s, Oil, Flour, Sugar.

STRICT CONSTRAINTS:
1. VERIFIED URLS: You MUST provide a direct, clickable URL for every recipe. Do not say "See notes" or "I will adapt." The link must be a real, functional recipe from a top-tier source (NYT Cooking, Bon Appétit, Serious Eats, etc.).
2. BUDGET MATHEMATICS: You must perform a "Sanity Check" calculation for every meal. Do not exceed $%.0f total.
3. STORE OPTIMIZATION: Consolidate shopping to a maximum of 2 stores unless a 3rd store saves >$15.
4. NO HALLUCINATIONS: If the grocery data does not contain a specific vegetable or side dish, you must list its estimated cost in the shopping list (e.g., "Onion (est. $0.80)").

REQUIRED OUTPUT FORMAT:

## SECTION 1: THE CULINARY PLAN
---
### Day [X]: [Dish Name]
* **Chef/Source:** [Name]
* **Recipe Link:** [Direct URL]
* **Sale Items:** [Items from the grocery data]
* **Non-Sale Items:** [Items NOT in the grocery data with estimated prices]
* **Pantry Items:** [Items from pantry list, no cost]
* **Financial Sanity Check:** [Item Cost] + [Estimated Cost of non-sale items] = [Meal Total].

## SECTION 2: CONSOLIDATED SHOPPING LIST
(Grouped by STORE and AISLE. Include estimated prices for items NOT in the grocery data so the user knows the true total.)

GROCERY DATA:
%s`

// BuildPrompt renders the consultant prompt with the deal table inlined.
// Deals beyond maxDeals are cut to keep the prompt bounded.
func BuildPrompt(deals []entity.DealRecord, budget float64, days, maxDeals int) string {
	if len(deals) > maxDeals {
		deals = deals[:maxDeals]
	}

	lines := lo.Map(deals, func(d entity.DealRecord, _ int) string {
		line := fmt.Sprintf("%s | %s | $%.2f", d.Store, d.Item, d.Price)
		if d.Category != "" {
			line += " | " + d.Category
		}
		return line
	})

	return fmt.Sprintf(promptTemplate,
		days,
		budget,
		strings.Join(pantrySpices, ", "),
		budget,
		strings.Join(lines, "\n"),
	)
}

// DishNames extracts the dish name from every "### Day N: ..." heading of a
// generated plan, in order of appearance.
func DishNames(planText string) []string {
	matches := dayHeadingPattern.FindAllStringSubmatch(planText, -1)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}

	return names
}
