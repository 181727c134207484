package flipp

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// parsePrice accepts the price shapes the upstream has been observed to send:
// a JSON number, or a string like "4.99" (sometimes with a currency sign).
// Anything unparseable or negative is rejected.
func parsePrice(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		if v.Num < 0 {
			return 0, false
		}
		return v.Num, true
	case gjson.String:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v.Str), "$"))
		if s == "" {
			return 0, false
		}

		price, err := strconv.ParseFloat(s, 64)
		if err != nil || price < 0 {
			return 0, false
		}
		return price, true
	default:
		return 0, false
	}
}

// normalizeTags folds both observed category shapes into a trimmed tag list:
// a single comma-separated string ("Groceries, Pharmacy") or a JSON array.
func normalizeTags(v gjson.Result) []string {
	var raw []string

	switch {
	case v.IsArray():
		for _, tag := range v.Array() {
			raw = append(raw, tag.String())
		}
	case v.Type == gjson.String:
		raw = strings.Split(v.Str, ",")
	default:
		return nil
	}

	tags := make([]string, 0, len(raw))

	for _, tag := range raw {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	return tags
}
