package entity

// DealRecord is one advertised grocery item at one merchant, normalized from
// whichever upstream endpoint shape it was retrieved through.
type DealRecord struct {
	Store     string  `json:"store"`
	Item      string  `json:"item"`
	Price     float64 `json:"price"`
	Category  string  `json:"category,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	FlyerID   string  `json:"flyer_id,omitempty"`
	ValidFrom string  `json:"valid_from,omitempty"`
	ValidTo   string  `json:"valid_to,omitempty"`
}

// Key is the dedup identity: two records with the same store+item
// concatenation are duplicates, the later one wins.
func (d DealRecord) Key() string {
	return d.Store + d.Item
}

// Valid reports whether the record satisfies the retention invariant.
func (d DealRecord) Valid() bool {
	return d.Store != "" && d.Item != "" && d.Price >= 0
}
