package reference

// Item is one entry of a lookup list: disease types, image types or user
// roles. The backend serves all three with the same shape.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Option is a select-box entry derived from an Item.
type Option struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Options maps lookup items onto select-box entries.
func Options(items []Item) []Option {
	opts := make([]Option, 0, len(items))
	for _, it := range items {
		opts = append(opts, Option{Label: it.Name, Value: it.ID})
	}
	return opts
}
