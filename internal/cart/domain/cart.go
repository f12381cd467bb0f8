package domain

// MaxQuantity caps a single line item. Adds beyond the cap keep the
// quantity pinned at 99.
const MaxQuantity = 99

// Item is one product/quantity pair in the cart. ProductID is an opaque
// string; it is unique across the cart and quantities stay in [1, 99].
// The JSON tags are the persisted wire shape.
type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ClampQuantity forces q into the valid [1, MaxQuantity] range.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// TotalItems sums the quantities of all items.
func TotalItems(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Sanitize drops malformed records from a deserialized item list: empty
// product IDs and non-positive quantities are removed, duplicates keep the
// first occurrence, oversized quantities are clamped. Insertion order is
// preserved.
func Sanitize(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		if it.Quantity > MaxQuantity {
			it.Quantity = MaxQuantity
		}
		out = append(out, it)
	}
	return out
}
