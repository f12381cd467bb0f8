package app

import "context"

type CartItem struct {
	ProductID string
	Quantity  int
}

type CartReader interface {
	Items() []CartItem
}

type Product struct {
	ID    string
	Title string
	Image string
	Price float64
}

// ProductReader batch-resolves product IDs. IDs unknown to the catalog are
// omitted from the result rather than reported as errors.
type ProductReader interface {
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}
