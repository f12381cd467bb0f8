package adapter

import (
	cartapp "storefront/internal/cart/app"
	cartviewapp "storefront/internal/cartview/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) Items() []cartviewapp.CartItem {
	lines := r.store.Items()

	items := make([]cartviewapp.CartItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, cartviewapp.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return items
}
