package adapter

import (
	"context"

	catalogapp "storefront/internal/catalog/app"
	cartviewapp "storefront/internal/cartview/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetByIDs(ctx context.Context, ids []string) ([]cartviewapp.Product, error) {
	resolved, err := r.svc.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make([]cartviewapp.Product, 0, len(resolved))
	for _, p := range resolved {
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		products = append(products, cartviewapp.Product{
			ID:    p.ID,
			Title: p.Title,
			Image: image,
			Price: p.Price,
		})
	}
	return products, nil
}
