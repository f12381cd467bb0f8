package app

import (
	"context"

	"storefront/internal/catalog/domain"
)

// Filters is the server-side narrowing predicate: exact category match,
// title substring match, inclusive price range. Zero values mean "no
// constraint".
type Filters struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

// Active reports whether any constraint is set.
func (f Filters) Active() bool {
	return f.Category != "" || f.Search != "" || f.MinPrice != nil || f.MaxPrice != nil
}

// Source is the upstream product resource. List returns one page plus the
// total number of records matching the filters, which must count the
// filtered set, not the whole catalog.
type Source interface {
	List(ctx context.Context, page, limit int, f Filters) ([]domain.Product, int, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}
