package app

import (
	"context"
	"errors"

	"storefront/internal/catalog/domain"
)

var (
	// ErrNotFound means a single-item lookup missed.
	ErrNotFound = errors.New("product not found")
	// ErrUpstream means the product API was unreachable or answered with a
	// non-success status. Callers surface it, they never retry on their own.
	ErrUpstream = errors.New("product source unavailable")
)

const (
	DefaultPageSize = 12
	maxPageSize     = 100
)

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// ListProducts fetches one catalog page and the page count of the filtered
// set. Page numbers below 1 and out-of-range sizes are normalized.
func (s *Service) ListProducts(ctx context.Context, page, pageSize int, f Filters) ([]domain.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	products, total, err := s.source.List(ctx, page, pageSize, f)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	return products, totalPages, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.source.Get(ctx, id)
}

// GetProductsByIDs batch-resolves ids in one upstream call. An empty id set
// resolves to an empty slice without touching the network; ids missing
// upstream are silently omitted from the result.
func (s *Service) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	return s.source.GetByIDs(ctx, ids)
}

// SearchProducts runs a free-text title search.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	return s.source.Search(ctx, query)
}
