package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"storefront/internal/cartview/domain"
)

// ErrStale marks a resolution that was superseded by a newer one while its
// product fetch was in flight. Callers drop the result silently.
var ErrStale = errors.New("cart view superseded")

// Service joins the live cart with catalog data. Each View call claims a
// generation number; a result is only returned if no newer resolution
// started in the meantime, so out-of-order upstream responses can never
// overwrite fresher state.
type Service struct {
	cart    CartReader
	catalog ProductReader

	gen atomic.Uint64
}

func NewService(cart CartReader, catalog ProductReader) *Service {
	return &Service{cart: cart, catalog: catalog}
}

// View resolves the current cart. Items whose product is gone upstream are
// left out of the lines ("unavailable") while staying in the cart itself.
// Upstream failures surface to the caller; retrying is the caller's call,
// never automatic.
func (s *Service) View(ctx context.Context) (domain.View, error) {
	gen := s.gen.Add(1)

	items := s.cart.Items()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return domain.View{}, fmt.Errorf("resolve cart products: %w", err)
	}

	if s.gen.Load() != gen {
		return domain.View{}, ErrStale
	}

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := domain.View{
		Lines:    make([]domain.Line, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, it := range items {
		view.TotalItems += it.Quantity

		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}

		unit := decimal.NewFromFloat(p.Price)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		view.Lines = append(view.Lines, domain.Line{
			ProductID: p.ID,
			Title:     p.Title,
			Image:     p.Image,
			Quantity:  it.Quantity,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}

	return view, nil
}
