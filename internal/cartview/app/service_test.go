package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cartview/app"
)

type fakeCart struct {
	items []app.CartItem
}

func (f *fakeCart) Items() []app.CartItem { return f.items }

type fakeCatalog struct {
	products []app.Product
	err      error
	gotIDs   []string

	// onFetch, when set, runs during GetByIDs, before returning. Lets a
	// test start a newer resolution mid-flight.
	onFetch func()
}

func (f *fakeCatalog) GetByIDs(_ context.Context, ids []string) ([]app.Product, error) {
	f.gotIDs = ids
	if f.onFetch != nil {
		f.onFetch()
	}
	if f.err != nil {
		return nil, f.err
	}
	if len(ids) == 0 {
		return []app.Product{}, nil
	}
	return f.products, nil
}

func TestViewJoinsCartAndCatalog(t *testing.T) {
	cart := &fakeCart{items: []app.CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}}
	catalog := &fakeCatalog{products: []app.Product{
		{ID: "p1", Title: "Lamp", Price: 19.99},
		{ID: "p2", Title: "Mug", Price: 7.50},
	}}

	view, err := app.NewService(cart, catalog).View(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2"}, catalog.gotIDs)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.TotalItems)

	assert.Equal(t, "Lamp", view.Lines[0].Title)
	assert.True(t, view.Lines[0].LineTotal.Equal(decimal.RequireFromString("39.98")),
		"line total %s", view.Lines[0].LineTotal)
	assert.True(t, view.Subtotal.Equal(decimal.RequireFromString("47.48")),
		"subtotal %s", view.Subtotal)
}

func TestViewOmitsUnavailableProducts(t *testing.T) {
	cart := &fakeCart{items: []app.CartItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "gone", Quantity: 4},
	}}
	catalog := &fakeCatalog{products: []app.Product{
		{ID: "p1", Title: "Lamp", Price: 10},
	}}

	view, err := app.NewService(cart, catalog).View(context.Background())
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p1", view.Lines[0].ProductID)
	// the badge still counts the unresolved item; the cart was not touched
	assert.Equal(t, 5, view.TotalItems)
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(10)))
}

func TestViewEmptyCart(t *testing.T) {
	view, err := app.NewService(&fakeCart{}, &fakeCatalog{}).View(context.Background())
	require.NoError(t, err)

	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.TotalItems)
	assert.True(t, view.Subtotal.IsZero())
}

func TestViewSurfacesUpstreamError(t *testing.T) {
	boom := errors.New("upstream down")
	cart := &fakeCart{items: []app.CartItem{{ProductID: "p1", Quantity: 1}}}
	catalog := &fakeCatalog{err: boom}

	_, err := app.NewService(cart, catalog).View(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestViewDiscardsStaleResolution(t *testing.T) {
	ctx := context.Background()
	cart := &fakeCart{items: []app.CartItem{{ProductID: "p1", Quantity: 1}}}
	catalog := &fakeCatalog{products: []app.Product{{ID: "p1", Title: "Lamp", Price: 10}}}
	svc := app.NewService(cart, catalog)

	// While the first resolution is fetching, a newer one starts and
	// completes. The first must come back ErrStale, the newer one wins.
	started := false
	catalog.onFetch = func() {
		if started {
			return
		}
		started = true

		view, err := svc.View(ctx)
		require.NoError(t, err)
		assert.Len(t, view.Lines, 1)
	}

	_, err := svc.View(ctx)
	assert.True(t, errors.Is(err, app.ErrStale), "got %v", err)
}
