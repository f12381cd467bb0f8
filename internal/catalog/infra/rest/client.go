// Package rest adapts a json-server style product API to the catalog
// Source port.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"storefront/internal/catalog/app"
	"storefront/internal/catalog/domain"
)

const totalCountHeader = "X-Total-Count"

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}
}

// List fetches one page via the upstream's offset/limit parameters. The
// total is the size of the filtered set: the X-Total-Count header serves
// for unfiltered listings, but with filters active the upstream header
// counts the whole catalog, so a dedicated unpaginated count query runs
// instead.
func (c *Client) List(ctx context.Context, page, limit int, f app.Filters) ([]domain.Product, int, error) {
	params := filterParams(f)
	params.Set("_page", strconv.Itoa(page))
	params.Set("_limit", strconv.Itoa(limit))

	resp, err := c.get(ctx, "/products", params)
	if err != nil {
		return nil, 0, err
	}

	products, err := decodeProducts(resp.Body())
	if err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	total, err := c.countMatching(ctx, f, resp.Header().Get(totalCountHeader))
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (c *Client) Get(ctx context.Context, id string) (domain.Product, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/products/" + url.PathEscape(id))
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %v", app.ErrUpstream, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.Product{}, fmt.Errorf("%w: id %s", app.ErrNotFound, id)
	}
	if !resp.IsSuccess() {
		return domain.Product{}, fmt.Errorf("%w: GET /products/%s: status %d", app.ErrUpstream, id, resp.StatusCode())
	}

	var wp wireProduct
	if err := json.Unmarshal(resp.Body(), &wp); err != nil {
		return domain.Product{}, fmt.Errorf("decode product: %w", err)
	}
	return wp.toDomain(), nil
}

// GetByIDs issues one batch lookup. An empty id set short-circuits to an
// empty slice with no request at all; ids unknown upstream simply do not
// appear in the result.
func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	params := url.Values{"id": ids}
	resp, err := c.get(ctx, "/products", params)
	if err != nil {
		return nil, err
	}

	products, err := decodeProducts(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Search runs the upstream free-text query. A body that is not a product
// array yields an empty result, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("q", query)

	resp, err := c.get(ctx, "/products", params)
	if err != nil {
		return nil, err
	}

	products, err := decodeProducts(resp.Body())
	if err != nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*resty.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUpstream, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: status %d", app.ErrUpstream, path, resp.StatusCode())
	}
	return resp, nil
}

// countMatching resolves the size of the filtered set. Unfiltered listings
// trust the total-count header; filtered ones re-issue the query without
// pagination and measure the result.
func (c *Client) countMatching(ctx context.Context, f app.Filters, header string) (int, error) {
	if !f.Active() {
		if total, err := strconv.Atoi(header); err == nil && total >= 0 {
			return total, nil
		}
	}

	resp, err := c.get(ctx, "/products", filterParams(f))
	if err != nil {
		return 0, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}
	return len(records), nil
}

// filterParams translates Filters into the upstream dialect. When either
// price bound is set both are sent, the absent one padded with its extreme,
// which is how the upstream expects ranges.
func filterParams(f app.Filters) url.Values {
	params := url.Values{}

	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("title_like", f.Search)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		gte, lte := 0.0, 9999.0
		if f.MinPrice != nil {
			gte = *f.MinPrice
		}
		if f.MaxPrice != nil {
			lte = *f.MaxPrice
		}
		params.Set("price_gte", strconv.FormatFloat(gte, 'f', -1, 64))
		params.Set("price_lte", strconv.FormatFloat(lte, 'f', -1, 64))
	}

	return params
}

func decodeProducts(body []byte) ([]domain.Product, error) {
	var wire []wireProduct
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(wire))
	for _, wp := range wire {
		products = append(products, wp.toDomain())
	}
	return products, nil
}
