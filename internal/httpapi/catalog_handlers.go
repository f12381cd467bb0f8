package httpapi

import (
	"net/http"
	"strconv"

	catalogapp "storefront/internal/catalog/app"
	"storefront/internal/catalog/domain"
	"storefront/internal/filter"
)

type productPage struct {
	Products   []domain.Product `json:"products"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	state := filter.Parse(r.URL.RawQuery)

	products, totalPages, err := s.catalog.ListProducts(r.Context(), state.Page, s.pageSize, toFilters(state))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, productPage{
		Products:   products,
		Page:       state.Page,
		TotalPages: totalPages,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, products)
}

// toFilters narrows the URL filter state into the gateway predicate,
// parsing the price bounds. Unparseable bounds are dropped rather than
// rejected, matching how the storefront always treated its URL state.
func toFilters(state filter.State) catalogapp.Filters {
	f := catalogapp.Filters{Search: state.Search}

	if state.Category != "" && state.Category != filter.AllCategories {
		f.Category = state.Category
	}
	if v, err := strconv.ParseFloat(state.MinPrice, 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(state.MaxPrice, 64); err == nil {
		f.MaxPrice = &v
	}

	return f
}
