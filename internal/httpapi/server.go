// Package httpapi is the JSON surface the storefront presentation consumes:
// catalog browsing, the cart, and the resolved cart view.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	cartapp "storefront/internal/cart/app"
	catalogapp "storefront/internal/catalog/app"
	cartviewapp "storefront/internal/cartview/app"
)

type Server struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Store
	view     *cartviewapp.Service
	pageSize int
	log      *slog.Logger
}

func NewServer(catalog *catalogapp.Service, cart *cartapp.Store, view *cartviewapp.Service, pageSize int, log *slog.Logger) *Server {
	if pageSize <= 0 {
		pageSize = catalogapp.DefaultPageSize
	}
	return &Server{catalog: catalog, cart: cart, view: view, pageSize: pageSize, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)
	mux.HandleFunc("GET /api/search", s.handleSearch)

	mux.HandleFunc("GET /api/cart", s.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", s.handleAddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", s.handleSetQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", s.handleRemoveItem)
	mux.HandleFunc("DELETE /api/cart", s.handleClearCart)
	mux.HandleFunc("GET /api/cart/view", s.handleCartView)

	return s.withRequestLog(mux)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response", slog.Any("err", err))
	}
}

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code, msg := httpStatusFromErr(err)
	s.writeJSON(w, status, errorBody{Error: msg, Code: code})
}
