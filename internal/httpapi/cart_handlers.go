package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	cartdomain "storefront/internal/cart/domain"
	cartviewapp "storefront/internal/cartview/app"
)

type cartBody struct {
	Items      []cartdomain.Item `json:"items"`
	TotalItems int               `json:"totalItems"`
}

func (s *Server) writeCart(w http.ResponseWriter, status int) {
	s.writeJSON(w, status, cartBody{
		Items:      s.cart.Items(),
		TotalItems: s.cart.TotalItems(),
	})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "productId is required", Code: "INVALID_ARGUMENT"})
		return
	}

	if err := s.cart.Add(r.Context(), body.ProductID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "quantity is required", Code: "INVALID_ARGUMENT"})
		return
	}

	if err := s.cart.SetQuantity(r.Context(), r.PathValue("id"), body.Quantity); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Clear(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeCart(w, http.StatusOK)
}

type viewLine struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type viewBody struct {
	Lines      []viewLine      `json:"lines"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// handleCartView returns the cart joined with catalog data. An upstream
// failure comes back 502 with retryable set: re-issuing the request is the
// retry affordance. A superseded resolution answers 204, the fresher
// in-flight request carries the data.
func (s *Server) handleCartView(w http.ResponseWriter, r *http.Request) {
	view, err := s.view.View(r.Context())
	if errors.Is(err, cartviewapp.ErrStale) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		status, code, msg := httpStatusFromErr(err)
		s.writeJSON(w, status, errorBody{Error: msg, Code: code, Retryable: true})
		return
	}

	body := viewBody{
		Lines:      make([]viewLine, 0, len(view.Lines)),
		TotalItems: view.TotalItems,
		Subtotal:   view.Subtotal,
	}
	for _, line := range view.Lines {
		body.Lines = append(body.Lines, viewLine{
			ProductID: line.ProductID,
			Title:     line.Title,
			Image:     line.Image,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}

	s.writeJSON(w, http.StatusOK, body)
}
