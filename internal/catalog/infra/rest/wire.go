package rest

import (
	"encoding/json"
	"fmt"

	"storefront/internal/catalog/domain"
)

// flexID accepts either a JSON string or a JSON number and lands on a
// string. The upstream is loose about identifier types; downstream code
// relies on a single canonical one.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}

	return fmt.Errorf("id is neither string nor number: %s", data)
}

type wireProduct struct {
	ID             flexID            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Reviews        []wireReview      `json:"reviews"`
}

type wireReview struct {
	ID       flexID `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

func (wp wireProduct) toDomain() domain.Product {
	reviews := make([]domain.Review, 0, len(wp.Reviews))
	for _, wr := range wp.Reviews {
		reviews = append(reviews, domain.Review{
			ID:       string(wr.ID),
			UserName: wr.UserName,
			Rating:   wr.Rating,
			Comment:  wr.Comment,
			Date:     wr.Date,
		})
	}

	return domain.Product{
		ID:             string(wp.ID),
		Title:          wp.Title,
		Description:    wp.Description,
		Price:          wp.Price,
		Images:         wp.Images,
		Category:       wp.Category,
		Specifications: wp.Specifications,
		Reviews:        reviews,
	}
}
