package domain

// Product is a catalog record as served by the upstream product API.
// IDs are always strings here; the REST adapter normalizes whatever the
// upstream encodes (numbers included) before a Product is built, so
// Product.ID compares equal to cart product IDs downstream.
type Product struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Reviews        []Review          `json:"reviews"`
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
