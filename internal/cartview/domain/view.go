package domain

import "github.com/shopspring/decimal"

// Line is one cart item joined with its resolved catalog product.
type Line struct {
	ProductID string
	Title     string
	Image     string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// View is the fully resolved cart: lines in cart insertion order, the badge
// count over the whole cart, and the money subtotal of the resolved lines.
type View struct {
	Lines      []Line
	TotalItems int
	Subtotal   decimal.Decimal
}
