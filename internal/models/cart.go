package models

import "github.com/shopspring/decimal"

// CartLine is a single (item, quantity) entry in a cart.
// UnitPrice and PrepMinutes are captured from the catalog when the line is
// first added, so pricing stays stable for the life of the line.
type CartLine struct {
	ItemID      int             `json:"item_id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	PrepMinutes int             `json:"prep_minutes"`
	Quantity    int             `json:"quantity"` // always >= 1 while the line exists
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartView is what the presentation layer sees after every cart mutation:
// the current lines plus all derived pricing, so callers never have to do
// money math themselves.
type CartView struct {
	Lines         []CartLine  `json:"lines"`
	TotalQuantity int         `json:"total_quantity"`
	Pricing       PricedOrder `json:"pricing"`
}

// AddItemRequest is the payload for adding one unit of an item to the cart.
type AddItemRequest struct {
	ItemID int `json:"item_id" validate:"required,gt=0"`
}

// SetQuantityRequest is the payload for replacing a line's quantity.
// Quantity 0 removes the line; negative values are rejected at this boundary.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
