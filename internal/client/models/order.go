package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one purchased line, copied from the cart at checkout.
type OrderLine struct {
	ProductID     string          `json:"productId"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Quantity      int             `json:"quantity"`
	SelectedColor *string         `json:"selectedColor"`
	SelectedSize  *string         `json:"selectedSize"`
}

// Order is the document the client posts to /api/orders. The server treats
// it as opaque JSON.
type Order struct {
	Email     string          `json:"email"`
	Status    string          `json:"status"`
	Items     []OrderLine     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Currency  string          `json:"currency"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
