// Package cart is the client-local shopping cart: an ordered list of line
// items persisted as one JSON blob under the "cart" storage key.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LineItem is one cart line. Lines are identified by (ID, SelectedColor,
// SelectedSize); a nil variant is distinct from any non-nil value.
type LineItem struct {
	ID            string          `json:"_id"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Image         string          `json:"image"`
	Quantity      int             `json:"quantity"`
	SelectedColor *string         `json:"selectedColor"`
	SelectedSize  *string         `json:"selectedSize"`
}

// MarshalJSON writes the price as a JSON number so the stored blob keeps the
// layout other storefront clients expect.
func (li LineItem) MarshalJSON() ([]byte, error) {
	type plain LineItem
	return json.Marshal(struct {
		plain
		Price json.RawMessage `json:"price"`
	}{
		plain: plain(li),
		Price: json.RawMessage(li.Price.String()),
	})
}

// Matches reports whether the line has the given identity key.
func (li LineItem) Matches(productID string, color, size *string) bool {
	return li.ID == productID && sameVariant(li.SelectedColor, color) && sameVariant(li.SelectedSize, size)
}

// LineTotal is price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneVariant(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

// Variant turns a possibly empty user-supplied value into a variant pointer.
func Variant(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Count is the total number of units across all lines.
func Count(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums LineTotal over items. Mixed currencies are not converted.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
