package models

import (
	"github.com/stripe/stripe-go/v79"
)

// CartLine 代表購物車中的單個商品項目
//
// The embedded Product is a snapshot taken when the line was first added;
// its price stays fixed for the life of the line. Quantity is always >= 1;
// a mutation that would drop it to zero removes the line instead.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is the add-time unit price multiplied by the quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartSummary carries the derived values consumers display in the header
// badge and the cart page. It is computed on demand and never persisted.
type CartSummary struct {
	ItemCount int             `json:"itemCount"`
	Total     float64         `json:"total"`
	Currency  stripe.Currency `json:"currency"`
}
