// Package checkout builds the simulated-checkout order summary and the
// hand-off links (WhatsApp, email) used in place of real payment processing.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"goflare.io/storefront/models"
)

const (
	// Orders under this subtotal pay a flat shipping fee; at or above it
	// shipping is free. An empty cart ships nothing and pays nothing.
	freeShippingThreshold = 500.0
	flatShippingFee       = 25.0
)

// ShippingFee returns the estimated shipping cost for a subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal > 0 && subtotal < freeShippingThreshold {
		return flatShippingFee
	}
	return 0
}

// Line is one order-summary row.
type Line struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// Summary is the order summary derived from the current cart lines.
type Summary struct {
	Lines     []Line  `json:"lines"`
	ItemCount int     `json:"itemCount"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// BuildSummary derives a Summary from cart lines, using the prices captured
// when each line was added.
func BuildSummary(items []models.CartLine) Summary {
	s := Summary{Lines: make([]Line, 0, len(items))}
	for _, item := range items {
		s.Lines = append(s.Lines, Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Subtotal:  item.Subtotal(),
		})
		s.ItemCount += item.Quantity
		s.Subtotal += item.Subtotal()
	}
	s.Shipping = ShippingFee(s.Subtotal)
	s.Total = s.Subtotal + s.Shipping
	return s
}

// Text renders the summary as the plain-text message sent through the
// WhatsApp and email hand-offs.
func (s Summary) Text() string {
	if len(s.Lines) == 0 {
		return "The cart is empty."
	}

	var b strings.Builder
	b.WriteString("Order Summary:\n\n")

	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%s\n", line.Name)
		fmt.Fprintf(&b, "  Quantity: %d\n", line.Quantity)
		fmt.Fprintf(&b, "  Unit Price: $%.2f\n", line.UnitPrice)
		fmt.Fprintf(&b, "  Subtotal: $%.2f\n\n", line.Subtotal)
	}

	fmt.Fprintf(&b, "Shipping: $%.2f\n", s.Shipping)
	fmt.Fprintf(&b, "ORDER TOTAL: $%.2f\n\n", s.Total)
	b.WriteString("Thank you for your order!")

	return b.String()
}

// WhatsAppURL builds a wa.me link that opens a chat with the store number
// pre-filled with the order text.
func WhatsAppURL(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// MailtoURL builds a mailto link to the store address with the order text as
// the body.
func MailtoURL(address, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		address, url.QueryEscape(subject), url.QueryEscape(body))
}
