package models

import (
	"time"

	"github.com/stripe/stripe-go/v79"

	"goflare.io/storefront/models/enum"
)

// CartEvent is emitted after every completed cart mutation. It carries the
// derived values at the time of the mutation so subscribers (header badge,
// analytics) can render without querying the store.
type CartEvent struct {
	ID         string             `json:"id"`
	Type       enum.CartEventType `json:"type"`
	ProductID  ProductID          `json:"product_id,omitempty"`
	Quantity   int                `json:"quantity,omitempty"`
	ItemCount  int                `json:"item_count"`
	Total      float64            `json:"total"`
	Currency   stripe.Currency    `json:"currency"`
	Processed  bool               `json:"processed"`
	OccurredAt time.Time          `json:"occurred_at"`
}
