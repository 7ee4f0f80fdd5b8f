package cart

import (
	"goflare.io/storefront/models"
)

// Command is the closed set of cart mutations. Every state change goes
// through reduce with one of these variants; there is no other writer.
type Command interface {
	isCommand()
}

// AddItem merges into an existing line for the same product id, summing
// quantities, or appends a new line with a snapshot of the product.
type AddItem struct {
	Product  models.Product
	Quantity int
}

// RemoveItem drops the line with the given product id. Absent ids are a
// no-op, not an error.
type RemoveItem struct {
	ID models.ProductID
}

// UpdateQuantity sets a line's quantity to an absolute value. A value of
// zero or below removes the line. Absent ids are a no-op.
type UpdateQuantity struct {
	ID       models.ProductID
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (ClearCart) isCommand()      {}
