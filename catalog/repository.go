// Package catalog supplies the read-only product catalog. The cart treats it
// as an external collaborator: products are immutable records, and any field
// beyond id, name, price, and image is passed through opaquely.
package catalog

import (
	"context"
	"errors"

	"goflare.io/storefront/models"
)

// ErrProductNotFound is returned when no product matches the requested id.
var ErrProductNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id models.ProductID) (*models.Product, error)
}
