package catalog

import (
	"context"

	"goflare.io/storefront/models"
)

var _ Repository = (*Static)(nil)

// Static serves a fixed product list from memory. It backs deployments
// without a catalog database and the test suite.
type Static struct {
	products []models.Product
	index    map[models.ProductID]int
}

func NewStatic(products []models.Product) *Static {
	s := &Static{
		products: make([]models.Product, len(products)),
		index:    make(map[models.ProductID]int, len(products)),
	}
	copy(s.products, products)
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	return s
}

func (s *Static) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *Static) GetByID(_ context.Context, id models.ProductID) (*models.Product, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}
