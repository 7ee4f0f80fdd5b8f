package models

import (
	"encoding/json"
	"fmt"
)

// ProductID is the catalog identifier for a product. Catalog sources are free
// to use numeric or string identifiers, so JSON decoding accepts both and
// normalizes to a string.
type ProductID string

func (id ProductID) String() string {
	return string(id)
}

func (id ProductID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or a number: %w", err)
	}
	*id = ProductID(n.String())

	return nil
}

// Spec is a single technical specification entry on a product page.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product 代表型錄中的商品
//
// Products are supplied by an external catalog source and are never mutated
// here. The cart copies the fields it needs at the moment a line is added, so
// later catalog changes do not touch existing cart lines. Stock is nil when
// the catalog does not track inventory for the product.
type Product struct {
	ID              ProductID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Price           float64   `json:"price"`
	Image           string    `json:"image"`
	Images          []string  `json:"images,omitempty"`
	Category        string    `json:"category,omitempty"`
	Brand           string    `json:"brand,omitempty"`
	Stock           *int      `json:"stock,omitempty"`
	Rating          float64   `json:"rating,omitempty"`
	NumReviews      int       `json:"numReviews,omitempty"`
	Specs           []Spec    `json:"specs,omitempty"`
	Features        []string  `json:"features,omitempty"`
}
