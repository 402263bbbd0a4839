package trolley

import "github.com/shopspring/decimal"

// Product is a catalog entry scoped to a single pricing request. The price is
// a non-negative monetary amount with fixed decimal precision.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductQuantity is one requested line in the trolley, or one component of a
// special's required basket.
type ProductQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Special grants a fixed total price for buying the listed quantities
// together.
type Special struct {
	Quantities []ProductQuantity `json:"quantities"`
	Total      decimal.Decimal   `json:"total"`
}

// Trolley bundles the catalog subset, the offers and the requested quantities
// for a single pricing calculation. Nothing outlives the request.
type Trolley struct {
	Products   []Product         `json:"products" validate:"required"`
	Specials   []Special         `json:"specials"`
	Quantities []ProductQuantity `json:"quantities" validate:"required"`
}

// requiredQuantity returns the special's required quantity for the named
// product.
func (s Special) requiredQuantity(name string) (int, bool) {
	for _, q := range s.Quantities {
		if q.Name == name {
			return q.Quantity, true
		}
	}
	return 0, false
}
