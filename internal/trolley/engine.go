package trolley

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrEmptyCatalog is returned when a trolley carries no products, leaving the
// minimum catalog price undefined. It is raised before any line is priced.
var ErrEmptyCatalog = errors.New("trolley: catalog is empty, minimum price undefined")

// Total prices a validated trolley. Each quantity line is priced
// independently at the lower of its no-discount price and its best specials
// price, and the line prices are summed without intermediate rounding.
func Total(t *Trolley) (decimal.Decimal, error) {
	minPrice, ok := minimumPrice(t.Products)
	if !ok {
		return decimal.Zero, ErrEmptyCatalog
	}
	total := decimal.Zero
	for _, q := range t.Quantities {
		total = total.Add(linePrice(q, t.Specials, minPrice))
	}
	return total, nil
}

// BestSpecial finds the single special applicable to the named product. The
// winner among specials referencing the name is the one with the highest
// declared total, not the one with the best effective discount. It reports
// false when no special references the product.
func BestSpecial(name string, specials []Special) (Special, bool) {
	var best Special
	found := false
	for _, s := range specials {
		if _, ok := s.requiredQuantity(name); !ok {
			continue
		}
		if !found || s.Total.GreaterThan(best.Total) {
			best = s
			found = true
		}
	}
	return best, found
}

func linePrice(q ProductQuantity, specials []Special, minPrice decimal.Decimal) decimal.Decimal {
	unmarked := decimal.NewFromInt(int64(q.Quantity)).Mul(minPrice)

	special, ok := BestSpecial(q.Name, specials)
	if !ok || special.Total.Sign() <= 0 {
		return unmarked
	}
	bundleQty, ok := special.requiredQuantity(q.Name)
	if !ok || bundleQty <= 0 {
		return unmarked
	}

	fullBundles := q.Quantity / bundleQty
	remainder := q.Quantity % bundleQty
	specialsPrice := decimal.NewFromInt(int64(fullBundles)).Mul(special.Total).
		Add(decimal.NewFromInt(int64(remainder)).Mul(minPrice))

	// The customer never pays more than the no-discount price.
	if unmarked.LessThanOrEqual(specialsPrice) {
		return unmarked
	}
	return specialsPrice
}

// minimumPrice returns the lowest price found anywhere in the catalog. The
// no-discount price of every line uses this catalog-wide minimum rather than
// the named product's own price; existing callers depend on that behaviour.
func minimumPrice(products []Product) (decimal.Decimal, bool) {
	if len(products) == 0 {
		return decimal.Zero, false
	}
	minPrice := products[0].Price
	for _, p := range products[1:] {
		if p.Price.LessThan(minPrice) {
			minPrice = p.Price
		}
	}
	return minPrice, true
}
