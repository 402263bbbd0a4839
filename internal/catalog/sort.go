package catalog

import (
	"sort"
	"strings"

	"github.com/wooldev/trolley-api/internal/resource"
)

// Option selects the ordering applied to the product catalog.
type Option int

const (
	// Unsorted leaves the catalog in the order the resource service returned it.
	Unsorted Option = iota
	// PriceLow orders by ascending price.
	PriceLow
	// PriceHigh orders by descending price.
	PriceHigh
	// NameAscending orders by name A to Z.
	NameAscending
	// NameDescending orders by name Z to A.
	NameDescending
	// Recommended orders by purchase popularity.
	Recommended
)

// ParseOption maps a query parameter value to a sort option. Matching is
// case-insensitive and unrecognised values fall back to Unsorted.
func ParseOption(raw string) Option {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return PriceLow
	case "high":
		return PriceHigh
	case "ascending":
		return NameAscending
	case "descending":
		return NameDescending
	case "recommended":
		return Recommended
	default:
		return Unsorted
	}
}

func (o Option) String() string {
	switch o {
	case PriceLow:
		return "low"
	case PriceHigh:
		return "high"
	case NameAscending:
		return "ascending"
	case NameDescending:
		return "descending"
	case Recommended:
		return "recommended"
	default:
		return "unsorted"
	}
}

// SortProducts returns a copy of products ordered by the given option.
// Recommended ordering requires shopper history and is handled by Rank, so
// this function treats it like Unsorted.
func SortProducts(products []resource.Product, opt Option) []resource.Product {
	out := make([]resource.Product, len(products))
	copy(out, products)
	switch opt {
	case PriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case PriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case NameAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case NameDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	}
	return out
}
