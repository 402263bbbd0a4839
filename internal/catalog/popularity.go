package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wooldev/trolley-api/internal/resource"
)

// Rank orders the catalog by how much of each product shoppers have bought
// across all histories. Products never purchased keep their catalog order and
// follow the ranked ones. Ties between purchased products preserve the order
// in which they first appear in the histories.
func Rank(products []resource.Product, histories []resource.ShopperHistory) []resource.Product {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0, len(products))
	for _, history := range histories {
		for _, bought := range history.Products {
			if _, seen := totals[bought.Name]; !seen {
				order = append(order, bought.Name)
			}
			totals[bought.Name] = totals[bought.Name].Add(bought.Quantity)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].GreaterThan(totals[order[j]])
	})

	ranked := make([]resource.Product, 0, len(products))
	emitted := make([]bool, len(products))
	for _, name := range order {
		for i, p := range products {
			if !emitted[i] && p.Name == name {
				ranked = append(ranked, p)
				emitted[i] = true
				break
			}
		}
	}
	for i, p := range products {
		if !emitted[i] {
			ranked = append(ranked, p)
		}
	}
	return ranked
}
