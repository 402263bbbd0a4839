package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/wooldev/trolley-api/internal/catalog"
	"github.com/wooldev/trolley-api/internal/resource"
)

func bought(name string, qty string) resource.Product {
	return resource.Product{Name: name, Quantity: decimal.RequireFromString(qty)}
}

func TestRankByPurchasedQuantity(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
		product("B", "2"),
		product("C", "3"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("A", "2")}},
		{CustomerID: 2, Products: []resource.Product{bought("B", "5")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Equal(t, []string{"B", "A", "C"}, names(ranked))
}

func TestRankSumsAcrossHistories(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
		product("B", "2"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("A", "1"), bought("B", "3")}},
		{CustomerID: 2, Products: []resource.Product{bought("A", "3")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Equal(t, []string{"A", "B"}, names(ranked))
}

func TestRankTiesKeepFirstEncounterOrder(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
		product("B", "2"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("B", "2")}},
		{CustomerID: 2, Products: []resource.Product{bought("A", "2")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Equal(t, []string{"B", "A"}, names(ranked))
}

func TestRankWithoutHistoriesKeepsCatalogOrder(t *testing.T) {
	products := []resource.Product{
		product("C", "3"),
		product("A", "1"),
		product("B", "2"),
	}

	ranked := catalog.Rank(products, nil)
	require.Equal(t, []string{"C", "A", "B"}, names(ranked))
}

func TestRankIgnoresPurchasesOutsideCatalog(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("Ghost", "99"), bought("A", "1")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Equal(t, []string{"A"}, names(ranked))
}

func TestRankKeepsDuplicateCatalogEntries(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
		product("B", "2"),
		product("A", "3"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("A", "4")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Len(t, ranked, len(products))
	require.Equal(t, []string{"A", "B", "A"}, names(ranked))
	require.Equal(t, "1", ranked[0].Price.String(), "the first catalog entry for the name ranks")
	require.Equal(t, "3", ranked[2].Price.String(), "the duplicate keeps its catalog position")
}

func TestRankIsPermutationOfCatalog(t *testing.T) {
	products := []resource.Product{
		product("A", "1"),
		product("B", "2"),
		product("C", "3"),
		product("D", "4"),
	}
	histories := []resource.ShopperHistory{
		{CustomerID: 1, Products: []resource.Product{bought("D", "1"), bought("B", "7")}},
	}

	ranked := catalog.Rank(products, histories)
	require.Len(t, ranked, len(products))
	require.ElementsMatch(t, names(products), names(ranked))
}
