package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teststore/internal/catalog"
)

func TestFilterNoCriteriaReturnsFullCatalog(t *testing.T) {
	all := catalog.All()
	got := catalog.Filter("", catalog.WildcardCategory)
	require.Equal(t, all, got, "empty query with wildcard must return the catalog in seed order")
}

func TestFilterIsSubsetSatisfyingBothPredicates(t *testing.T) {
	got := catalog.Filter("a", "Electronics")
	for _, p := range got {
		assert.Equal(t, "Electronics", p.Category)
		assert.Contains(t, []int{1, 3, 4}, p.ID)
	}
}

func TestFilterCaseInsensitiveName(t *testing.T) {
	got := catalog.Filter("qUaNtUm", catalog.WildcardCategory)
	require.Len(t, got, 1)
	assert.Equal(t, "Quantum Speaker", got[0].Name)
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := catalog.Filter("", "Lifestyle")
	require.Len(t, got, 1)
	assert.Equal(t, "Glacier Flask", got[0].Name)

	// category match is exact, not substring
	assert.Empty(t, catalog.Filter("", "Life"))
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	got := catalog.Filter("no such product", catalog.WildcardCategory)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGet(t *testing.T) {
	p, ok := catalog.Get(6)
	require.True(t, ok)
	assert.Equal(t, "Glacier Flask", p.Name)
	assert.InDelta(t, 34.99, p.Price, 1e-9)

	_, ok = catalog.Get(42)
	assert.False(t, ok)
}

func TestCatalogInvariants(t *testing.T) {
	seen := map[int]bool{}
	cats := map[string]bool{}
	for _, c := range catalog.Categories() {
		cats[c] = true
	}
	for _, p := range catalog.All() {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.True(t, cats[p.Category], "unknown category %q", p.Category)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}
