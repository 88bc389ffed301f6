// Package catalog holds the static product list and its filter. The data
// is fixed on purpose: automation scripts assert against these exact
// names, prices and ids.
package catalog

import (
	"strings"

	"teststore/internal/domain"
)

var products = []domain.Product{
	{
		ID:          1,
		Name:        "Quantum Speaker",
		Price:       199.99,
		Description: "Experience sound like never before with high-fidelity audio.",
		Category:    "Electronics",
		Image:       "https://picsum.photos/seed/speaker/400/400",
		Rating:      4.5,
	},
	{
		ID:          2,
		Name:        "Nebula Smartwatch",
		Price:       249.50,
		Description: "Track your fitness and stay connected with this sleek smartwatch.",
		Category:    "Wearables",
		Image:       "https://picsum.photos/seed/watch/400/400",
		Rating:      4.8,
	},
	{
		ID:          3,
		Name:        "Titanium Laptop",
		Price:       1299.99,
		Description: "The ultimate power machine for creators and professionals.",
		Category:    "Electronics",
		Image:       "https://picsum.photos/seed/laptop/400/400",
		Rating:      4.9,
	},
	{
		ID:          4,
		Name:        "Aurora Headphones",
		Price:       150.00,
		Description: "Active noise cancelling with 40 hours of battery life.",
		Category:    "Electronics",
		Image:       "https://picsum.photos/seed/headphone/400/400",
		Rating:      4.2,
	},
	{
		ID:          5,
		Name:        "Zenith Coffee Maker",
		Price:       89.95,
		Description: "Brew the perfect cup of coffee every single morning.",
		Category:    "Home",
		Image:       "https://picsum.photos/seed/coffee/400/400",
		Rating:      4.0,
	},
	{
		ID:          6,
		Name:        "Glacier Flask",
		Price:       34.99,
		Description: "Keeps drinks cold for 24 hours or hot for 12 hours.",
		Category:    "Lifestyle",
		Image:       "https://picsum.photos/seed/flask/400/400",
		Rating:      4.7,
	},
}

// WildcardCategory matches every category in Filter.
const WildcardCategory = "All"

// All returns the full catalog in seed order.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Get looks up a product by id.
func Get(id int) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Categories returns the selectable category values, wildcard first.
func Categories() []string {
	return []string{WildcardCategory, "Electronics", "Wearables", "Home", "Lifestyle"}
}

// Filter returns the products whose name contains query
// (case-insensitive) and whose category equals the selector, unless the
// selector is the wildcard. Order is preserved; an empty result is a
// valid, displayable state.
func Filter(query, category string) []domain.Product {
	q := strings.ToLower(query)
	out := []domain.Product{}
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != WildcardCategory && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
