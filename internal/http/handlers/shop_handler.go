package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"teststore/internal/catalog"
)

type ShopHandler struct{}

// Index renders the catalog, filtered by the search box and category
// dropdown. An empty result renders the no-results panel, not an error.
func (h *ShopHandler) Index(c *fiber.Ctx) error {
	ensureSID(c)

	q := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = catalog.WildcardCategory
	}

	return render(c, "shop", fiber.Map{
		"Q":          q,
		"Category":   category,
		"Categories": catalog.Categories(),
		"Products":   catalog.Filter(q, category),
	})
}
