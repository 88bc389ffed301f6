package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "teststore/internal/log"
	"teststore/internal/services"
	"teststore/internal/validate"
	"teststore/internal/view"
)

type CartHandler struct {
	Cart   *services.CartService
	Notify *services.Notifier
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return render(c, "cart", fiber.Map{
		"Items": h.Cart.Items(sid),
		"Total": h.Cart.Total(sid),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}

	p, ok := h.Cart.Add(sid, id)
	if !ok {
		c.Status(fiber.StatusNotFound)
		return render(c, "notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	h.Notify.Show("Added " + p.Name + " to cart")
	applog.Info(c, "cart.add", map[string]any{"product_id": id})
	return c.Redirect(view.Shop.Path())
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}

	// Removing an id that is not in the cart is a silent no-op
	h.Cart.Remove(sid, id)
	applog.Info(c, "cart.remove", map[string]any{"product_id": id})
	return c.Redirect(view.Cart.Path())
}

func (h *CartHandler) Adjust(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}

	h.Cart.Adjust(sid, id, validate.Delta(c.FormValue("delta")))
	return c.Redirect(view.Cart.Path())
}
