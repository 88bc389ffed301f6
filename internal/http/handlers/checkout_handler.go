package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "teststore/internal/log"
	"teststore/internal/services"
	"teststore/internal/validate"
	"teststore/internal/view"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
}

// Labels match the rendered form; validation messages quote them.
var checkoutFields = []validate.Field{
	{Name: "name", Label: "Full Name"},
	{Name: "email", Label: "Email Address"},
	{Name: "address", Label: "Shipping Address"},
	{Name: "card", Label: "Card Number"},
	{Name: "expiry", Label: "Expiry"},
	{Name: "cvc", Label: "CVC"},
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return render(c, "checkout", fiber.Map{
		"Total":  h.Cart.Total(sid),
		"Errors": map[string]string{},
		"Form":   map[string]string{},
	})
}

// Place validates field presence, then completes checkout: the cart is
// cleared and the browser lands on the success view. The payment fields
// are never persisted or transmitted anywhere.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	get := func(name string) string { return c.FormValue(name) }

	errs := validate.Presence(get, checkoutFields)
	if _, has := errs["email"]; !has && !validate.Email(get("email")) {
		errs["email"] = "Email Address is invalid"
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"form": "checkout", "errors": errs})
		c.Status(fiber.StatusBadRequest)
		return render(c, "checkout", fiber.Map{
			"Total":  h.Cart.Total(sid),
			"Errors": errs,
			"Form":   formEcho(c, "name", "email", "address", "card", "expiry", "cvc"),
		})
	}

	orderNo := h.Checkout.Place(sid)
	applog.Audit(c, "checkout.place", map[string]any{"order": orderNo})
	return c.Redirect(view.Success.Path())
}

func (h *CheckoutHandler) Success(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "success", fiber.Map{"OrderNumber": services.OrderNumber})
}
