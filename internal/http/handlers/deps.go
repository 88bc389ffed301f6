package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"teststore/internal/config"
	"teststore/internal/repos"
	"teststore/internal/services"
	"teststore/internal/view"
)

type Deps struct {
	Shop      *ShopHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Auth      *AuthHandler
	TestCases *TestCasesHandler

	AuthSvc     *services.AuthService
	CartSvc     *services.CartService
	CheckoutSvc *services.CheckoutService
	Notifier    *services.Notifier
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	accountRepo := repos.NewAccountRepo(db)

	authSvc := &services.AuthService{Accounts: accountRepo}
	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(cartSvc)
	notifier := services.NewNotifier(services.DefaultToastTTL)

	return &Deps{
		Shop:      &ShopHandler{},
		Cart:      &CartHandler{Cart: cartSvc, Notify: notifier},
		Checkout:  &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc},
		Auth:      &AuthHandler{Auth: authSvc, Notify: notifier},
		TestCases: &TestCasesHandler{},

		AuthSvc:     authSvc,
		CartSvc:     cartSvc,
		CheckoutSvc: checkoutSvc,
		Notifier:    notifier,
	}
}

// PageState attaches the data every page render needs: the session id,
// the authenticated username, the cart badge count and the active toast.
func (d *Deps) PageState() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c)
		if u := d.AuthSvc.Current(); u != "" {
			c.Locals("user", u)
		}
		c.Locals("cartCount", d.CartSvc.Count(sid))
		if msg := d.Notifier.Current(); msg != "" {
			c.Locals("notification", msg)
		}
		return c.Next()
	}
}

// Fallback terminates the route chain. A single-segment GET path is a
// navigation token: unrecognized tokens resolve to the default view (the
// shop) rather than a 404, matching the navigation contract automation
// scripts rely on. Anything deeper is a genuine not-found.
func (d *Deps) Fallback(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodGet {
		token := strings.Trim(c.Path(), "/")
		if !strings.Contains(token, "/") {
			if v := view.Parse(token); v != view.Default {
				return c.Redirect(v.Path())
			}
			return d.Shop.Index(c)
		}
	}
	c.Status(fiber.StatusNotFound)
	return render(c, "notfound", fiber.Map{"Message": "Page not found"})
}
