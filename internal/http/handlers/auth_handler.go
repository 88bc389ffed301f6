package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"teststore/internal/domain"
	applog "teststore/internal/log"
	"teststore/internal/services"
	"teststore/internal/validate"
	"teststore/internal/view"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Notify *services.Notifier
}

var loginFields = []validate.Field{
	{Name: "username", Label: "Username"},
	{Name: "password", Label: "Password"},
}

var registerFields = []validate.Field{
	{Name: "name", Label: "Full Name"},
	{Name: "email", Label: "Email"},
	{Name: "username", Label: "Username"},
	{Name: "password", Label: "Password"},
	{Name: "confirm", Label: "Confirm Password"},
}

// LoginForm renders a clean login page; any prior inline error is gone.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "login", fiber.Map{
		"Err": "", "Errors": map[string]string{},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ensureSID(c)
	get := func(name string) string { return c.FormValue(name) }

	if errs := validate.Presence(get, loginFields); len(errs) > 0 {
		c.Status(fiber.StatusBadRequest)
		return render(c, "login", fiber.Map{"Err": "", "Errors": errs})
	}

	username := get("username")
	err := h.Auth.Login(username, get("password"))
	if errors.Is(err, domain.ErrInvalidCredentials) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		c.Status(fiber.StatusUnauthorized)
		return render(c, "login", fiber.Map{
			"Err": "Invalid username or password", "Errors": map[string]string{},
		})
	}
	if err != nil {
		return err
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect(view.Shop.Path())
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ensureSID(c)
	if err := h.Auth.Logout(); err != nil {
		return err
	}
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect(view.Shop.Path())
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	ensureSID(c)
	return render(c, "register", fiber.Map{
		"Err": "", "Errors": map[string]string{}, "Form": map[string]string{},
	})
}

// Register creates a persisted account. Duplicate usernames fail inline;
// the new account is never logged in automatically.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ensureSID(c)
	get := func(name string) string { return c.FormValue(name) }
	echo := func() map[string]string {
		return formEcho(c, "name", "email", "username")
	}

	errs := validate.Presence(get, registerFields)
	if _, has := errs["email"]; !has && !validate.Email(get("email")) {
		errs["email"] = "Email is invalid"
	}
	if len(errs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"form": "register", "errors": errs})
		c.Status(fiber.StatusBadRequest)
		return render(c, "register", fiber.Map{"Err": "", "Errors": errs, "Form": echo()})
	}

	username := get("username")
	err := h.Auth.Register(get("name"), get("email"), username, get("password"))
	if errors.Is(err, domain.ErrDuplicateUsername) {
		applog.Security(c, "auth.register.duplicate", map[string]any{"username": username})
		c.Status(fiber.StatusConflict)
		return render(c, "register", fiber.Map{
			"Err": "Username already taken", "Errors": map[string]string{}, "Form": echo(),
		})
	}
	if err != nil {
		return err
	}

	h.Notify.Show("Registration successful! Please login.")
	applog.Audit(c, "auth.register.success", map[string]any{"username": username})
	return c.Redirect(view.Login.Path())
}
