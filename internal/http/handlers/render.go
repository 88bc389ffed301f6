package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const layout = "layouts/main"

// render draws a view inside the shared layout, injecting the page state
// the layout expects (user greeting, cart badge, toast, csrf token).
func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u, ok := c.Locals("user").(string); ok && u != "" {
		data["User"] = u
	}
	if n, ok := c.Locals("cartCount").(int); ok {
		data["CartCount"] = n
	}
	if msg, ok := c.Locals("notification").(string); ok && msg != "" {
		data["Notification"] = msg
	}
	if tok, ok := c.Locals("CSRFToken").(string); ok && tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		// Fallback when the middleware local was not populated
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data, layout)
}

// ensureSID returns the browsing-session id, minting the cookie on first
// contact. The same id is reused for every lookup within one request.
func ensureSID(c *fiber.Ctx) string {
	if sid, ok := c.Locals("sid").(string); ok && sid != "" {
		return sid
	}
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	c.Locals("sid", sid)
	return sid
}

// formEcho captures submitted values so a failed validation can re-render
// the form without dropping the user's input.
func formEcho(c *fiber.Ctx, names ...string) map[string]string {
	out := map[string]string{}
	for _, n := range names {
		out[n] = c.FormValue(n)
	}
	return out
}
