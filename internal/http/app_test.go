package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"teststore/internal/config"
	"teststore/internal/http/handlers"
	"teststore/internal/repos"
)

// newTestApp wires the full route table against an in-memory store,
// mirroring the setup in cmd/teststore.
func newTestApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	deps := handlers.NewDeps(db, cfg)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(deps.PageState())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Get("/", deps.Shop.Index)
	app.Get("/shop", deps.Shop.Index)
	app.Get("/cart", deps.Cart.View)
	app.Post("/cart", deps.Cart.Add)
	app.Post("/cart/remove", deps.Cart.Remove)
	app.Post("/cart/adjust", deps.Cart.Adjust)
	app.Get("/checkout", deps.Checkout.Form)
	app.Post("/checkout", deps.Checkout.Place)
	app.Get("/success", deps.Checkout.Success)
	app.Get("/login", deps.Auth.LoginForm)
	app.Post("/login", deps.Auth.Login)
	app.Post("/logout", deps.Auth.Logout)
	app.Get("/register", deps.Auth.RegisterForm)
	app.Post("/register", deps.Auth.Register)
	app.Get("/test-cases", deps.TestCases.List)
	app.Use(deps.Fallback)

	return app, deps
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// session carries the cookies a browser would hold across requests.
type session struct {
	t    *testing.T
	app  *fiber.App
	csrf string
	sid  string
}

func newSession(t *testing.T, app *fiber.App) *session {
	t.Helper()
	s := &session{t: t, app: app}
	resp := s.get("/shop")
	if s.csrf == "" || s.sid == "" {
		t.Fatalf("bootstrap GET did not set cookies (csrf=%q sid=%q)", s.csrf, s.sid)
	}
	resp.Body.Close()
	return s
}

func (s *session) do(req *http.Request) *http.Response {
	s.t.Helper()
	if s.csrf != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: s.csrf})
	}
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := s.app.Test(req)
	if err != nil {
		s.t.Fatal(err)
	}
	if v := extractCookie(resp, "csrf_"); v != "" {
		s.csrf = v
	}
	if v := extractCookie(resp, "sid"); v != "" {
		s.sid = v
	}
	return resp
}

func (s *session) get(path string) *http.Response {
	return s.do(httptest.NewRequest("GET", path, nil))
}

func (s *session) post(path string, form url.Values) *http.Response {
	form.Set("csrf", s.csrf)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}
