package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"superstar/internal/config"
	"superstar/internal/http/handlers"
	"superstar/internal/repos"
	"superstar/internal/services"
)

// App with the operator-facing routes: login (throttled like
// production), logout, and the stock console behind RequireAdmin.
func newConsoleApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", WAPhone: "918007835556", Business: "Super Star Agencies"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, cfg, authSvc)
	app.Get("/search", deps.SearchHandler.Search)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
	}), authH.Login)
	app.Post("/logout", authH.Logout)
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Stock)
	admin.Post("/stock", deps.AdminHandler.UpdateStock)

	return app
}

func get(app *fiber.App, path, sid string) (*http.Response, error) {
	req := httptest.NewRequest("GET", path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return app.Test(req)
}

func TestAdminRequiresSession(t *testing.T) {
	app := newConsoleApp(t)

	// Anonymous visitor: sent to the login form.
	resp, err := get(app, "/admin/", "")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("anonymous /admin expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	// A session that never logged in: denied outright.
	resp2, err := get(app, "/admin/", "shopper-session")
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusForbidden {
		t.Fatalf("unbound session expected 403, got %d", resp2.StatusCode)
	}

	// Mutations are guarded the same way.
	resp3, err := postForm(app, "/admin/stock", "shopper-session", url.Values{
		"productId": {"chips-salted"}, "inStock": {"0"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp3.StatusCode != http.StatusForbidden {
		t.Fatalf("unbound stock update expected 403, got %d", resp3.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newConsoleApp(t)

	cases := []url.Values{
		{"email": {"not-an-email"}, "password": {"Passw0rd!"}},
		{"email": {"admin@superstaragencies.test"}, "password": {"short"}},
		{"email": {"admin@superstaragencies.test"}, "password": {"WrongPass1!"}},
		{"email": {"nobody@superstaragencies.test"}, "password": {"Passw0rd!"}},
	}
	for _, form := range cases {
		resp, err := postForm(app, "/login", "s-bad", form)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("form %v expected 401, got %d", form, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "Invalid email or password") {
			t.Fatalf("form %v: page missing uniform error message", form)
		}
	}

	// Nothing above may have bound the session.
	resp, err := get(app, "/admin/", "s-bad")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("failed logins must not grant access, got %d", resp.StatusCode)
	}
}

func TestLoginGrantsConsoleAccess(t *testing.T) {
	app := newConsoleApp(t)

	sid := "operator-session"
	resp, err := postForm(app, "/login", sid, url.Values{
		"email": {"admin@superstaragencies.test"}, "password": {"Passw0rd!"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}

	resp2, err := get(app, "/admin/", sid)
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("console after login expected 200, got %d", resp2.StatusCode)
	}
	body, _ := io.ReadAll(resp2.Body)
	if !strings.Contains(string(body), "Salted Potato Chips") {
		t.Fatalf("console missing catalog rows:\n%s", body)
	}

	// Logout unbinds the session.
	if _, err := postForm(app, "/logout", sid, url.Values{}); err != nil {
		t.Fatal(err)
	}
	resp3, err := get(app, "/admin/", sid)
	if err != nil {
		t.Fatal(err)
	}
	if resp3.StatusCode != http.StatusForbidden {
		t.Fatalf("console after logout expected 403, got %d", resp3.StatusCode)
	}
}

func TestLoginThrottled(t *testing.T) {
	app := newConsoleApp(t)

	form := url.Values{"email": {"admin@superstaragencies.test"}, "password": {"WrongPass1!"}}
	for i := 0; i < 5; i++ {
		resp, err := postForm(app, "/login", "s-throttle", form)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d expected 401, got %d", i+1, resp.StatusCode)
		}
	}
	resp, err := postForm(app, "/login", "s-throttle", form)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("sixth attempt expected 429, got %d", resp.StatusCode)
	}
}

func TestAdminStockToggle(t *testing.T) {
	app := newConsoleApp(t)

	sid := "operator-session"
	if _, err := postForm(app, "/login", sid, url.Values{
		"email": {"admin@superstaragencies.test"}, "password": {"Passw0rd!"},
	}); err != nil {
		t.Fatal(err)
	}

	resp, err := postForm(app, "/admin/stock", sid, url.Values{
		"productId": {"chips-salted"}, "inStock": {"0"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("stock update expected redirect, got %d", resp.StatusCode)
	}

	page, err := get(app, "/product/chips-salted", "")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(page.Body)
	if !strings.Contains(string(body), "Out of Stock") {
		t.Fatalf("product page should show the toggled state:\n%s", body)
	}
}

func TestSearchRejectsHostileQuery(t *testing.T) {
	app := newConsoleApp(t)

	resp, err := get(app, "/search?q="+url.QueryEscape("<script>alert(1)</script>"), "")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("hostile query expected 400, got %d", resp.StatusCode)
	}
}

func TestProductDetailShowsRelatedItems(t *testing.T) {
	app := newConsoleApp(t)

	resp, err := get(app, "/product/chips-salted", "")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("product page expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "More in this category") {
		t.Fatalf("product page missing related shelf:\n%s", body)
	}
	if !strings.Contains(string(body), "Banana Chips") {
		t.Fatalf("related shelf missing sibling product:\n%s", body)
	}
}
