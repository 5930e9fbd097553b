package handlers

import (
	"time"

	"superstar/internal/log"
	"superstar/internal/services"
	"superstar/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthHandler drives the stock-console sign-in. The same sid cookie
// that carries a shopper's cart carries the operator binding after a
// successful login.
type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

// rejectLogin logs the attempt and re-renders the form. The response
// never says which check failed.
func rejectLogin(c *fiber.Ctx, email, reason string) error {
	log.Security(c, "console.login.fail", map[string]any{"email": email, "reason": reason})
	c.Status(fiber.StatusUnauthorized)
	return render(c, "login", fiber.Map{"Err": "Invalid email or password"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		return rejectLogin(c, email, "bad_email_format")
	}
	if !validate.Password(pass) {
		return rejectLogin(c, email, "bad_password_format")
	}

	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		return rejectLogin(c, email, "bad_credentials")
	}

	log.Audit(c, "console.login.success", map[string]any{"email": email})
	return c.Redirect("/admin")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expiring the cookie also drops the shopper cart keyed on it.
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "console.logout", nil)
	return c.Redirect("/")
}
