package handlers

import (
	applog "superstar/internal/log"
	"superstar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards the stock console. Anonymous shoppers get sent
// to the login form; a session that resolves to anything but an ADMIN
// operator is denied and logged with whatever account it resolved to.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			f := map[string]any{}
			if u != nil {
				f["email"] = u.Email
				f["role"] = u.Role
			}
			applog.Security(c, "console.access.denied", f)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
