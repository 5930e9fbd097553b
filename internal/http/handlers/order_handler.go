package handlers

import (
	"superstar/internal/log"
	"superstar/internal/order"
	"superstar/internal/services"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
}

// Checkout shows the delivery-details form with the cart summary, plus
// the composed message when one is still current.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv := h.Cart.View(sid)
	if len(cv.Lines) == 0 {
		return render(c, "cart", fiber.Map{"Cart": cv, "Err": "Your cart is empty!"})
	}
	data := fiber.Map{"Cart": cv, "Details": order.CustomerDetails{}, "Errors": map[string]string{}}
	if msg, ok := h.Order.Current(sid); ok {
		env := newRequestEnv(c)
		data["Msg"] = msg
		data["Embedded"] = env.Embedded()
	}
	return render(c, "checkout", data)
}

// Generate validates the posted details against the current cart and,
// on success, renders the checkout page with the WhatsApp link and the
// copyable message text.
func (h *OrderHandler) Generate(c *fiber.Ctx) error {
	sid := ensureSID(c)
	d := order.CustomerDetails{
		Name:    c.FormValue("name"),
		Mobile:  c.FormValue("mobile"),
		Address: c.FormValue("address"),
	}

	msg, err := h.Order.Generate(sid, d)
	if err != nil {
		cv := h.Cart.View(sid)
		switch e := err.(type) {
		case order.FieldErrors:
			fields := map[string]string{}
			for _, fe := range e {
				fields[fe.Field] = fe.Reason
			}
			log.Security(c, "validation.fail", map[string]any{"fields": fields})
			c.Status(fiber.StatusBadRequest)
			return render(c, "checkout", fiber.Map{
				"Cart": cv, "Details": d, "Errors": fields,
				"Err": "Please fill all details correctly",
			})
		default:
			if err == order.ErrEmptyCart {
				c.Status(fiber.StatusBadRequest)
				return render(c, "cart", fiber.Map{"Cart": cv, "Err": "Your cart is empty!"})
			}
			log.Error(c, "order.generate.fail", err, nil)
			c.Status(fiber.StatusInternalServerError)
			return render(c, "notfound", fiber.Map{"Message": "Could not prepare your order. Please retry."})
		}
	}

	env := newRequestEnv(c)
	log.Audit(c, "order.generate", map[string]any{
		"items": h.Cart.View(sid).TotalItems,
		"total": h.Cart.View(sid).TotalAmount,
	})
	return render(c, "checkout", fiber.Map{
		"Cart": h.Cart.View(sid), "Details": d, "Errors": map[string]string{},
		"Msg": msg, "Embedded": env.Embedded(),
	})
}

// Edited is posted when the visitor changes any delivery field after a
// message was generated; the composed pair is no longer current.
func (h *OrderHandler) Edited(c *fiber.Ctx) error {
	h.Order.Invalidate(ensureSID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Copy asks the host environment to copy the current message. The
// server-side env never has a clipboard, so this surfaces the manual
// fallback rather than failing the page.
func (h *OrderHandler) Copy(c *fiber.Ctx) error {
	sid := ensureSID(c)
	msg, ok := h.Order.Current(sid)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "no current order message; generate first"})
	}
	env := newRequestEnv(c)
	if err := env.CopyText(msg.Text); err != nil {
		log.Info(c, "order.copy.fallback", map[string]any{"reason": err.Error()})
		return c.JSON(fiber.Map{
			"copied":   false,
			"fallback": "Could not copy. Please copy the link manually.",
			"text":     msg.Text,
			"url":      msg.DeepLink,
		})
	}
	return c.JSON(fiber.Map{"copied": true})
}
