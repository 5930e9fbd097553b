package handlers

import (
	"superstar/internal/log"
	"superstar/internal/services"
	"superstar/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	return render(c, "cart", fiber.Map{"Cart": cv})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("missing productId")
	}
	// The add operation always bumps by one; repeat posts accumulate.
	n := validate.Qty(c.FormValue("qty"))
	for i := 0; i < n; i++ {
		if err := h.Cart.Add(sid, productID); err != nil {
			if err == services.ErrOutOfStock {
				return c.Status(fiber.StatusConflict).Render("notfound", fiber.Map{"Message": "This item is out of stock"})
			}
			log.Error(c, "cart.add.fail", err, map[string]any{"product": productID})
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
	}
	log.Info(c, "cart.add", map[string]any{"product": productID, "qty": n})
	return c.Redirect("/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("missing productId")
	}
	// Zero removes the line; unknown ids are quietly ignored so a
	// double-click racing a removal is not an error.
	qty := validate.QtyOrZero(c.FormValue("qty"))
	h.Cart.UpdateQuantity(sid, productID, qty)
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Cart.Remove(sid, productID)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear(ensureSID(c))
	return c.Redirect("/cart")
}
