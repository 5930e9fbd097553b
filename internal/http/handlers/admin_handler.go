package handlers

import (
	"superstar/internal/log"
	"superstar/internal/services"
	"superstar/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Inv     *services.InventoryService
}

func (h *AdminHandler) Stock(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(1, 100)
	if err != nil {
		log.Error(c, "admin.stock.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_stock", fiber.Map{"Products": products})
}

func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(400).SendString("missing productId")
	}
	inStock := c.FormValue("inStock") == "1"
	if err := h.Inv.SetStock(productID, inStock); err != nil {
		log.Error(c, "admin.stock.update", err, map[string]any{"product": productID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update stock"})
	}
	log.Audit(c, "admin.stock.update", map[string]any{"product": productID, "in_stock": inStock})
	return c.Redirect("/admin")
}
