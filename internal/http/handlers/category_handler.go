package handlers

import (
	"superstar/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
	Cart    *services.CartService
}

func (h *CategoryHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	products, err := h.Catalog.ListProducts(1, 24)
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	cv := h.Cart.View(ensureSID(c))
	return render(c, "home", fiber.Map{"Categories": cats, "Products": products, "CartCount": cv.TotalItems})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	catID := c.Params("id")
	products, err := h.Catalog.ListProductsByCategory(catID, 1, 24)
	if err != nil {
		return c.Status(500).SendString(err.Error())
	}
	cv := h.Cart.View(ensureSID(c))
	return render(c, "category", fiber.Map{"CategoryID": catID, "Products": products, "CartCount": cv.TotalItems})
}
