package handlers

import (
	"superstar/internal/domain"
	"superstar/internal/log"
	"superstar/internal/services"
	"superstar/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// Detail renders one product with a shelf of up to four other items
// from the same category, so an out-of-stock page still offers
// something orderable.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	shelf, err := h.Catalog.ListProductsByCategory(p.CategoryID, 1, 5)
	if err != nil {
		log.Error(c, "catalog.related.error", err, map[string]any{"product": p.ID})
		shelf = nil
	}
	related := make([]domain.Product, 0, 4)
	for _, r := range shelf {
		if r.ID != p.ID && len(related) < 4 {
			related = append(related, r)
		}
	}

	return render(c, "product", fiber.Map{"P": p, "Related": related})
}
