package handlers

import (
	"superstar/internal/config"
	"superstar/internal/order"
	"superstar/internal/repos"
	"superstar/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CategoryHandler  *CategoryHandler
	ProductHandler   *ProductHandler
	InventoryHandler *InventoryHandler
	SearchHandler    *SearchHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	AdminHandler     *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	invSvc := services.NewInventoryService(prodRepo)
	cartSvc := services.NewCartService(prodRepo)
	orderSvc := services.NewOrderService(cartSvc, order.Config{
		Recipient: cfg.WAPhone,
		Business:  cfg.Business,
	})

	return &Deps{
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc, Cart: cartSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Cart: cartSvc, Order: orderSvc},
		AdminHandler:     &AdminHandler{Catalog: catalogSvc, Inv: invSvc},
	}
}
