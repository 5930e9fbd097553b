package services

import (
	"database/sql"

	"superstar/internal/domain"
	"superstar/internal/repos"
)

type InventoryService struct {
	Prods *repos.ProductRepo
}

func NewInventoryService(prods *repos.ProductRepo) *InventoryService {
	return &InventoryService{Prods: prods}
}

// CheckAvailability maps the product's flag to IN_STOCK / OUT_OF_STOCK.
func (s *InventoryService) CheckAvailability(productID string) (domain.Availability, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		// Unknown products read as out of stock rather than an error.
		if err == sql.ErrNoRows {
			return domain.Availability{Status: "OUT_OF_STOCK"}, nil
		}
		return domain.Availability{}, err
	}
	if p.InStock {
		return domain.Availability{Status: "IN_STOCK"}, nil
	}
	return domain.Availability{Status: "OUT_OF_STOCK"}, nil
}

// SetStock is the admin console's toggle.
func (s *InventoryService) SetStock(productID string, inStock bool) error {
	return s.Prods.SetStock(productID, inStock)
}
