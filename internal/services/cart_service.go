package services

import (
	"errors"
	"sync"

	"superstar/internal/cart"
	"superstar/internal/repos"
)

var ErrOutOfStock = errors.New("product out of stock")

// CartService keeps one in-memory cart per session. The cart itself is
// single-threaded by contract; the registry mutex serializes the
// concurrent fiber handlers so each mutation runs whole.
type CartService struct {
	Prods *repos.ProductRepo

	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func NewCartService(prods *repos.ProductRepo) *CartService {
	return &CartService{Prods: prods, carts: make(map[string]*cart.Cart)}
}

func (s *CartService) get(sessionID string) *cart.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New()
		s.carts[sessionID] = c
	}
	return c
}

// Add looks the product up in the catalog and gates on availability
// before the cart ever sees it.
func (s *CartService) Add(sessionID, productID string) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	if !p.InStock {
		return ErrOutOfStock
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sessionID).Add(p)
	return nil
}

func (s *CartService) UpdateQuantity(sessionID, productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sessionID).UpdateQuantity(productID, qty)
}

func (s *CartService) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sessionID).Remove(productID)
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sessionID).Clear()
}

type CartView struct {
	Lines       []cart.Line
	TotalItems  int
	TotalAmount int64
}

// View returns a consistent snapshot: lines and totals read under the
// same lock, so they always agree.
func (s *CartService) View(sessionID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(sessionID)
	return CartView{Lines: c.Lines(), TotalItems: c.TotalItems(), TotalAmount: c.TotalAmount()}
}

// Snapshot copies the session's cart under the registry lock. The
// copy is safe to read after the lock is released, so the order flow
// never touches live cart state another handler may be mutating.
func (s *CartService) Snapshot(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID).Clone()
}
