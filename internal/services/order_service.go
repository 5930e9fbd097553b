package services

import (
	"sync"

	"superstar/internal/order"
)

// OrderService runs one composer per session over that session's cart.
type OrderService struct {
	Carts *CartService
	Cfg   order.Config

	mu        sync.Mutex
	composers map[string]*order.Composer
}

func NewOrderService(carts *CartService, cfg order.Config) *OrderService {
	return &OrderService{Carts: carts, Cfg: cfg, composers: make(map[string]*order.Composer)}
}

func (s *OrderService) composer(sessionID string) *order.Composer {
	c, ok := s.composers[sessionID]
	if !ok {
		c = order.NewComposer(s.Cfg)
		s.composers[sessionID] = c
	}
	return c
}

// Generate composes the order message for the session's current cart.
// The composer works on a snapshot taken under the cart registry lock,
// so concurrent cart mutations cannot tear the lines or totals it
// renders.
func (s *OrderService) Generate(sessionID string, d order.CustomerDetails) (order.Message, error) {
	ct := s.Carts.Snapshot(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer(sessionID).Generate(ct, d)
}

// Invalidate discards the session's composed message after a details
// edit; the next generate must re-render.
func (s *OrderService) Invalidate(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer(sessionID).Invalidate()
}

// Current returns the composed message while it is still current.
func (s *OrderService) Current(sessionID string) (order.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer(sessionID).Current()
}
