// Package cart holds the order-in-progress: one line per product,
// insertion order preserved, totals derived from current state.
package cart

import "superstar/internal/domain"

type Line struct {
	Product domain.Product
	Qty     int
}

// Subtotal is the line's contribution to the cart total.
func (l Line) Subtotal() int64 {
	return l.Product.Price * int64(l.Qty)
}

// Cart is the single source of truth for what is being ordered.
// Quantities only change through its methods, so qty >= 1 holds for
// every line. Not safe for concurrent use; callers serialize access.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add increments the existing line for p, or appends a new line with
// quantity 1 at the end.
func (c *Cart) Add(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Qty: 1})
}

// UpdateQuantity sets the line's quantity, removing the line when
// qty <= 0. Unknown ids are a no-op: a rapid double-click can race a
// removal, and absence already satisfies the caller's intent.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Qty = qty
			return
		}
	}
}

// Remove deletes the line if present; no-op otherwise.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.lines = nil }

// Clone returns an independent copy of the cart. Line values are
// copied, so the clone can be read after the owner's serialization
// domain releases it.
func (c *Cart) Clone() *Cart {
	cp := &Cart{}
	cp.lines = append(cp.lines, c.lines...)
	return cp
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// TotalItems recomputes the summed quantity on every read rather than
// tracking it incrementally, so it cannot drift from the lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// TotalAmount is the sum of price*qty over all lines, in whole rupees.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}
