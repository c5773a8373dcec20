package cart

import (
	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// QuantityChange is the direction of a quantity adjustment
type QuantityChange string

const (
	QuantityIncrease QuantityChange = "increase"
	QuantityDecrease QuantityChange = "decrease"
)

// IsValid checks if the change is a valid QuantityChange
func (q QuantityChange) IsValid() bool {
	return q == QuantityIncrease || q == QuantityDecrease
}

// Line is one cart entry: a shared reference to a catalog product and a
// quantity of at least 1. A cart holds at most one line per product ID.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

// Subtotal returns price × quantity for this line
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart owns the ordered line list for one session. Lines keep their
// first-added order; all operations are synchronous and leave the cart in
// a fully consistent state.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{lines: make([]Line, 0)}
}

// Restore rebuilds a cart from previously persisted lines. Lines with a
// quantity below 1 are dropped.
func Restore(lines []Line) *Cart {
	c := New()
	for _, line := range lines {
		if line.Product == nil || line.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, line)
	}
	return c
}

// AddItem adds one unit of the product: an existing line is incremented,
// otherwise a new line is appended with quantity 1. Always succeeds.
func (c *Cart) AddItem(product *catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
}

// ChangeQuantity adjusts the quantity of an existing line by one.
// Decrease floors at 1 - removal only happens through RemoveItem.
// No-op when the product is not in the cart.
func (c *Cart) ChangeQuantity(productID int, change QuantityChange) {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		switch change {
		case QuantityIncrease:
			c.lines[i].Quantity++
		case QuantityDecrease:
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			}
		}
		return
	}
}

// RemoveItem deletes the line for the product; no-op when absent
func (c *Cart) RemoveItem(productID int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total recomputes the cart total from the current lines on every call
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Lines returns the cart lines in insertion order
func (c *Cart) Lines() []Line {
	return c.lines
}

// Line returns the line for the product, or nil when absent
func (c *Cart) Line(productID int) *Line {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return &c.lines[i]
		}
	}
	return nil
}

// LineCount returns the number of distinct products in the cart
func (c *Cart) LineCount() int {
	return len(c.lines)
}

// IsEmpty returns true when the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
