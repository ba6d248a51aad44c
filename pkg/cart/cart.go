// Package cart holds the client-local shopping cart: an ordered collection of
// product snapshots with quantities, persisted through a pluggable key-value
// storage so it survives sessions. The cart has no relationship to the server
// until its lines are submitted at checkout, and none afterwards.
package cart

import (
	"encoding/json"
)

// Storage keys the client persists under.
const (
	KeyCart  = "cart"
	KeyUser  = "user"
	KeyToken = "token"
)

// ProductSnapshot copies a product's display fields at add-to-cart time.
// Later catalog changes do not flow back into the cart.
type ProductSnapshot struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageURL"`
	Category string  `json:"category"`
}

type Line struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

type Cart struct {
	storage Storage
	lines   []Line
}

// Load restores the persisted line collection, or starts empty.
func Load(s Storage) (*Cart, error) {
	c := &Cart{storage: s}
	raw, ok, err := s.Get(KeyCart)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &c.lines); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddItem appends a new line with quantity 1, or increments the existing line
// for the same product id. Lines are keyed by product id, never duplicated.
func (c *Cart) AddItem(p ProductSnapshot) error {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return c.persist()
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	return c.persist()
}

// SetQuantity sets the line to quantity; zero or negative removes the line.
func (c *Cart) SetQuantity(productID uint, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return c.persist()
		}
	}
	return c.persist()
}

func (c *Cart) RemoveItem(productID uint) error {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
	return c.persist()
}

func (c *Cart) Clear() error {
	c.lines = nil
	return c.storage.Remove(KeyCart)
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Total is recomputed from the lines on every call, never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// CheckoutItem is the shape the order endpoint expects for a cart line.
type CheckoutItem struct {
	Product  uint    `json:"product"`
	Quantity uint    `json:"quantity"`
	Price    float64 `json:"price"`
}

// CheckoutItems converts the current lines for submission. The caller clears
// the cart only after the order endpoint reports success.
func (c *Cart) CheckoutItems() []CheckoutItem {
	items := make([]CheckoutItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, CheckoutItem{
			Product:  l.Product.ID,
			Quantity: uint(l.Quantity),
			Price:    l.Product.Price,
		})
	}
	return items
}

func (c *Cart) persist() error {
	raw, err := json.Marshal(c.lines)
	if err != nil {
		return err
	}
	return c.storage.Set(KeyCart, raw)
}
