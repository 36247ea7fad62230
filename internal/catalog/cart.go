package catalog

import (
	"fmt"

	"yuno-storefront-demo/internal/model"
)

// Cart is the shopper's in-progress selection. It only exists client-side;
// the backend receives its lines as checkout input.
type Cart struct {
	items []model.CartItem
}

// Add merges quantity into an existing line or appends a new one.
func (c *Cart) Add(product *Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !product.InStock {
		return fmt.Errorf("product %s is out of stock", product.ID)
	}
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, model.CartItem{
		ID:         product.ID,
		Name:       product.Name,
		Quantity:   quantity,
		UnitAmount: product.Price,
	})
	return nil
}

// Remove drops a line entirely.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// TotalAmount is the sum of quantity times unit amount, in minor units.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.items {
		total += int64(item.Quantity) * item.UnitAmount
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Lines returns a copy of the cart's line items.
func (c *Cart) Lines() []model.CartItem {
	lines := make([]model.CartItem, len(c.items))
	copy(lines, c.items)
	return lines
}
