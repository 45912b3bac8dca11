// Package entity contains the core business objects of the project.
package entity

// CartItem pairs a product with a purchase quantity. A cart holds at most
// one CartItem per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the mutable collection of items an identity intends to buy.
// TotalItems and TotalPrice are cached aggregates and must always equal a
// fold over Items; every transition below maintains that invariant
// atomically with the item-list change.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem merges qty of product into the cart. If the product is already
// present its quantity is incremented, otherwise a new item is appended.
// A non-positive qty leaves the cart unchanged so the transition stays
// total; callers validate quantities before dispatching.
func (c *Cart) AddItem(product Product, qty int) {
	if qty <= 0 {
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += qty
			c.TotalItems += qty
			c.TotalPrice += product.Price * int64(qty)

			return
		}
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: qty})
	c.TotalItems += qty
	c.TotalPrice += product.Price * int64(qty)
}

// RemoveItem removes the item for productID and subtracts its contribution
// from both aggregates. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			c.TotalItems -= item.Quantity
			c.TotalPrice -= item.Product.Price * int64(item.Quantity)
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// SetQuantity replaces the quantity of productID, adjusting the aggregates
// by the delta. A qty of zero or less removes the item entirely; an absent
// product is a no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)

		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			delta := qty - c.Items[i].Quantity
			c.Items[i].Quantity = qty
			c.TotalItems += delta
			c.TotalPrice += c.Items[i].Product.Price * int64(delta)

			return
		}
	}
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.TotalItems = 0
	c.TotalPrice = 0
}

// QuantityOf returns the quantity of productID in the cart, 0 when absent.
func (c *Cart) QuantityOf(productID string) int {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}

	return 0
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
