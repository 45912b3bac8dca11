package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price int64) Product {
	return Product{
		ID:      id,
		Name:    "Sản phẩm " + id,
		Price:   price,
		InStock: true,
	}
}

// assertAggregates checks the cached aggregates against a fold over Items.
func assertAggregates(t *testing.T, cart *Cart) {
	t.Helper()

	var items int
	var price int64
	for _, item := range cart.Items {
		items += item.Quantity
		price += item.Product.Price * int64(item.Quantity)
	}

	assert.Equal(t, items, cart.TotalItems)
	assert.Equal(t, price, cart.TotalPrice)
}

func TestCart_AddItem_MergesByProductID(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", 150000)

	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, int64(750000), cart.TotalPrice)
	assertAggregates(t, cart)
}

func TestCart_AddItem_NonPositiveQuantityIsNoOp(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", 150000)

	cart.AddItem(p, 0)
	cart.AddItem(p, -3)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, int64(0), cart.TotalPrice)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	a := testProduct("1", 150000)
	b := testProduct("2", 450000)

	cart.AddItem(a, 2)
	cart.AddItem(b, 1)
	cart.RemoveItem("1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].Product.ID)
	assert.Equal(t, 1, cart.TotalItems)
	assert.Equal(t, int64(450000), cart.TotalPrice)
	assertAggregates(t, cart)
}

func TestCart_RemoveItem_AbsentIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("1", 150000), 2)

	before := *cart
	cart.RemoveItem("missing")

	assert.Equal(t, before.TotalItems, cart.TotalItems)
	assert.Equal(t, before.TotalPrice, cart.TotalPrice)
	assert.Equal(t, before.Items, cart.Items)
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name       string
		qty        int
		wantLen    int
		wantItems  int
		wantPrice  int64
		wantOfItem int
	}{
		{"increase", 5, 1, 5, 750000, 5},
		{"decrease", 1, 1, 1, 150000, 1},
		{"zero removes", 0, 0, 0, 0, 0},
		{"negative removes", -2, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			cart.AddItem(testProduct("1", 150000), 2)

			cart.SetQuantity("1", tt.qty)

			assert.Len(t, cart.Items, tt.wantLen)
			assert.Equal(t, tt.wantItems, cart.TotalItems)
			assert.Equal(t, tt.wantPrice, cart.TotalPrice)
			assert.Equal(t, tt.wantOfItem, cart.QuantityOf("1"))
			assertAggregates(t, cart)
		})
	}
}

func TestCart_SetQuantity_AbsentIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("1", 150000), 2)

	cart.SetQuantity("missing", 7)

	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, int64(300000), cart.TotalPrice)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("1", 150000), 2)
	cart.AddItem(testProduct("2", 450000), 1)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, int64(0), cart.TotalPrice)
	assert.True(t, cart.IsEmpty())
}

// Aggregates must stay consistent across arbitrary transition sequences.
func TestCart_AggregateInvariantUnderTransitionSequence(t *testing.T) {
	cart := NewCart()
	a := testProduct("1", 150000)
	b := testProduct("2", 450000)
	c := testProduct("3", 250000)

	steps := []func(){
		func() { cart.AddItem(a, 2) },
		func() { cart.AddItem(b, 1) },
		func() { cart.SetQuantity("1", 4) },
		func() { cart.AddItem(c, 3) },
		func() { cart.RemoveItem("2") },
		func() { cart.SetQuantity("3", 0) },
		func() { cart.AddItem(a, 1) },
		func() { cart.RemoveItem("nope") },
	}

	for _, step := range steps {
		step()
		assertAggregates(t, cart)
	}

	assert.Equal(t, 5, cart.TotalItems)
	assert.Equal(t, int64(750000), cart.TotalPrice)
}

// Setting a quantity to zero must leave the cart as if the item had never
// been added.
func TestCart_SetQuantityZeroEqualsNeverAdded(t *testing.T) {
	withItem := NewCart()
	withItem.AddItem(testProduct("1", 150000), 2)
	withItem.AddItem(testProduct("2", 450000), 3)
	withItem.SetQuantity("2", 0)

	without := NewCart()
	without.AddItem(testProduct("1", 150000), 2)

	assert.Equal(t, without.Items, withItem.Items)
	assert.Equal(t, without.TotalItems, withItem.TotalItems)
	assert.Equal(t, without.TotalPrice, withItem.TotalPrice)
}
