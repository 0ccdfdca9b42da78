package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Totals_WithDelivery(t *testing.T) {
	cart := &Cart{
		DeliveryIncluded: true,
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Product: Product{ID: 1, Price: 10}},
		},
	}

	totals := cart.Totals(400)
	assert.Equal(t, 2, totals.ItemsCount)
	assert.Equal(t, float64(20), totals.ProductsCost)
	assert.Equal(t, 400, totals.DeliveryCost)
	assert.Equal(t, float64(420), totals.TotalCost)
}

func TestCart_Totals_WithoutDelivery(t *testing.T) {
	cart := &Cart{
		DeliveryIncluded: false,
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Product: Product{ID: 1, Price: 10}},
		},
	}

	totals := cart.Totals(400)
	assert.Equal(t, float64(20), totals.TotalCost)
	assert.Equal(t, 400, totals.DeliveryCost) // rate is reported either way
}

func TestCart_Totals_SkipsUnresolvedProducts(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Product: Product{ID: 1, Price: 10}},
			{ProductID: 99, Quantity: 5}, // product row gone
		},
	}

	totals := cart.Totals(400)
	assert.Equal(t, 2, totals.ItemsCount)
	assert.Equal(t, float64(20), totals.ProductsCost)
}

func TestCart_Totals_EmptyCart(t *testing.T) {
	cart := &Cart{DeliveryIncluded: true}

	totals := cart.Totals(400)
	assert.Equal(t, 0, totals.ItemsCount)
	assert.Equal(t, float64(0), totals.ProductsCost)
	assert.Equal(t, float64(400), totals.TotalCost)
}

func TestCart_Totals_Idempotent(t *testing.T) {
	cart := &Cart{
		DeliveryIncluded: true,
		Items: []CartItem{
			{ProductID: 1, Quantity: 3, Product: Product{ID: 1, Price: 15.5}},
		},
	}

	first := cart.Totals(400)
	second := cart.Totals(400)
	assert.Equal(t, first, second)
}

func TestCart_Item(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}

	item := cart.Item(2)
	assert.NotNil(t, item)
	assert.Equal(t, 1, item.Quantity)

	assert.Nil(t, cart.Item(42))
}

func TestCart_IsEmpty(t *testing.T) {
	cart := &Cart{}
	assert.True(t, cart.IsEmpty())

	cart.Items = append(cart.Items, CartItem{ProductID: 1, Quantity: 1})
	assert.False(t, cart.IsEmpty())
}
