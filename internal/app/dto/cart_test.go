package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/val100/market/internal/app/model"
)

func TestAssembleCart_Totals(t *testing.T) {
	cart := &model.Cart{
		UserID:           7,
		DeliveryIncluded: true,
		Items: []model.CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
	products := map[uint]model.Product{
		1: {ID: 1, Title: "Laphroaig 10", Price: 42},
		2: {ID: 2, Title: "Lagavulin 16", Price: 85},
	}

	out := AssembleCart(cart, products, 400)

	assert.Equal(t, uint(7), out.UserID)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.ItemsCount)
	assert.Equal(t, float64(169), out.ProductsCost) // 2*42 + 85
	assert.Equal(t, 400, out.DeliveryCost)
	assert.True(t, out.DeliveryIncluded)
	assert.Equal(t, float64(569), out.TotalCost)
	assert.Empty(t, out.UnavailableProductIDs)
}

func TestAssembleCart_WithoutDelivery(t *testing.T) {
	cart := &model.Cart{
		UserID: 7,
		Items: []model.CartItem{
			{ProductID: 1, Quantity: 2},
		},
	}
	products := map[uint]model.Product{
		1: {ID: 1, Title: "Laphroaig 10", Price: 10},
	}

	out := AssembleCart(cart, products, 400)
	assert.Equal(t, float64(20), out.TotalCost)
}

func TestAssembleCart_ExcludesUnresolvedProducts(t *testing.T) {
	cart := &model.Cart{
		UserID:           7,
		DeliveryIncluded: true,
		Items: []model.CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 99, Quantity: 5}, // deleted from the catalog
		},
	}
	products := map[uint]model.Product{
		1: {ID: 1, Title: "Laphroaig 10", Price: 42},
	}

	out := AssembleCart(cart, products, 400)

	assert.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.ItemsCount)
	assert.Equal(t, float64(84), out.ProductsCost)
	assert.Equal(t, float64(484), out.TotalCost)
	assert.Equal(t, []uint{99}, out.UnavailableProductIDs)
}

func TestAssembleCart_LineCosts(t *testing.T) {
	cart := &model.Cart{
		Items: []model.CartItem{
			{ProductID: 1, Quantity: 3},
		},
	}
	products := map[uint]model.Product{
		1: {ID: 1, Title: "Springbank 10", Age: 10, Price: 65},
	}

	out := AssembleCart(cart, products, 400)

	assert.Equal(t, uint(1), out.Items[0].ProductID)
	assert.Equal(t, "Springbank 10", out.Items[0].Title)
	assert.Equal(t, 10, out.Items[0].Age)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.Equal(t, float64(195), out.Items[0].LineCost)
}

func TestAssembleCart_EmptyCart(t *testing.T) {
	cart := &model.Cart{UserID: 7}

	out := AssembleCart(cart, nil, 400)

	assert.NotNil(t, out.Items)
	assert.Len(t, out.Items, 0)
	assert.Equal(t, float64(0), out.TotalCost)
}

func TestProductsByID(t *testing.T) {
	cart := &model.Cart{
		Items: []model.CartItem{
			{ProductID: 1, Product: model.Product{ID: 1, Title: "A"}},
			{ProductID: 2}, // preload came back empty
		},
	}

	products := ProductsByID(cart)
	assert.Len(t, products, 1)
	assert.Equal(t, "A", products[1].Title)
}
