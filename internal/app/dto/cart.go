package dto

import (
	"github.com/val100/market/internal/app/model"
)

// CartItemDTO is one cart line with the product metadata resolved.
type CartItemDTO struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Age       int     `json:"age"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineCost  float64 `json:"line_cost"`
}

// CartDTO is the flat cart representation returned to clients: resolved
// items plus the derived cost summary. Items whose product can no longer be
// resolved are excluded from the list and the totals; their ids are reported
// in UnavailableProductIDs so the client can tell the cart shrank.
type CartDTO struct {
	UserID                uint          `json:"user_id"`
	Items                 []CartItemDTO `json:"items"`
	ItemsCount            int           `json:"items_count"`
	ProductsCost          float64       `json:"products_cost"`
	DeliveryCost          int           `json:"delivery_cost"`
	DeliveryIncluded      bool          `json:"delivery_included"`
	TotalCost             float64       `json:"total_cost"`
	UnavailableProductIDs []uint        `json:"unavailable_product_ids,omitempty"`
}

// AssembleCart builds the response representation from a cart aggregate and a
// product lookup. Pure transformation, totals are recomputed from the inputs
// on every call.
func AssembleCart(cart *model.Cart, productsByID map[uint]model.Product, deliveryCost int) CartDTO {
	out := CartDTO{
		UserID:           cart.UserID,
		Items:            []CartItemDTO{},
		DeliveryCost:     deliveryCost,
		DeliveryIncluded: cart.DeliveryIncluded,
	}

	for _, item := range cart.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			out.UnavailableProductIDs = append(out.UnavailableProductIDs, item.ProductID)
			continue
		}

		lineCost := float64(item.Quantity) * product.Price
		out.Items = append(out.Items, CartItemDTO{
			ProductID: item.ProductID,
			Title:     product.Title,
			Age:       product.Age,
			Price:     product.Price,
			Quantity:  item.Quantity,
			LineCost:  lineCost,
		})
		out.ItemsCount += item.Quantity
		out.ProductsCost += lineCost
	}

	out.TotalCost = out.ProductsCost
	if cart.DeliveryIncluded {
		out.TotalCost += float64(deliveryCost)
	}
	return out
}

// ProductsByID indexes preloaded cart item products for AssembleCart. Items
// whose product failed to preload (deleted rows) are simply absent from the
// map.
func ProductsByID(cart *model.Cart) map[uint]model.Product {
	products := make(map[uint]model.Product, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product.ID != 0 {
			products[item.Product.ID] = item.Product
		}
	}
	return products
}
