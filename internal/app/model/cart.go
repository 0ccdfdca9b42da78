package model

import (
	"time"

	"gorm.io/gorm"
)

// Cart holds a user's selected products. One cart per user, created lazily on
// first access. Totals are derived from the current items and delivery flag on
// every read and are never persisted.
type Cart struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	DeliveryIncluded bool           `gorm:"default:false" json:"delivery_included"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem references a product with a quantity. A cart holds at most one
// item per product; quantity is always >= 1, a zero quantity removes the item.
// Deletes are hard deletes: a removed line must not block re-adding the same
// product under the (cart_id, product_id) unique index.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"not null;index;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Cart    Cart    `gorm:"foreignKey:CartID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartTotals is the derived cost summary of a cart.
type CartTotals struct {
	ItemsCount   int     `json:"items_count"`
	ProductsCost float64 `json:"products_cost"`
	DeliveryCost int     `json:"delivery_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Item returns the cart item for the given product, nil when absent.
func (c *Cart) Item(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Totals computes the cost summary from the current items and delivery flag.
// Item prices come from the preloaded products; items whose product did not
// resolve are skipped. Pure with respect to the cart state.
func (c *Cart) Totals(deliveryCost int) CartTotals {
	totals := CartTotals{DeliveryCost: deliveryCost}
	for i := range c.Items {
		item := &c.Items[i]
		if item.Product.ID == 0 {
			continue
		}
		totals.ItemsCount += item.Quantity
		totals.ProductsCost += float64(item.Quantity) * item.Product.Price
	}
	totals.TotalCost = totals.ProductsCost
	if c.DeliveryIncluded {
		totals.TotalCost += float64(deliveryCost)
	}
	return totals
}
