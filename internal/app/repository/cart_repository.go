package repository

import (
	"errors"
	"time"

	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(cart *model.Cart) error
	FindByUser(userID uint) (*model.Cart, error)
	Save(cart *model.Cart) error
	UpsertItem(cartID, productID uint, quantity int) error
	DeleteItem(cartID, productID uint) error
	ClearItems(cartID uint) error
	ClearStale(cutoff time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *model.Cart) error {
	logger.Debug("Creating cart in database", map[string]interface{}{
		"user_id": cart.UserID,
	})

	if err := r.db.Create(cart).Error; err != nil {
		logger.Error("Failed to create cart in database", err, map[string]interface{}{
			"user_id": cart.UserID,
		})
		return err
	}

	logger.Debug("Cart created in database", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": cart.UserID,
	})
	return nil
}

func (r *cartRepository) FindByUser(userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).
		Preload("Items.Product").
		First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find cart by user in database", err, map[string]interface{}{
				"user_id": userID,
			})
		}
		return nil, err
	}

	logger.Debug("Cart found by user in database", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": userID,
		"items":   len(cart.Items),
	})
	return &cart, nil
}

func (r *cartRepository) Save(cart *model.Cart) error {
	if err := r.db.Save(cart).Error; err != nil {
		logger.Error("Failed to save cart in database", err, map[string]interface{}{
			"cart_id": cart.ID,
		})
		return err
	}
	return nil
}

// UpsertItem sets the quantity for the product in one transaction: an
// existing row is replaced, a missing one inserted. Replace semantics, the
// quantities are not added up.
func (r *cartRepository) UpsertItem(cartID, productID uint, quantity int) error {
	logger.Debug("Upserting cart item in database", map[string]interface{}{
		"cart_id":    cartID,
		"product_id": productID,
		"quantity":   quantity,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item model.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).
			First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = model.CartItem{
				CartID:    cartID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity = quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		// Touch the cart so stale-cart detection sees the activity.
		return tx.Model(&model.Cart{}).
			Where("id = ?", cartID).
			Update("updated_at", tx.NowFunc()).Error
	})
	if err != nil {
		logger.Error("Failed to upsert cart item in database", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		return err
	}
	return nil
}

// DeleteItem removes the product from the cart. Removing an absent product is
// a no-op.
func (r *cartRepository) DeleteItem(cartID, productID uint) error {
	logger.Debug("Deleting cart item from database", map[string]interface{}{
		"cart_id":    cartID,
		"product_id": productID,
	})

	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{}).Error
	if err != nil {
		logger.Error("Failed to delete cart item from database", err, map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
		})
		return err
	}
	return nil
}

func (r *cartRepository) ClearItems(cartID uint) error {
	logger.Debug("Clearing cart items in database", map[string]interface{}{
		"cart_id": cartID,
	})

	if err := r.db.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to clear cart items in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}
	return nil
}

// ClearStale empties every cart that has seen no activity since the cutoff.
// The carts themselves survive, only their items go.
func (r *cartRepository) ClearStale(cutoff time.Time) (int64, error) {
	result := r.db.Where(
		"cart_id IN (?)",
		r.db.Model(&model.Cart{}).Select("id").Where("updated_at < ?", cutoff),
	).Delete(&model.CartItem{})
	if result.Error != nil {
		logger.Error("Failed to clear stale carts in database", result.Error, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, result.Error
	}

	logger.Debug("Stale cart items cleared in database", map[string]interface{}{
		"cutoff":  cutoff,
		"removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
