package service

import (
	"context"
	"errors"

	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type CartService interface {
	GetCartOrCreate(userID uint) (*model.Cart, error)
	UpdateItem(userID, productID uint, quantity int) (*model.Cart, error)
	RemoveItem(userID, productID uint) (*model.Cart, error)
	SetDelivery(userID uint, included bool) (*model.Cart, error)
	Clear(userID uint) (*model.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cache       *CartCache
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	cache ...*CartCache,
) CartService {
	var cartCache *CartCache
	if len(cache) > 0 {
		cartCache = cache[0]
	}
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cache:       cartCache,
	}
}

// GetCartOrCreate returns the user's cart, creating an empty one on first
// access.
func (s *cartService) GetCartOrCreate(userID uint) (*model.Cart, error) {
	ctx := context.Background()

	if cart, ok := s.cache.Get(ctx, userID); ok {
		return cart, nil
	}

	cart, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cart)
	return cart, nil
}

func (s *cartService) loadOrCreate(userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Creating cart on first access", map[string]interface{}{
		"user_id": userID,
	})
	cart = &model.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets the quantity for the product in the user's cart. Replace
// semantics: an existing item gets exactly the given quantity. The product is
// resolved against the catalog before anything is written, so an unknown
// product leaves the cart untouched.
func (s *cartService) UpdateItem(userID, productID uint, quantity int) (*model.Cart, error) {
	logger.Info("Updating cart item", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})

	if quantity <= 0 {
		logger.Warn("Rejected non-positive cart quantity", map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
			"quantity":   quantity,
		})
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update cart: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpsertItem(cart.ID, productID, quantity); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

// RemoveItem drops the product from the cart. Removing a product that is not
// in the cart is a no-op.
func (s *cartService) RemoveItem(userID, productID uint) (*model.Cart, error) {
	logger.Info("Removing cart item", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})

	cart, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(cart.ID, productID); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

// SetDelivery toggles whether delivery cost is included in the cart total.
// Idempotent.
func (s *cartService) SetDelivery(userID uint, included bool) (*model.Cart, error) {
	logger.Info("Setting cart delivery flag", map[string]interface{}{
		"user_id":  userID,
		"included": included,
	})

	cart, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if cart.DeliveryIncluded == included {
		return cart, nil
	}

	cart.DeliveryIncluded = included
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

// Clear empties the cart. The delivery flag and the cart itself survive.
func (s *cartService) Clear(userID uint) (*model.Cart, error) {
	logger.Info("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}

	return s.reload(userID)
}

// reload fetches the cart fresh after a mutation and refreshes the cache.
func (s *cartService) reload(userID uint) (*model.Cart, error) {
	ctx := context.Background()
	s.cache.Invalidate(ctx, userID)

	cart, err := s.cartRepo.FindByUser(userID)
	if err != nil {
		logger.Error("Failed to reload cart after mutation", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	s.cache.Set(ctx, cart)
	return cart, nil
}
