package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/val100/market/internal/app/dto"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/middleware"
)

type CartController struct {
	cartService  service.CartService
	deliveryCost int
}

func NewCartController(cartService service.CartService, deliveryCost int) *CartController {
	return &CartController{
		cartService:  cartService,
		deliveryCost: deliveryCost,
	}
}

type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

func (ctrl *CartController) respondCart(c *gin.Context, cart *model.Cart) {
	c.JSON(http.StatusOK, dto.AssembleCart(cart, dto.ProductsByID(cart), ctrl.deliveryCost))
}

// GetCart returns the user's cart with computed totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to cart", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	cart, err := ctrl.cartService.GetCartOrCreate(userID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch cart",
		})
		return
	}

	log.Info("Cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"items":   len(cart.Items),
	})

	ctrl.respondCart(c, cart)
}

// UpdateItem sets the quantity of a product in the cart. The quantity
// replaces whatever was there before.
// PUT /api/v1/cart
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to update cart", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	log.Debug("Updating cart item", map[string]interface{}{
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})

	cart, err := ctrl.cartService.UpdateItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			log.Warn("Invalid cart quantity", map[string]interface{}{
				"user_id":  userID,
				"quantity": req.Quantity,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"user_id":    userID,
				"product_id": req.ProductID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": req.ProductID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	log.Info("Cart item updated successfully", map[string]interface{}{
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})

	ctrl.respondCart(c, cart)
}

// RemoveItem drops a product from the cart
// DELETE /api/v1/cart/items/:product_id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to remove cart item", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	idStr := c.Param("product_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"user_id":    userID,
			"product_id": idStr,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	log.Debug("Removing cart item", map[string]interface{}{
		"user_id":    userID,
		"product_id": id,
	})

	cart, err := ctrl.cartService.RemoveItem(userID, uint(id))
	if err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	log.Info("Cart item removed successfully", map[string]interface{}{
		"user_id":    userID,
		"product_id": id,
	})

	ctrl.respondCart(c, cart)
}

// SetDelivery toggles whether delivery cost is part of the cart total
// PUT /api/v1/cart/delivery/:included
func (ctrl *CartController) SetDelivery(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to set delivery", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	included, err := strconv.ParseBool(c.Param("included"))
	if err != nil {
		log.Warn("Invalid delivery flag", map[string]interface{}{
			"user_id": userID,
			"value":   c.Param("included"),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid delivery flag",
		})
		return
	}

	cart, err := ctrl.cartService.SetDelivery(userID, included)
	if err != nil {
		log.Error("Failed to set delivery flag", err, map[string]interface{}{
			"user_id":  userID,
			"included": included,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to set delivery flag",
		})
		return
	}

	log.Info("Delivery flag updated", map[string]interface{}{
		"user_id":  userID,
		"included": included,
	})

	ctrl.respondCart(c, cart)
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to clear cart", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	log.Debug("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := ctrl.cartService.Clear(userID)
	if err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"user_id": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	log.Info("Cart cleared successfully", map[string]interface{}{
		"user_id": userID,
	})

	ctrl.respondCart(c, cart)
}
