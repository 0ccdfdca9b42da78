package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/middleware"
)

type ProductController struct {
	productService  service.ProductService
	defaultPageSize int
}

func NewProductController(productService service.ProductService, defaultPageSize int) *ProductController {
	return &ProductController{
		productService:  productService,
		defaultPageSize: defaultPageSize,
	}
}

type SaveProductRequest struct {
	Title        string  `json:"title" binding:"required"`
	DistilleryID uint    `json:"distillery_id" binding:"required"`
	Age          int     `json:"age" binding:"gte=0"`
	Alcohol      float64 `json:"alcohol" binding:"gte=0"`
	Volume       float64 `json:"volume" binding:"gte=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Description  string  `json:"description"`
	Available    *bool   `json:"available"`
	ImageURL     string  `json:"image_url"`
}

func (req *SaveProductRequest) toModel() *model.Product {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return &model.Product{
		Title:       req.Title,
		Age:         req.Age,
		Alcohol:     req.Alcohol,
		Volume:      req.Volume,
		Price:       req.Price,
		Description: req.Description,
		Available:   available,
		ImageURL:    req.ImageURL,
	}
}

// GetProducts returns a page of the whole catalog
// GET /api/v1/products?sort=&direction=&page=&size=
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := pageRequestFromQuery(c, ctrl.defaultPageSize)
	if !ok {
		return
	}

	page, err := ctrl.productService.ListAll(req)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(page.Content),
		"total": page.TotalElements,
	})

	c.JSON(http.StatusOK, page)
}

// GetProductByID returns a product by ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": idStr,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := ctrl.productService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch product",
		})
		return
	}

	log.Info("Product fetched successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// CreateProduct creates a new product (staff only)
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	log.Debug("Creating product", map[string]interface{}{
		"title":         req.Title,
		"distillery_id": req.DistilleryID,
		"price":         req.Price,
	})

	product := req.toModel()
	if err := ctrl.productService.Create(product, req.DistilleryID); err != nil {
		if errors.Is(err, service.ErrDistilleryNotFound) {
			log.Warn("Distillery not found for product", map[string]interface{}{
				"distillery_id": req.DistilleryID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Distillery not found",
			})
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"title": req.Title,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create product",
		})
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates an existing product (staff only)
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": idStr,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	log.Debug("Updating product", map[string]interface{}{
		"product_id": id,
		"title":      req.Title,
	})

	product := req.toModel()
	product.ID = uint(id)
	if err := ctrl.productService.Update(product, req.DistilleryID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for update", map[string]interface{}{
				"product_id": id,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		if errors.Is(err, service.ErrDistilleryNotFound) {
			log.Warn("Distillery not found for product update", map[string]interface{}{
				"distillery_id": req.DistilleryID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Distillery not found",
			})
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update product",
		})
		return
	}

	log.Info("Product updated successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct deletes a product (staff only)
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": idStr,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := ctrl.productService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for deletion", map[string]interface{}{
				"product_id": id,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete product",
		})
		return
	}

	log.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// ExportProducts streams the whole catalog as an XLSX workbook (staff only)
// GET /api/v1/products/export
func (ctrl *ProductController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	file, err := ctrl.productService.ExportWorkbook()
	if err != nil {
		log.Error("Failed to export products", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export products",
		})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		log.Error("Failed to stream workbook", err, nil)
		return
	}

	log.Info("Product catalog exported", map[string]interface{}{
		"filename": filename,
	})
}
