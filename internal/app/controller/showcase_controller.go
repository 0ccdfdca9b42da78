package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/middleware"
	"github.com/val100/market/internal/pagination"
)

// ShowcaseController serves the public storefront: whisky regions, their
// distilleries and paginated product listings.
type ShowcaseController struct {
	catalogService  service.CatalogService
	productService  service.ProductService
	defaultPageSize int
}

func NewShowcaseController(
	catalogService service.CatalogService,
	productService service.ProductService,
	defaultPageSize int,
) *ShowcaseController {
	return &ShowcaseController{
		catalogService:  catalogService,
		productService:  productService,
		defaultPageSize: defaultPageSize,
	}
}

// GetRegions returns all whisky regions
// GET /api/v1/regions
func (ctrl *ShowcaseController) GetRegions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	regions, err := ctrl.catalogService.ListRegions()
	if err != nil {
		log.Error("Failed to fetch regions", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch regions",
		})
		return
	}

	log.Info("Regions fetched successfully", map[string]interface{}{
		"count": len(regions),
	})

	c.JSON(http.StatusOK, gin.H{
		"regions": regions,
		"count":   len(regions),
	})
}

// GetRegion returns one region with its distilleries and a page of its
// products. The optional dist query parameter narrows the product page to a
// single distillery of the region.
// GET /api/v1/regions/:id?dist=&sort=&direction=&page=&size=
func (ctrl *ShowcaseController) GetRegion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid region ID format", map[string]interface{}{
			"region_id": idStr,
			"error":     err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid region ID",
		})
		return
	}

	region, err := ctrl.catalogService.GetRegion(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			log.Warn("Region not found", map[string]interface{}{
				"region_id": id,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Region not found",
			})
			return
		}
		log.Error("Failed to fetch region", err, map[string]interface{}{
			"region_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch region",
		})
		return
	}

	distilleries, err := ctrl.catalogService.ListDistilleriesByRegion(uint(id))
	if err != nil {
		log.Error("Failed to fetch distilleries", err, map[string]interface{}{
			"region_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch distilleries",
		})
		return
	}

	req, ok := pageRequestFromQuery(c, ctrl.defaultPageSize)
	if !ok {
		return
	}

	var distilleryID uint64
	if distStr := c.Query("dist"); distStr != "" {
		distilleryID, err = strconv.ParseUint(distStr, 10, 32)
		if err != nil {
			log.Warn("Invalid distillery filter", map[string]interface{}{
				"dist": distStr,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid distillery ID",
			})
			return
		}
	}

	page, err := ctrl.pageProducts(uint(id), uint(distilleryID), req)
	if err != nil {
		if errors.Is(err, service.ErrDistilleryNotFound) {
			log.Warn("Distillery not found", map[string]interface{}{
				"region_id":     id,
				"distillery_id": distilleryID,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Distillery not found",
			})
			return
		}
		log.Error("Failed to fetch product page", err, map[string]interface{}{
			"region_id":     id,
			"distillery_id": distilleryID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	log.Info("Region showcase fetched", map[string]interface{}{
		"region_id":    id,
		"distilleries": len(distilleries),
		"products":     len(page.Content),
	})

	c.JSON(http.StatusOK, gin.H{
		"region":       region,
		"distilleries": distilleries,
		"products":     page,
	})
}

func (ctrl *ShowcaseController) pageProducts(regionID, distilleryID uint, req pagination.PageRequest) (pagination.Page[model.Product], error) {
	if distilleryID != 0 {
		return ctrl.productService.ListByDistillery(distilleryID, req)
	}
	return ctrl.productService.ListByRegion(regionID, req)
}

// GetDistilleries returns all distilleries with their regions
// GET /api/v1/distilleries
func (ctrl *ShowcaseController) GetDistilleries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	distilleries, err := ctrl.catalogService.ListDistilleries()
	if err != nil {
		log.Error("Failed to fetch distilleries", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch distilleries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"distilleries": distilleries,
		"count":        len(distilleries),
	})
}

// GetDistillery returns one distillery with a page of its products
// GET /api/v1/distilleries/:id?sort=&direction=&page=&size=
func (ctrl *ShowcaseController) GetDistillery(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.Warn("Invalid distillery ID format", map[string]interface{}{
			"distillery_id": idStr,
			"error":         err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid distillery ID",
		})
		return
	}

	distillery, err := ctrl.catalogService.GetDistillery(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDistilleryNotFound) {
			log.Warn("Distillery not found", map[string]interface{}{
				"distillery_id": id,
			})
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Distillery not found",
			})
			return
		}
		log.Error("Failed to fetch distillery", err, map[string]interface{}{
			"distillery_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch distillery",
		})
		return
	}

	req, ok := pageRequestFromQuery(c, ctrl.defaultPageSize)
	if !ok {
		return
	}

	page, err := ctrl.productService.ListByDistillery(uint(id), req)
	if err != nil {
		log.Error("Failed to fetch product page", err, map[string]interface{}{
			"distillery_id": id,
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch products",
		})
		return
	}

	log.Info("Distillery showcase fetched", map[string]interface{}{
		"distillery_id": id,
		"products":      len(page.Content),
	})

	c.JSON(http.StatusOK, gin.H{
		"distillery": distillery,
		"products":   page,
	})
}
