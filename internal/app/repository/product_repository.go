package repository

import (
	"strings"

	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/pagination"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

// ProductPageFilter narrows a paged product query to one region or one
// distillery. Zero values leave the dimension unfiltered.
type ProductPageFilter struct {
	RegionID     uint
	DistilleryID uint
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindPage(filter ProductPageFilter, req pagination.PageRequest) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"title":         product.Title,
		"distillery_id": product.DistilleryID,
		"price":         product.Price,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"title":         product.Title,
			"distillery_id": product.DistilleryID,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})
	return nil
}

func (r *productRepository) baseQuery(filter ProductPageFilter) *gorm.DB {
	query := r.db.Model(&model.Product{}).
		Joins("JOIN distilleries ON distilleries.id = products.distillery_id")
	if filter.RegionID != 0 {
		query = query.Where("distilleries.region_id = ?", filter.RegionID)
	}
	if filter.DistilleryID != 0 {
		query = query.Where("products.distillery_id = ?", filter.DistilleryID)
	}
	return query
}

// orderClause maps a normalized sort field to its SQL column. The field has
// already been validated against the allow-list by the resolver.
func orderClause(req pagination.PageRequest) string {
	var column string
	switch req.Sort {
	case pagination.SortAge:
		column = "products.age"
	case pagination.SortPrice:
		column = "products.price"
	case pagination.SortDistillery:
		column = "distilleries.title"
	default:
		column = "products.title"
	}
	return column + " " + strings.ToUpper(string(req.Direction))
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Distillery").
		Order("products.title ASC").
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to find products in database", err, nil)
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindPage(filter ProductPageFilter, req pagination.PageRequest) ([]model.Product, int64, error) {
	logger.Debug("Finding product page in database", map[string]interface{}{
		"region_id":     filter.RegionID,
		"distillery_id": filter.DistilleryID,
		"sort":          req.Sort,
		"direction":     req.Direction,
		"page":          req.Page,
		"size":          req.Size,
	})

	var total int64
	if err := r.baseQuery(filter).Count(&total).Error; err != nil {
		logger.Error("Failed to count products in database", err, map[string]interface{}{
			"region_id":     filter.RegionID,
			"distillery_id": filter.DistilleryID,
		})
		return nil, 0, err
	}

	var products []model.Product
	err := r.baseQuery(filter).
		Preload("Distillery").
		Order(orderClause(req)).
		Order("products.id ASC"). // deterministic tie-break
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&products).Error
	if err != nil {
		logger.Error("Failed to find product page in database", err, map[string]interface{}{
			"region_id":     filter.RegionID,
			"distillery_id": filter.DistilleryID,
		})
		return nil, 0, err
	}

	logger.Debug("Product page found in database", map[string]interface{}{
		"count": len(products),
		"total": total,
	})
	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Distillery").First(&product, id).Error
	if err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	if err := r.db.Delete(&model.Product{}, id).Error; err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}
