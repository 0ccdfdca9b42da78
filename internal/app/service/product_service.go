package service

import (
	"errors"
	"fmt"

	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/pagination"
	"github.com/val100/market/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type ProductService interface {
	ListAll(req pagination.PageRequest) (pagination.Page[model.Product], error)
	ListByRegion(regionID uint, req pagination.PageRequest) (pagination.Page[model.Product], error)
	ListByDistillery(distilleryID uint, req pagination.PageRequest) (pagination.Page[model.Product], error)
	GetByID(id uint) (*model.Product, error)
	Create(product *model.Product, distilleryID uint) error
	Update(product *model.Product, distilleryID uint) error
	Delete(id uint) error
	ExportWorkbook() (*excelize.File, error)
}

type productService struct {
	productRepo    repository.ProductRepository
	distilleryRepo repository.DistilleryRepository
	regionRepo     repository.RegionRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	distilleryRepo repository.DistilleryRepository,
	regionRepo repository.RegionRepository,
) ProductService {
	return &productService{
		productRepo:    productRepo,
		distilleryRepo: distilleryRepo,
		regionRepo:     regionRepo,
	}
}

func (s *productService) ListAll(req pagination.PageRequest) (pagination.Page[model.Product], error) {
	return s.page(repository.ProductPageFilter{}, req)
}

// ListByRegion returns one page of the products of every distillery under the
// region.
func (s *productService) ListByRegion(regionID uint, req pagination.PageRequest) (pagination.Page[model.Product], error) {
	if _, err := s.regionRepo.FindByID(regionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot list products: region not found", map[string]interface{}{
				"region_id": regionID,
			})
			return pagination.Page[model.Product]{}, ErrRegionNotFound
		}
		return pagination.Page[model.Product]{}, err
	}
	return s.page(repository.ProductPageFilter{RegionID: regionID}, req)
}

// ListByDistillery returns one page of a single distillery's products.
func (s *productService) ListByDistillery(distilleryID uint, req pagination.PageRequest) (pagination.Page[model.Product], error) {
	if _, err := s.distilleryRepo.FindByID(distilleryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot list products: distillery not found", map[string]interface{}{
				"distillery_id": distilleryID,
			})
			return pagination.Page[model.Product]{}, ErrDistilleryNotFound
		}
		return pagination.Page[model.Product]{}, err
	}
	return s.page(repository.ProductPageFilter{DistilleryID: distilleryID}, req)
}

func (s *productService) page(filter repository.ProductPageFilter, req pagination.PageRequest) (pagination.Page[model.Product], error) {
	products, total, err := s.productRepo.FindPage(filter, req)
	if err != nil {
		logger.Error("Failed to fetch product page", err, map[string]interface{}{
			"region_id":     filter.RegionID,
			"distillery_id": filter.DistilleryID,
			"page":          req.Page,
			"size":          req.Size,
		})
		return pagination.Page[model.Product]{}, err
	}

	page := pagination.NewPage(products, req, total)
	logger.Info("Product page fetched", map[string]interface{}{
		"count":       len(page.Content),
		"total":       page.TotalElements,
		"total_pages": page.TotalPages,
	})
	return page, nil
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create validates the distillery association and persists a new product.
func (s *productService) Create(product *model.Product, distilleryID uint) error {
	logger.Info("Creating product", map[string]interface{}{
		"title":         product.Title,
		"distillery_id": distilleryID,
	})

	if _, err := s.distilleryRepo.FindByID(distilleryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot create product: distillery not found", map[string]interface{}{
				"distillery_id": distilleryID,
			})
			return ErrDistilleryNotFound
		}
		return err
	}

	product.DistilleryID = distilleryID
	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})
	return nil
}

// Update rewrites an existing product. A missing product id is an error, the
// update never creates.
func (s *productService) Update(product *model.Product, distilleryID uint) error {
	logger.Info("Updating product", map[string]interface{}{
		"product_id":    product.ID,
		"title":         product.Title,
		"distillery_id": distilleryID,
	})

	if _, err := s.productRepo.FindByID(product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: product not found", map[string]interface{}{
				"product_id": product.ID,
			})
			return ErrProductNotFound
		}
		return err
	}

	if _, err := s.distilleryRepo.FindByID(distilleryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update product: distillery not found", map[string]interface{}{
				"distillery_id": distilleryID,
			})
			return ErrDistilleryNotFound
		}
		return err
	}

	product.DistilleryID = distilleryID
	if err := s.productRepo.Update(product); err != nil {
		return err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (s *productService) Delete(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: product not found", map[string]interface{}{
				"product_id": id,
			})
			return ErrProductNotFound
		}
		return err
	}

	return s.productRepo.Delete(id)
}

// ExportWorkbook renders the whole catalog into an XLSX workbook for the back
// office.
func (s *productService) ExportWorkbook() (*excelize.File, error) {
	logger.Info("Exporting product catalog to workbook", nil)

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch products for export", err, nil)
		return nil, err
	}

	file := excelize.NewFile()
	const sheet = "Products"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Title", "Distillery", "Age", "Alcohol", "Volume", "Price", "Available"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, product := range products {
		values := []interface{}{
			product.ID,
			product.Title,
			product.Distillery.Title,
			product.Age,
			product.Alcohol,
			product.Volume,
			product.Price,
			product.Available,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write product row: %w", err)
			}
		}
	}

	logger.Info("Product catalog exported", map[string]interface{}{
		"products": len(products),
	})
	return file, nil
}
