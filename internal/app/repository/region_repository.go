package repository

import (
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

type RegionRepository interface {
	Create(region *model.Region) error
	FindAll() ([]model.Region, error)
	FindByID(id uint) (*model.Region, error)
	Update(region *model.Region) error
	Delete(id uint) error
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) Create(region *model.Region) error {
	logger.Debug("Creating region in database", map[string]interface{}{
		"name": region.Name,
	})

	if err := r.db.Create(region).Error; err != nil {
		logger.Error("Failed to create region in database", err, map[string]interface{}{
			"name": region.Name,
		})
		return err
	}
	return nil
}

func (r *regionRepository) FindAll() ([]model.Region, error) {
	var regions []model.Region
	if err := r.db.Order("name ASC").Find(&regions).Error; err != nil {
		logger.Error("Failed to find regions in database", err, nil)
		return nil, err
	}

	logger.Debug("Regions found in database", map[string]interface{}{
		"count": len(regions),
	})
	return regions, nil
}

func (r *regionRepository) FindByID(id uint) (*model.Region, error) {
	var region model.Region
	if err := r.db.First(&region, id).Error; err != nil {
		logger.Error("Failed to find region by ID in database", err, map[string]interface{}{
			"region_id": id,
		})
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Update(region *model.Region) error {
	if err := r.db.Save(region).Error; err != nil {
		logger.Error("Failed to update region in database", err, map[string]interface{}{
			"region_id": region.ID,
		})
		return err
	}
	return nil
}

func (r *regionRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Region{}, id).Error; err != nil {
		logger.Error("Failed to delete region from database", err, map[string]interface{}{
			"region_id": id,
		})
		return err
	}
	return nil
}
