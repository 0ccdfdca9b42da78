package repository

import (
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

type DistilleryRepository interface {
	Create(distillery *model.Distillery) error
	FindAll() ([]model.Distillery, error)
	FindByID(id uint) (*model.Distillery, error)
	FindByRegion(regionID uint) ([]model.Distillery, error)
	Update(distillery *model.Distillery) error
	Delete(id uint) error
}

type distilleryRepository struct {
	db *gorm.DB
}

func NewDistilleryRepository(db *gorm.DB) DistilleryRepository {
	return &distilleryRepository{db: db}
}

func (r *distilleryRepository) Create(distillery *model.Distillery) error {
	logger.Debug("Creating distillery in database", map[string]interface{}{
		"title":     distillery.Title,
		"region_id": distillery.RegionID,
	})

	if err := r.db.Create(distillery).Error; err != nil {
		logger.Error("Failed to create distillery in database", err, map[string]interface{}{
			"title": distillery.Title,
		})
		return err
	}
	return nil
}

func (r *distilleryRepository) FindAll() ([]model.Distillery, error) {
	var distilleries []model.Distillery
	if err := r.db.Preload("Region").Order("title ASC").Find(&distilleries).Error; err != nil {
		logger.Error("Failed to find distilleries in database", err, nil)
		return nil, err
	}
	return distilleries, nil
}

func (r *distilleryRepository) FindByID(id uint) (*model.Distillery, error) {
	var distillery model.Distillery
	if err := r.db.Preload("Region").First(&distillery, id).Error; err != nil {
		logger.Error("Failed to find distillery by ID in database", err, map[string]interface{}{
			"distillery_id": id,
		})
		return nil, err
	}
	return &distillery, nil
}

func (r *distilleryRepository) FindByRegion(regionID uint) ([]model.Distillery, error) {
	var distilleries []model.Distillery
	err := r.db.Where("region_id = ?", regionID).
		Order("title ASC").
		Find(&distilleries).Error
	if err != nil {
		logger.Error("Failed to find distilleries by region in database", err, map[string]interface{}{
			"region_id": regionID,
		})
		return nil, err
	}

	logger.Debug("Distilleries found by region in database", map[string]interface{}{
		"region_id": regionID,
		"count":     len(distilleries),
	})
	return distilleries, nil
}

func (r *distilleryRepository) Update(distillery *model.Distillery) error {
	if err := r.db.Save(distillery).Error; err != nil {
		logger.Error("Failed to update distillery in database", err, map[string]interface{}{
			"distillery_id": distillery.ID,
		})
		return err
	}
	return nil
}

func (r *distilleryRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Distillery{}, id).Error; err != nil {
		logger.Error("Failed to delete distillery from database", err, map[string]interface{}{
			"distillery_id": id,
		})
		return err
	}
	return nil
}
