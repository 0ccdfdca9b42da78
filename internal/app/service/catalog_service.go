package service

import (
	"errors"

	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRegionNotFound     = errors.New("region not found")
	ErrDistilleryNotFound = errors.New("distillery not found")
)

// CatalogService serves the showcase taxonomy: regions and the distilleries
// under them.
type CatalogService interface {
	ListRegions() ([]model.Region, error)
	GetRegion(id uint) (*model.Region, error)
	ListDistilleries() ([]model.Distillery, error)
	ListDistilleriesByRegion(regionID uint) ([]model.Distillery, error)
	GetDistillery(id uint) (*model.Distillery, error)
}

type catalogService struct {
	regionRepo     repository.RegionRepository
	distilleryRepo repository.DistilleryRepository
}

func NewCatalogService(
	regionRepo repository.RegionRepository,
	distilleryRepo repository.DistilleryRepository,
) CatalogService {
	return &catalogService{
		regionRepo:     regionRepo,
		distilleryRepo: distilleryRepo,
	}
}

func (s *catalogService) ListRegions() ([]model.Region, error) {
	regions, err := s.regionRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list regions", err, nil)
		return nil, err
	}

	logger.Debug("Regions listed", map[string]interface{}{
		"count": len(regions),
	})
	return regions, nil
}

func (s *catalogService) GetRegion(id uint) (*model.Region, error) {
	region, err := s.regionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Region not found", map[string]interface{}{
				"region_id": id,
			})
			return nil, ErrRegionNotFound
		}
		return nil, err
	}
	return region, nil
}

func (s *catalogService) ListDistilleries() ([]model.Distillery, error) {
	distilleries, err := s.distilleryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list distilleries", err, nil)
		return nil, err
	}
	return distilleries, nil
}

func (s *catalogService) ListDistilleriesByRegion(regionID uint) ([]model.Distillery, error) {
	if _, err := s.GetRegion(regionID); err != nil {
		return nil, err
	}

	distilleries, err := s.distilleryRepo.FindByRegion(regionID)
	if err != nil {
		logger.Error("Failed to list distilleries by region", err, map[string]interface{}{
			"region_id": regionID,
		})
		return nil, err
	}

	logger.Debug("Distilleries listed by region", map[string]interface{}{
		"region_id": regionID,
		"count":     len(distilleries),
	})
	return distilleries, nil
}

func (s *catalogService) GetDistillery(id uint) (*model.Distillery, error) {
	distillery, err := s.distilleryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Distillery not found", map[string]interface{}{
				"distillery_id": id,
			})
			return nil, ErrDistilleryNotFound
		}
		return nil, err
	}
	return distillery, nil
}
