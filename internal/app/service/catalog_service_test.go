package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/db"
)

func setupCatalogServiceTest(t *testing.T) (CatalogService, model.Region) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	regionRepo := repository.NewRegionRepository(testDB)
	distilleryRepo := repository.NewDistilleryRepository(testDB)
	catalogService := NewCatalogService(regionRepo, distilleryRepo)

	region := model.Region{Name: "Campbeltown", Subtitle: "Briny character"}
	require.NoError(t, testDB.Create(&region).Error)
	require.NoError(t, testDB.Create(&model.Distillery{Title: "Springbank", RegionID: region.ID}).Error)
	require.NoError(t, testDB.Create(&model.Distillery{Title: "Glen Scotia", RegionID: region.ID}).Error)

	return catalogService, region
}

func TestCatalogService_ListRegions(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	regions, err := catalogService.ListRegions()
	require.NoError(t, err)
	assert.Len(t, regions, 1)
	assert.Equal(t, "Campbeltown", regions[0].Name)
}

func TestCatalogService_GetRegion_NotFound(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	_, err := catalogService.GetRegion(9999)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestCatalogService_ListDistilleriesByRegion_OrderedByTitle(t *testing.T) {
	catalogService, region := setupCatalogServiceTest(t)

	distilleries, err := catalogService.ListDistilleriesByRegion(region.ID)
	require.NoError(t, err)
	require.Len(t, distilleries, 2)
	assert.Equal(t, "Glen Scotia", distilleries[0].Title)
	assert.Equal(t, "Springbank", distilleries[1].Title)
}

func TestCatalogService_ListDistilleriesByRegion_UnknownRegion(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	_, err := catalogService.ListDistilleriesByRegion(9999)
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestCatalogService_GetDistillery_NotFound(t *testing.T) {
	catalogService, _ := setupCatalogServiceTest(t)

	_, err := catalogService.GetDistillery(9999)
	assert.ErrorIs(t, err, ErrDistilleryNotFound)
}
