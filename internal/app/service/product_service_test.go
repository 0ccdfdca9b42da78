package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/db"
	"github.com/val100/market/internal/pagination"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB, model.Region, model.Distillery) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	distilleryRepo := repository.NewDistilleryRepository(testDB)
	regionRepo := repository.NewRegionRepository(testDB)
	productService := NewProductService(productRepo, distilleryRepo, regionRepo)

	region := model.Region{Name: "Speyside"}
	require.NoError(t, testDB.Create(&region).Error)
	distillery := model.Distillery{Title: "Macallan", RegionID: region.ID}
	require.NoError(t, testDB.Create(&distillery).Error)

	return productService, testDB, region, distillery
}

func pageReq(page, size int) pagination.PageRequest {
	return pagination.PageRequest{
		Sort:      pagination.SortTitle,
		Direction: pagination.Asc,
		Page:      page,
		Size:      size,
	}
}

func TestProductService_Create(t *testing.T) {
	productService, _, _, distillery := setupProductServiceTest(t)

	product := &model.Product{Title: "Macallan 12", Price: 68, Available: true}
	err := productService.Create(product, distillery.ID)
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, distillery.ID, product.DistilleryID)
}

func TestProductService_Create_UnknownDistillery(t *testing.T) {
	productService, _, _, _ := setupProductServiceTest(t)

	product := &model.Product{Title: "Macallan 12", Price: 68}
	err := productService.Create(product, 9999)
	assert.ErrorIs(t, err, ErrDistilleryNotFound)
}

func TestProductService_Update(t *testing.T) {
	productService, _, _, distillery := setupProductServiceTest(t)

	product := &model.Product{Title: "Macallan 12", Price: 68, Available: true}
	require.NoError(t, productService.Create(product, distillery.ID))

	updated := &model.Product{
		ID:        product.ID,
		Title:     "Macallan Double Cask 12",
		Price:     72,
		Available: true,
	}
	require.NoError(t, productService.Update(updated, distillery.ID))

	fetched, err := productService.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Macallan Double Cask 12", fetched.Title)
	assert.Equal(t, float64(72), fetched.Price)
}

func TestProductService_Update_MissingProductNeverCreates(t *testing.T) {
	productService, _, _, distillery := setupProductServiceTest(t)

	ghost := &model.Product{ID: 424242, Title: "Ghost Bottle", Price: 10}
	err := productService.Update(ghost, distillery.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = productService.GetByID(424242)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	productService, _, _, distillery := setupProductServiceTest(t)

	product := &model.Product{Title: "Macallan 12", Price: 68, Available: true}
	require.NoError(t, productService.Create(product, distillery.ID))

	require.NoError(t, productService.Delete(product.ID))

	_, err := productService.GetByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	productService, _, _, _ := setupProductServiceTest(t)

	err := productService.Delete(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_ListByRegion(t *testing.T) {
	productService, _, region, distillery := setupProductServiceTest(t)

	for _, title := range []string{"Macallan 12", "Macallan 15", "Macallan 18", "Macallan 25"} {
		require.NoError(t, productService.Create(&model.Product{Title: title, Price: 100, Available: true}, distillery.ID))
	}

	page, err := productService.ListByRegion(region.ID, pageReq(0, 3))
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.Equal(t, int64(4), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestProductService_ListByRegion_UnknownRegion(t *testing.T) {
	productService, _, _, _ := setupProductServiceTest(t)

	_, err := productService.ListByRegion(9999, pageReq(0, 3))
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestProductService_ListByDistillery_UnknownDistillery(t *testing.T) {
	productService, _, _, _ := setupProductServiceTest(t)

	_, err := productService.ListByDistillery(9999, pageReq(0, 3))
	assert.ErrorIs(t, err, ErrDistilleryNotFound)
}

func TestProductService_ExportWorkbook(t *testing.T) {
	productService, _, _, distillery := setupProductServiceTest(t)

	require.NoError(t, productService.Create(&model.Product{Title: "Macallan 12", Age: 12, Price: 68, Available: true}, distillery.ID))

	file, err := productService.ExportWorkbook()
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one product
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "Macallan 12", rows[1][1])
	assert.Equal(t, "Macallan", rows[1][2])
}
