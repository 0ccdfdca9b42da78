package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/db"
	"gorm.io/gorm"
)

const testDefaultPageSize = 3

func setupProductControllerTest(t *testing.T) (*ProductController, *gin.Engine, *gorm.DB, model.Distillery) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	productRepo := repository.NewProductRepository(testDB)
	distilleryRepo := repository.NewDistilleryRepository(testDB)
	regionRepo := repository.NewRegionRepository(testDB)
	productService := service.NewProductService(productRepo, distilleryRepo, regionRepo)
	productController := NewProductController(productService, testDefaultPageSize)

	region := model.Region{Name: "Highlands"}
	require.NoError(t, testDB.Create(&region).Error)
	distillery := model.Distillery{Title: "Glenmorangie", RegionID: region.ID}
	require.NoError(t, testDB.Create(&distillery).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return productController, router, testDB, distillery
}

func seedProducts(t *testing.T, testDB *gorm.DB, distilleryID uint, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, testDB.Create(&model.Product{
			Title:        fmt.Sprintf("Bottle %02d", i+1),
			DistilleryID: distilleryID,
			Age:          10 + i,
			Price:        float64(30 + i*10),
			Available:    true,
		}).Error)
	}
}

func TestProductController_GetProducts_DefaultPageSize(t *testing.T) {
	controller, router, testDB, distillery := setupProductControllerTest(t)
	seedProducts(t, testDB, distillery.ID, 5)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	content := response["content"].([]interface{})
	assert.Len(t, content, testDefaultPageSize)
	assert.Equal(t, float64(5), response["total_elements"])
	assert.Equal(t, float64(2), response["total_pages"])
	assert.Equal(t, float64(0), response["page"])
}

func TestProductController_GetProducts_SecondPage(t *testing.T) {
	controller, router, testDB, distillery := setupProductControllerTest(t)
	seedProducts(t, testDB, distillery.ID, 5)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?page=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	content := response["content"].([]interface{})
	assert.Len(t, content, 2)
	assert.Equal(t, float64(1), response["page"])
}

func TestProductController_GetProducts_SortByPriceDesc(t *testing.T) {
	controller, router, testDB, distillery := setupProductControllerTest(t)
	seedProducts(t, testDB, distillery.ID, 5)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?sort=price&direction=desc&size=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	content := response["content"].([]interface{})
	require.Len(t, content, 5)
	first := content[0].(map[string]interface{})
	assert.Equal(t, float64(70), first["price"])
}

func TestProductController_GetProducts_UnsupportedSort(t *testing.T) {
	controller, router, _, _ := setupProductControllerTest(t)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?sort=alcohol", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported sort field")
}

func TestProductController_GetProducts_InvalidSize(t *testing.T) {
	controller, router, _, _ := setupProductControllerTest(t)

	router.GET("/products", controller.GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/products?size=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Page size must be positive")
}

func TestProductController_CreateProduct(t *testing.T) {
	controller, router, _, distillery := setupProductControllerTest(t)

	router.POST("/products", controller.CreateProduct)

	body, _ := json.Marshal(map[string]interface{}{
		"title":         "Glenmorangie Original",
		"distillery_id": distillery.ID,
		"age":           10,
		"price":         38,
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	product := response["product"].(map[string]interface{})
	assert.Equal(t, "Glenmorangie Original", product["title"])
	assert.Equal(t, true, product["available"]) // defaults to available
	assert.NotZero(t, product["id"])
}

func TestProductController_CreateProduct_UnknownDistillery(t *testing.T) {
	controller, router, _, _ := setupProductControllerTest(t)

	router.POST("/products", controller.CreateProduct)

	body, _ := json.Marshal(map[string]interface{}{
		"title":         "Ghost Bottle",
		"distillery_id": 9999,
		"price":         10,
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_CreateProduct_MissingTitle(t *testing.T) {
	controller, router, _, distillery := setupProductControllerTest(t)

	router.POST("/products", controller.CreateProduct)

	body, _ := json.Marshal(map[string]interface{}{
		"distillery_id": distillery.ID,
		"price":         10,
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductController_UpdateProduct_NotFound(t *testing.T) {
	controller, router, _, distillery := setupProductControllerTest(t)

	router.PUT("/products/:id", controller.UpdateProduct)

	body, _ := json.Marshal(map[string]interface{}{
		"title":         "Ghost Bottle",
		"distillery_id": distillery.ID,
		"price":         10,
	})
	req := httptest.NewRequest(http.MethodPut, "/products/424242", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_DeleteProduct(t *testing.T) {
	controller, router, testDB, distillery := setupProductControllerTest(t)
	seedProducts(t, testDB, distillery.ID, 1)

	var product model.Product
	require.NoError(t, testDB.First(&product).Error)

	router.DELETE("/products/:id", controller.DeleteProduct)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductController_ExportProducts(t *testing.T) {
	controller, router, testDB, distillery := setupProductControllerTest(t)
	seedProducts(t, testDB, distillery.ID, 2)

	router.GET("/products/export", controller.ExportProducts)

	req := httptest.NewRequest(http.MethodGet, "/products/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
