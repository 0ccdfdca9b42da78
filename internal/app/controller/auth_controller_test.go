package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/val100/market/internal/app/repository"
	"github.com/val100/market/internal/app/service"
	"github.com/val100/market/internal/db"
)

func setupAuthControllerTest(t *testing.T) (*AuthController, *gin.Engine) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)
	authController := NewAuthController(authService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	return authController, router
}

func registerTestUser(t *testing.T, router *gin.Engine) map[string]interface{} {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "dram@example.com",
		"password": "secret123",
		"name":     "Dram Lover",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestAuthController_Register_Success(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	response := registerTestUser(t, router)

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "dram@example.com", user["email"])
	assert.Equal(t, "user", user["role"])

	tokens := response["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])
	assert.NotEmpty(t, tokens["refresh_token"])
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	registerTestUser(t, router)

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "dram@example.com",
		"password": "another123",
		"name":     "Someone Else",
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_EMAIL_EXISTS")
}

func TestAuthController_Register_InvalidInput(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "not-an-email",
		"password": "123", // too short
	})
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Login_Success(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	registerTestUser(t, router)

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "dram@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	tokens := response["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	registerTestUser(t, router)

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "dram@example.com",
		"password": "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Login_UnknownEmail(t *testing.T) {
	_, router := setupAuthControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
