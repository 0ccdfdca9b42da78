package router

import (
	"github.com/gin-gonic/gin"
	"github.com/val100/market/config"
	"github.com/val100/market/internal/app/controller"
	"github.com/val100/market/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	showcaseController *controller.ShowcaseController
	productController  *controller.ProductController
	cartController     *controller.CartController
	uploadController   *controller.UploadController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	showcaseController *controller.ShowcaseController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		showcaseController: showcaseController,
		productController:  productController,
		cartController:     cartController,
		uploadController:   uploadController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Whisky market API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		regions := v1.Group("/regions")
		{
			regions.GET("", r.showcaseController.GetRegions)
			regions.GET("/:id", r.showcaseController.GetRegion)
		}

		distilleries := v1.Group("/distilleries")
		{
			distilleries.GET("", r.showcaseController.GetDistilleries)
			distilleries.GET("/:id", r.showcaseController.GetDistillery)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProductByID)

			products.GET("/export",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("staff", "admin"),
				r.productController.ExportProducts,
			)
			products.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("staff", "admin"),
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("staff", "admin"),
				r.productController.UpdateProduct,
			)
			products.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("staff", "admin"),
				r.productController.DeleteProduct,
			)
		}

		cart := v1.Group("/cart")
		cart.Use(r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.PUT("", r.cartController.UpdateItem)
			cart.DELETE("/items/:product_id", r.cartController.RemoveItem)
			cart.PUT("/delivery/:included", r.cartController.SetDelivery)
			cart.DELETE("", r.cartController.ClearCart)
		}

		upload := v1.Group("/upload")
		upload.Use(
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole("staff", "admin"),
		)
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
