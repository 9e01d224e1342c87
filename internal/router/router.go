// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Player-18/catalog/internal/config"
	"github.com/Player-18/catalog/internal/handlers"
	"github.com/Player-18/catalog/internal/middleware"
	"github.com/Player-18/catalog/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	propertyService := services.NewPropertyService(db)
	productService := services.NewProductService(db)
	catalogService := services.NewCatalogService(db, cfg.Catalog.ExcludeOwnFilterFromFacet)
	seedService := services.NewSeedService(db)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	productHandler := handlers.NewProductHandler(productService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.Catalog)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	catalog := r.Group("/catalog")
	{
		catalog.GET("/", catalogHandler.GetCatalog)
		catalog.GET("/filter/", catalogHandler.GetFilterData)
	}

	product := r.Group("/product")
	{
		product.POST("/", productHandler.CreateProduct)
		product.GET("/:uid", productHandler.GetProduct)
		product.DELETE("/:uid", productHandler.DeleteProduct)
	}

	properties := r.Group("/properties")
	{
		properties.POST("/", propertyHandler.CreateProperty)
		properties.GET("/:uid", propertyHandler.GetProperty)
		properties.DELETE("/:uid", propertyHandler.DeleteProperty)
	}

	r.POST("/load-test-data/", seedHandler.LoadTestData)

	return r
}
