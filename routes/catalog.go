package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	productcontroller "github.com/mosisn/onlineshop/controllers/product"
	reviewcontroller "github.com/mosisn/onlineshop/controllers/review"
)

// SetupCatalogRoutes registers the public browse endpoints for categories,
// products, and reviews.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db, cfg))
	}

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db, cfg))
		products.GET("/:id", productcontroller.GetProductByID(db, cfg))
		products.GET("/slug/:slug", productcontroller.GetProductBySlug(db, cfg))

		products.GET("/:id/reviews", reviewcontroller.GetProductReviews(db, cfg))
		products.POST("/:id/reviews", reviewcontroller.CreateReview(db, cfg))
	}

	reviews := r.Group("/reviews")
	{
		reviews.PUT("/:id", reviewcontroller.UpdateReview(db, cfg))
		reviews.DELETE("/:id", reviewcontroller.DeleteReview(db))
	}
}
