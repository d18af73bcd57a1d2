package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// GetProductByID returns a single product with its categories.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewProductResponse(product, cfg.Catalog.LowStockThreshold))
	}
}

// GetProductBySlug returns a single product looked up by slug.
// URL param: /products/slug/:slug
func GetProductBySlug(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var product models.Product
		if err := db.Preload("Categories").
			Where("slug = ?", slug).First(&product).Error; err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewProductResponse(product, cfg.Catalog.LowStockThreshold))
	}
}
