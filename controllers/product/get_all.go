package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// GetProducts returns the catalog, optionally filtered by category slug
// and/or status: /products?category=shoes&status=active
func GetProducts(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Categories").Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			parsed, ok := serializers.ParseProductStatus(status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status", "field": "status"})
				return
			}
			query = query.Where("status = ?", parsed)
		}

		if categorySlug := c.Query("category"); categorySlug != "" {
			query = query.
				Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Joins("JOIN categories ON categories.id = pc.category_id").
				Where("categories.slug = ?", categorySlug)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewProductListResponse(products, cfg.Catalog.LowStockThreshold))
	}
}
