package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// CreateProduct creates a new product attached to zero or more categories.
// The slug is derived from the name unless supplied; field validation runs
// before anything touches the store.
func CreateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serializers.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := req.Validate(); err != nil {
			respondError(c, err)
			return
		}

		status := models.ProductStatusActive
		if req.Status != "" {
			parsed, ok := serializers.ParseProductStatus(req.Status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status", "field": "status"})
				return
			}
			status = parsed
		}

		slug, err := resolveSlug(db, &models.Product{}, req.Name, req.Slug)
		if err != nil {
			respondError(c, err)
			return
		}

		categories, err := findCategories(db, req.CategoryIDs)
		if err != nil {
			respondError(c, err)
			return
		}

		stock := 0
		if req.Stock != nil {
			stock = *req.Stock
		}

		product := models.Product{
			Categories:  categories,
			Name:        req.Name,
			Image:       req.Image,
			Description: req.Description,
			Slug:        slug,
			Status:      status,
			Price:       req.Price,
			Discount:    req.Discount,
			Stock:       stock,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated,
			serializers.NewProductResponse(product, cfg.Catalog.LowStockThreshold))
	}
}
