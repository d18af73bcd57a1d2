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

// UpdateProduct updates an existing product by ID. Only mutable fields
// are accepted: name, description, status, price, discount, stock,
// categories. The slug never changes once set, even when the name does.
func UpdateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			respondError(c, err)
			return
		}

		var req serializers.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := req.Validate(); err != nil {
			respondError(c, err)
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Status != nil {
			parsed, ok := serializers.ParseProductStatus(*req.Status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status", "field": "status"})
				return
			}
			product.Status = parsed
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Discount != nil {
			product.Discount = req.Discount
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}

		if req.CategoryIDs != nil {
			categories, err := findCategories(db, *req.CategoryIDs)
			if err != nil {
				respondError(c, err)
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
			product.Categories = categories
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewProductResponse(product, cfg.Catalog.LowStockThreshold))
	}
}
