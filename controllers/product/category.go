package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// CreateCategory creates a category, deriving the slug from the name when
// the caller did not supply one.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serializers.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slug, err := resolveSlug(db, &models.Category{}, req.Name, req.Slug)
		if err != nil {
			respondError(c, err)
			return
		}

		category := models.Category{
			Name: req.Name,
			Slug: slug,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, serializers.NewCategoryResponse(category))
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, serializers.NewCategoryListResponse(categories))
	}
}

// GetCategoryByID returns a single category with its products.
func GetCategoryByID(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("Products").Preload("Products.Categories").
			First(&category, id).Error; err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, serializers.NewCategoryWithProductsResponse(
			category, cfg.Catalog.LowStockThreshold))
	}
}

// UpdateCategory updates mutable category fields. The slug stays fixed
// once set.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			respondError(c, err)
			return
		}

		var req serializers.UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Name != nil {
			category.Name = *req.Name
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewCategoryResponse(category))
	}
}

// DeleteCategory removes a category. Products keep existing; only the
// join-table rows go away.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			respondError(c, err)
			return
		}

		if err := db.Model(&category).Association("Products").Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to detach products"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
