package reviewcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
			"kind":  verr.Kind,
		})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateReview adds a review to a product. Ratings outside [1,5] are
// rejected, never clamped.
// POST /products/:id/reviews
func CreateReview(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req serializers.CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := req.Validate(); err != nil {
			respondError(c, err)
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, productID).Error; err != nil {
			respondError(c, err)
			return
		}
		var user models.User
		if err := db.First(&user, req.UserID).Error; err != nil {
			respondError(c, err)
			return
		}

		review := models.Review{
			ProductID: product.ID,
			UserID:    user.ID,
			Rating:    req.RatingOrDefault(),
			Text:      req.Text,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		review.Product = product
		review.User = user
		c.JSON(http.StatusCreated,
			serializers.NewReviewResponse(review, cfg.Catalog.LowStockThreshold))
	}
}

// GetProductReviews lists the reviews of a product, newest first.
// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			respondError(c, err)
			return
		}

		var reviews []models.Review
		if err := db.Preload("User").Preload("Product").Preload("Product.Categories").
			Where("product_id = ?", product.ID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewReviewListResponse(reviews, cfg.Catalog.LowStockThreshold))
	}
}

// UpdateReview updates the rating and/or text of a review.
// PUT /reviews/:id
func UpdateReview(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		var review models.Review
		if err := db.Preload("User").Preload("Product").Preload("Product.Categories").
			First(&review, id).Error; err != nil {
			respondError(c, err)
			return
		}

		var req serializers.UpdateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := req.Validate(); err != nil {
			respondError(c, err)
			return
		}

		if req.Rating != nil {
			review.Rating = *req.Rating
		}
		if req.Text != nil {
			review.Text = *req.Text
		}

		if err := db.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewReviewResponse(review, cfg.Catalog.LowStockThreshold))
	}
}

// DeleteReview removes a review.
// DELETE /reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			respondError(c, err)
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
