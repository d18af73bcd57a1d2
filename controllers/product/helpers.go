package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/models"
)

// respondError translates domain errors into the structured rejection the
// API returns. Validation failures name the offending field; nothing here
// is fatal to the process.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
			"kind":  verr.Kind,
		})
	case errors.Is(err, models.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use", "field": "slug"})
	case errors.Is(err, models.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name does not produce a valid slug", "field": "name"})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// resolveSlug binds models.ResolveSlug to the given table's uniqueness
// check. Collisions surface as ErrDuplicateSlug (HTTP 409).
func resolveSlug(db *gorm.DB, model interface{}, name, supplied string) (string, error) {
	return models.ResolveSlug(name, supplied, func(s string) (bool, error) {
		var count int64
		if err := db.Model(model).Where("slug = ?", s).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

func findCategories(db *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, models.ErrNotFound
	}
	return categories, nil
}
