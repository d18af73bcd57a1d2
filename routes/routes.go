package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// user, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public catalog routes (no middleware)
	SetupCatalogRoutes(r, db, cfg)

	// User profile routes
	SetupUserRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db, cfg)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, cfg)
}
