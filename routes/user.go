package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/mosisn/onlineshop/controllers/user"
)

// SetupUserRoutes registers the user profile endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.POST("", userControllers.CreateUser(db))
		users.GET("/:id", userControllers.GetUser(db))
		users.PUT("/:id", userControllers.UpdateUser(db))
	}
}
