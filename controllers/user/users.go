package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// CreateUser registers a new user. Email is required and unique.
// POST /users
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serializers.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ? OR username = ?", req.Email, req.Username).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing users"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
			return
		}

		user := models.User{
			Username:    req.Username,
			Email:       req.Email,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Bio:         req.Bio,
			PhoneNumber: req.PhoneNumber,
			DateOfBirth: req.DateOfBirth,
			Address:     req.Address,
			City:        req.City,
			Province:    req.Province,
			PostalCode:  req.PostalCode,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, serializers.NewUserResponse(user))
	}
}

// GetUser returns a single user profile.
// GET /users/:id
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		c.JSON(http.StatusOK, serializers.NewUserResponse(user))
	}
}

// GetAllUsers returns all users, newest first (admin).
// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, serializers.NewUserListResponse(users))
	}
}

// UpdateUser applies a partial profile update; absent fields stay as they
// are.
// PUT /users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		var input serializers.UpdateUserRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.ProfilePicture != nil {
			updates["profile_picture"] = *input.ProfilePicture
		}
		if input.Bio != nil {
			updates["bio"] = *input.Bio
		}
		if input.PhoneNumber != nil {
			updates["phone_number"] = *input.PhoneNumber
		}
		if input.DateOfBirth != nil {
			updates["date_of_birth"] = *input.DateOfBirth
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}
		if input.City != nil {
			updates["city"] = *input.City
		}
		if input.Province != nil {
			updates["province"] = *input.Province
		}
		if input.PostalCode != nil {
			updates["postal_code"] = *input.PostalCode
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, serializers.NewUserResponse(user))
	}
}
