package serializers

import (
	"time"

	"github.com/mosisn/onlineshop/models"
)

type UserResponse struct {
	ID               uint       `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	ProfilePicture   string     `json:"profile_picture"`
	Bio              string     `json:"bio"`
	PhoneNumber      string     `json:"phone_number"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	Province         string     `json:"province"`
	PostalCode       string     `json:"postal_code"`
	LastPurchaseDate *time.Time `json:"last_purchase_date"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		ProfilePicture:   u.ProfilePicture,
		Bio:              u.Bio,
		PhoneNumber:      u.PhoneNumber,
		DateOfBirth:      u.DateOfBirth,
		Address:          u.Address,
		City:             u.City,
		Province:         u.Province,
		PostalCode:       u.PostalCode,
		LastPurchaseDate: u.LastPurchaseDate,
	}
}

func NewUserListResponse(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type CreateUserRequest struct {
	Username    string     `json:"username" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Bio         string     `json:"bio"`
	PhoneNumber string     `json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Province    string     `json:"province"`
	PostalCode  string     `json:"postal_code"`
}

type UpdateUserRequest struct {
	Username       *string    `json:"username"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	ProfilePicture *string    `json:"profile_picture"`
	Bio            *string    `json:"bio"`
	PhoneNumber    *string    `json:"phone_number"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Address        *string    `json:"address"`
	City           *string    `json:"city"`
	Province       *string    `json:"province"`
	PostalCode     *string    `json:"postal_code"`
}
