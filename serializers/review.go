package serializers

import (
	"time"

	"github.com/mosisn/onlineshop/models"
)

type ReviewResponse struct {
	ID        uint            `json:"id"`
	User      UserResponse    `json:"user"`
	Product   ProductResponse `json:"product"`
	Rating    uint            `json:"rating"`
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewReviewResponse(r models.Review, lowStockThreshold int) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		User:      NewUserResponse(r.User),
		Product:   NewProductResponse(r.Product, lowStockThreshold),
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewReviewListResponse(reviews []models.Review, lowStockThreshold int) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r, lowStockThreshold))
	}
	return out
}

type CreateReviewRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	// Rating defaults to 5 when absent.
	Rating *uint  `json:"rating"`
	Text   string `json:"text"`
}

// Validate rejects out-of-range ratings at write time; values are never
// clamped.
func (r *CreateReviewRequest) Validate() error {
	if r.Rating != nil {
		return validateRating(*r.Rating)
	}
	return nil
}

// RatingOrDefault returns the requested rating, or 5 when none was given.
func (r *CreateReviewRequest) RatingOrDefault() uint {
	if r.Rating == nil {
		return 5
	}
	return *r.Rating
}

type UpdateReviewRequest struct {
	Rating *uint   `json:"rating"`
	Text   *string `json:"text"`
}

func (r *UpdateReviewRequest) Validate() error {
	if r.Rating != nil {
		return validateRating(*r.Rating)
	}
	return nil
}

func validateRating(rating uint) error {
	if rating < 1 || rating > 5 {
		return &models.ValidationError{
			Kind:    models.InvalidRating,
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		}
	}
	return nil
}
