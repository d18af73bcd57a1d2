// Package serializers maps domain models to the representations exposed
// over the API and validates incoming write payloads. Responses carry the
// computed fields (is_low_stock, total_cost, total_products); requests are
// checked field by field before anything is persisted.
package serializers

import "github.com/mosisn/onlineshop/models"

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

type CategoryWithProductsResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Products []ProductResponse `json:"products"`
}

func NewCategoryWithProductsResponse(c models.Category, lowStockThreshold int) CategoryWithProductsResponse {
	return CategoryWithProductsResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		Products: NewProductListResponse(c.Products, lowStockThreshold),
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	// Slug is optional; when empty it is derived from Name.
	Slug string `json:"slug"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}
