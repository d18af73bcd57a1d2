package serializers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mosisn/onlineshop/models"
)

type ProductResponse struct {
	ID          uint                 `json:"id"`
	Category    []uint               `json:"category"`
	Name        string               `json:"name"`
	Image       string               `json:"image"`
	Description string               `json:"description"`
	Slug        string               `json:"slug"`
	Status      models.ProductStatus `json:"status"`
	Price       decimal.Decimal      `json:"price"`
	Discount    *decimal.Decimal     `json:"discount"`
	Stock       int                  `json:"stock"`
	IsLowStock  bool                 `json:"is_low_stock"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewProductResponse builds the read representation of a product. The
// low-stock flag is computed here against the configured threshold, never
// stored.
func NewProductResponse(p models.Product, lowStockThreshold int) ProductResponse {
	categoryIDs := make([]uint, 0, len(p.Categories))
	for _, c := range p.Categories {
		categoryIDs = append(categoryIDs, c.ID)
	}
	return ProductResponse{
		ID:          p.ID,
		Category:    categoryIDs,
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		Slug:        p.Slug,
		Status:      p.Status,
		Price:       p.Price,
		Discount:    p.Discount,
		Stock:       p.Stock,
		IsLowStock:  p.IsLowStock(lowStockThreshold),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProductListResponse(products []models.Product, lowStockThreshold int) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p, lowStockThreshold))
	}
	return out
}

type CreateProductRequest struct {
	CategoryIDs []uint           `json:"category"`
	Name        string           `json:"name" binding:"required"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Slug        string           `json:"slug"`
	Status      string           `json:"status"`
	Price       decimal.Decimal  `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
	Stock       *int             `json:"stock"`
}

// Validate applies the write-time field rules: price strictly positive,
// discount non-negative when present, stock never negative.
func (r *CreateProductRequest) Validate() error {
	if err := validatePrice(r.Price); err != nil {
		return err
	}
	if err := validateDiscount(r.Discount); err != nil {
		return err
	}
	if r.Stock != nil && *r.Stock < 0 {
		return InsufficientStockError(*r.Stock)
	}
	return nil
}

// UpdateProductRequest carries partial updates; nil fields are left
// untouched. Slug is deliberately absent: it is fixed once set.
type UpdateProductRequest struct {
	CategoryIDs *[]uint          `json:"category"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
	Stock       *int             `json:"stock"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.Price != nil {
		if err := validatePrice(*r.Price); err != nil {
			return err
		}
	}
	if err := validateDiscount(r.Discount); err != nil {
		return err
	}
	if r.Stock != nil && *r.Stock < 0 {
		return InsufficientStockError(*r.Stock)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return &models.ValidationError{
			Kind:    models.InvalidPrice,
			Field:   "price",
			Message: "price must be greater than 0",
		}
	}
	return nil
}

func validateDiscount(discount *decimal.Decimal) error {
	if discount != nil && discount.IsNegative() {
		return &models.ValidationError{
			Kind:    models.InvalidDiscount,
			Field:   "discount",
			Message: "discount must be a non-negative number",
		}
	}
	return nil
}

// InsufficientStockError rejects a stock mutation that would leave the
// product with a negative stock level.
func InsufficientStockError(stock int) error {
	return &models.ValidationError{
		Kind:    models.InsufficientStock,
		Field:   "stock",
		Message: fmt.Sprintf("stock must not go negative, got %d", stock),
	}
}

// ParseProductStatus maps the wire value onto the status enum.
func ParseProductStatus(s string) (models.ProductStatus, bool) {
	switch models.ProductStatus(s) {
	case models.ProductStatusActive, models.ProductStatusDraft,
		models.ProductStatusArchived, models.ProductStatusSoldOut:
		return models.ProductStatus(s), true
	default:
		return "", false
	}
}
