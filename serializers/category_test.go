package serializers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosisn/onlineshop/models"
)

func TestNewCategoryWithProductsResponse(t *testing.T) {
	category := models.Category{
		ID:   4,
		Name: "Shoes",
		Slug: "shoes",
		Products: []models.Product{
			{
				ID:    7,
				Name:  "Runner",
				Slug:  "runner",
				Price: decimal.NewFromFloat(59.90),
				Stock: 2,
			},
		},
	}

	resp := NewCategoryWithProductsResponse(category, 5)
	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, "shoes", resp.Slug)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "runner", resp.Products[0].Slug)
	assert.True(t, resp.Products[0].IsLowStock)
}

func TestNewCategoryWithProductsResponseEmpty(t *testing.T) {
	resp := NewCategoryWithProductsResponse(models.Category{ID: 1, Slug: "empty"}, 5)
	assert.Empty(t, resp.Products)
}
