package serializers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosisn/onlineshop/models"
)

func TestCreateProductRequestValidatePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    decimal.Decimal
		wantKind models.ValidationKind
	}{
		{name: "zero price", price: decimal.Zero, wantKind: models.InvalidPrice},
		{name: "negative price", price: decimal.NewFromInt(-1), wantKind: models.InvalidPrice},
		{name: "one cent ok", price: decimal.NewFromFloat(0.01)},
		{name: "regular price ok", price: decimal.NewFromFloat(19.99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateProductRequest{Name: "Widget", Price: tt.price}
			err := req.Validate()
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, "price", verr.Field)
		})
	}
}

func TestCreateProductRequestValidateDiscount(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	zero := decimal.Zero
	positive := decimal.NewFromFloat(2.50)

	tests := []struct {
		name     string
		discount *decimal.Decimal
		wantKind models.ValidationKind
	}{
		{name: "absent discount ok", discount: nil},
		{name: "zero discount ok", discount: &zero},
		{name: "positive discount ok", discount: &positive},
		{name: "negative discount", discount: &negative, wantKind: models.InvalidDiscount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateProductRequest{
				Name:     "Widget",
				Price:    decimal.NewFromInt(10),
				Discount: tt.discount,
			}
			err := req.Validate()
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestUpdateProductRequestValidateStock(t *testing.T) {
	negative := -1
	zero := 0
	price := decimal.NewFromInt(10)

	req := UpdateProductRequest{Price: &price, Stock: &negative}
	var verr *models.ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, models.InsufficientStock, verr.Kind)

	req.Stock = &zero
	assert.NoError(t, req.Validate())
}

func TestNewProductResponse(t *testing.T) {
	now := time.Now()
	discount := decimal.NewFromFloat(1.50)
	product := models.Product{
		ID: 7,
		Categories: []models.Category{
			{ID: 1, Name: "Shoes", Slug: "shoes"},
			{ID: 3, Name: "Sale", Slug: "sale"},
		},
		Name:        "Runner",
		Image:       "/media/images/runner.png",
		Description: "A running shoe",
		Slug:        "runner",
		Status:      models.ProductStatusActive,
		Price:       decimal.NewFromFloat(59.90),
		Discount:    &discount,
		Stock:       3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := NewProductResponse(product, 5)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, []uint{1, 3}, resp.Category)
	assert.Equal(t, "runner", resp.Slug)
	assert.True(t, resp.IsLowStock, "stock 3 is below threshold 5")
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(59.90)))
	require.NotNil(t, resp.Discount)
	assert.True(t, resp.Discount.Equal(discount))

	// Same product, lower threshold: no longer flagged.
	resp = NewProductResponse(product, 3)
	assert.False(t, resp.IsLowStock)
}

func TestParseProductStatus(t *testing.T) {
	for _, valid := range []string{"active", "draft", "archived", "sold_out"} {
		status, ok := ParseProductStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, models.ProductStatus(valid), status)
	}
	_, ok := ParseProductStatus("discontinued")
	assert.False(t, ok)
}
