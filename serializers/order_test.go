package serializers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosisn/onlineshop/models"
)

func TestNewOrderResponse(t *testing.T) {
	now := time.Now()
	order := models.Order{
		ID:        11,
		UserID:    2,
		User:      models.User{ID: 2, Username: "jane", Email: "jane@example.com"},
		OrderDate: now,
		Cost:      5500,
		Status:    models.OrderStatusPending,
		Address:   "12 Main St",
		Items: []models.OrderItem{
			{
				ID:        1,
				ProductID: 7,
				Product: models.Product{
					ID:    7,
					Name:  "Runner",
					Slug:  "runner",
					Price: decimal.NewFromFloat(25.00),
					Stock: 10,
				},
				Quantity: 2,
				Price:    2500,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := NewOrderResponse(order, 5)

	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, "jane", resp.User.Username)
	assert.Equal(t, models.OrderStatusPending, resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint(2500), resp.Items[0].Price)
	assert.Equal(t, uint(2), resp.Items[0].Quantity)
	assert.Equal(t, "runner", resp.Items[0].Product.Slug)

	// total_cost derives from the items; cost is the stored total. Both
	// are exposed and may diverge.
	assert.Equal(t, uint(5000), resp.TotalCost)
	assert.Equal(t, uint(5500), resp.Cost)
	assert.Equal(t, uint(2), resp.TotalProducts)
}

func TestNewOrderResponseEmptyItems(t *testing.T) {
	resp := NewOrderResponse(models.Order{ID: 1}, 5)
	assert.Empty(t, resp.Items)
	assert.Equal(t, uint(0), resp.TotalCost)
	assert.Equal(t, uint(0), resp.TotalProducts)
}

func TestCheckoutRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   []CheckoutItem
		wantErr bool
	}{
		{name: "valid single item", items: []CheckoutItem{{ProductID: 1, Quantity: 2}}},
		{name: "no items", items: nil, wantErr: true},
		{name: "zero quantity", items: []CheckoutItem{{ProductID: 1, Quantity: 0}}, wantErr: true},
		{
			name:    "quantity above cap",
			items:   []CheckoutItem{{ProductID: 1, Quantity: models.MaxOrderItemQuantity + 1}},
			wantErr: true,
		},
		{
			name:  "quantity at cap",
			items: []CheckoutItem{{ProductID: 1, Quantity: models.MaxOrderItemQuantity}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CheckoutRequest{UserID: 1, Address: "12 Main St", Items: tt.items}
			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, models.InvalidQuantity, verr.Kind)
		})
	}
}

func TestOrderItemSnapshotSurvivesPriceChange(t *testing.T) {
	product := models.Product{ID: 7, Price: decimal.NewFromFloat(25.00)}
	order := models.Order{
		Items: []models.OrderItem{
			{ProductID: 7, Product: product, Quantity: 1, Price: 2500},
		},
	}

	// The catalog price moves; the snapshot in the order does not.
	order.Items[0].Product.Price = decimal.NewFromFloat(30.00)

	resp := NewOrderResponse(order, 5)
	assert.Equal(t, uint(2500), resp.Items[0].Price)
	assert.Equal(t, uint(2500), resp.TotalCost)
	assert.True(t, resp.Items[0].Product.Price.Equal(decimal.NewFromFloat(30.00)))
}
