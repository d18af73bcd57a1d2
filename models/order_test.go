package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []OrderItem
		wantCost     uint
		wantProducts uint
	}{
		{
			name:         "empty order",
			items:        nil,
			wantCost:     0,
			wantProducts: 0,
		},
		{
			name: "single item",
			items: []OrderItem{
				{Quantity: 2, Price: 1050},
			},
			wantCost:     2100,
			wantProducts: 2,
		},
		{
			name: "multiple items",
			items: []OrderItem{
				{Quantity: 2, Price: 1050},
				{Quantity: 1, Price: 499},
				{Quantity: 3, Price: 200},
			},
			wantCost:     2100 + 499 + 600,
			wantProducts: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{Items: tt.items}
			assert.Equal(t, tt.wantCost, order.TotalCost())
			assert.Equal(t, tt.wantProducts, order.TotalProducts())
		})
	}
}

func TestOrderTotalsIndependentOfStoredCost(t *testing.T) {
	// Cost is the authoritative total fixed at placement (tax/shipping
	// inclusive); TotalCost is derived from the items. They may diverge.
	order := Order{
		Cost: 5000,
		Items: []OrderItem{
			{Quantity: 1, Price: 4200},
		},
	}
	assert.Equal(t, uint(4200), order.TotalCost())
	assert.Equal(t, uint(5000), order.Cost)
}

func TestOrderItemPriceIsSnapshot(t *testing.T) {
	product := Product{
		Name:  "Keyboard",
		Price: decimal.NewFromFloat(42.00),
	}
	item := OrderItem{
		Quantity: 1,
		Price:    product.PriceMinorUnits(),
	}
	assert.Equal(t, uint(4200), item.Price)

	// Later price changes must not affect the captured snapshot.
	product.Price = decimal.NewFromFloat(99.99)
	assert.Equal(t, uint(4200), item.Price)
	assert.Equal(t, uint(9999), product.PriceMinorUnits())
}
