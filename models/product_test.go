package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDeductStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		qty       uint
		wantErr   bool
		wantStock int
	}{
		{name: "plenty left", stock: 5, qty: 2, wantStock: 3},
		{name: "down to zero", stock: 5, qty: 5, wantStock: 0},
		{name: "one too many", stock: 5, qty: 6, wantErr: true, wantStock: 5},
		{name: "empty shelf", stock: 0, qty: 1, wantErr: true, wantStock: 0},
		{name: "zero deduction", stock: 0, qty: 0, wantStock: 0},
		// Quantities past 2^63 would wrap negative under a signed
		// comparison and slip through the guard.
		{name: "huge quantity", stock: 5, qty: 1 << 63, wantErr: true, wantStock: 5},
		{name: "max quantity", stock: 5, qty: ^uint(0), wantErr: true, wantStock: 5},
		{name: "corrupted negative stock", stock: -1, qty: 1, wantErr: true, wantStock: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Name: "Widget", Stock: tt.stock}
			err := p.DeductStock(tt.qty)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, InsufficientStock, verr.Kind)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, p.Stock)
		})
	}
}

func TestProductIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      bool
	}{
		{name: "below threshold", stock: 2, threshold: 5, want: true},
		{name: "at threshold", stock: 5, threshold: 5, want: false},
		{name: "above threshold", stock: 10, threshold: 5, want: false},
		{name: "zero stock", stock: 0, threshold: 5, want: true},
		{name: "zero threshold", stock: 0, threshold: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock}
			assert.Equal(t, tt.want, p.IsLowStock(tt.threshold))
		})
	}
}

func TestProductPriceMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		want  uint
	}{
		{name: "whole", price: decimal.NewFromInt(42), want: 4200},
		{name: "with cents", price: decimal.NewFromFloat(19.99), want: 1999},
		{name: "one cent", price: decimal.NewFromFloat(0.01), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price}
			assert.Equal(t, tt.want, p.PriceMinorUnits())
		})
	}
}
