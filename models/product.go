package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
	ProductStatusSoldOut  ProductStatus = "sold_out"
)

type Product struct {
	ID          uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Categories  []Category       `gorm:"many2many:product_categories" json:"categories"`
	Name        string           `gorm:"size:250;not null" json:"name"`
	Image       string           `gorm:"not null" json:"image"` // public URL, storage is external
	Description string           `gorm:"type:text" json:"description"`
	Slug        string           `gorm:"size:250;uniqueIndex;not null" json:"slug"`
	Status      ProductStatus    `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	Stock       int              `gorm:"default:0" json:"stock"`
	Reviews     []Review         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IsLowStock reports whether the product's stock is below the configured
// threshold. The threshold comes from configuration, never from the model.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock < threshold
}

// DeductStock removes qty units from stock. Fails with InsufficientStock
// when the deduction would drive stock below zero; the caller is expected
// to hold a row lock so the check and the write are atomic. The comparison
// stays in unsigned space: converting qty to int would wrap quantities
// past 2^63 negative and slip through the guard.
func (p *Product) DeductStock(qty uint) error {
	if p.Stock < 0 || qty > uint(p.Stock) {
		return newValidationError(InsufficientStock, "stock",
			"insufficient stock for product: "+p.Name)
	}
	p.Stock -= int(qty)
	return nil
}

// PriceMinorUnits returns the current price in minor currency units
// (cents). Order items snapshot this value at placement time.
func (p *Product) PriceMinorUnits() uint {
	return uint(p.Price.Shift(2).IntPart())
}
