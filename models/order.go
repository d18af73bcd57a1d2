package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before shipping
)

// MaxOrderItemQuantity caps the quantity of a single order item. With
// prices bounded by decimal(10,2) in minor units, the cap keeps
// Quantity*Price in TotalCost far from uint overflow.
const MaxOrderItemQuantity = 1_000_000

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID" json:"user"`
	OrderDate time.Time   `json:"order_date"`
	Cost      uint        `gorm:"not null" json:"cost"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Address   string      `gorm:"type:text" json:"address"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TotalCost sums quantity*price over the order's items, in minor currency
// units. It is recomputed from the loaded items on every call and is
// independent of the stored Cost, which is the authoritative total fixed
// at placement time (tax/shipping inclusive). The two may diverge; both
// are exposed.
func (o *Order) TotalCost() uint {
	var total uint
	for _, item := range o.Items {
		total += item.Quantity * item.Price
	}
	return total
}

// TotalProducts sums the quantities over the order's items.
func (o *Order) TotalProducts() uint {
	var total uint
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  uint    `gorm:"not null" json:"quantity"`
	// Price is the product price in minor units captured when the order
	// was placed. It never tracks later Product.Price changes.
	Price uint `gorm:"not null" json:"price"`
}
