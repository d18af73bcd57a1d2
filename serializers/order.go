package serializers

import (
	"fmt"
	"time"

	"github.com/mosisn/onlineshop/models"
)

type OrderResponse struct {
	ID        uint                `json:"id"`
	User      UserResponse        `json:"user"`
	OrderDate time.Time           `json:"order_date"`
	Cost      uint                `json:"cost"`
	Status    models.OrderStatus  `json:"status"`
	Address   string              `json:"address"`
	Items     []OrderItemResponse `json:"items"`
	// TotalCost and TotalProducts are recomputed from the items on every
	// read; Cost is the stored total fixed at placement. They can diverge.
	TotalCost     uint      `json:"total_cost"`
	TotalProducts uint      `json:"total_products"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity uint            `json:"quantity"`
	Price    uint            `json:"price"`
}

// NewOrderResponse builds the read representation of an order with its
// nested user and item snapshots. The nested representations are read
// only; writes to an order never cascade into them.
func NewOrderResponse(o models.Order, lowStockThreshold int) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID,
			Product:  NewProductResponse(item.Product, lowStockThreshold),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		User:          NewUserResponse(o.User),
		OrderDate:     o.OrderDate,
		Cost:          o.Cost,
		Status:        o.Status,
		Address:       o.Address,
		Items:         items,
		TotalCost:     o.TotalCost(),
		TotalProducts: o.TotalProducts(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func NewOrderListResponse(orders []models.Order, lowStockThreshold int) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o, lowStockThreshold))
	}
	return out
}

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  uint `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	UserID  uint           `json:"user_id" binding:"required"`
	Address string         `json:"address" binding:"required"`
	Cost    uint           `json:"cost"`
	Items   []CheckoutItem `json:"items" binding:"required"`
}

// Validate applies the checkout rules: at least one item, and a positive,
// bounded quantity per item. Binding catches most of this at the HTTP
// boundary; the checks live here so non-HTTP callers get the same
// user-correctable rejections.
func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return &models.ValidationError{
			Kind:    models.InvalidQuantity,
			Field:   "items",
			Message: "order must contain at least one item",
		}
	}
	for _, item := range r.Items {
		if item.Quantity == 0 {
			return &models.ValidationError{
				Kind:    models.InvalidQuantity,
				Field:   "quantity",
				Message: "quantity must be positive",
			}
		}
		if item.Quantity > models.MaxOrderItemQuantity {
			return &models.ValidationError{
				Kind:    models.InvalidQuantity,
				Field:   "quantity",
				Message: fmt.Sprintf("quantity must not exceed %d", models.MaxOrderItemQuantity),
			}
		}
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
