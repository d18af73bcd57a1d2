package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mosisn/onlineshop/config"
	"github.com/mosisn/onlineshop/models"
	"github.com/mosisn/onlineshop/serializers"
)

// -------- Helpers --------

func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
			"kind":  verr.Kind,
		})
	case errors.Is(err, models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Core Logic --------

// PlaceOrder creates an order and its items in one transaction. Each
// product row is locked, its stock checked and deducted, and its current
// price copied into the item as a fixed snapshot. Either the order and all
// its items are written, or nothing is.
func PlaceOrder(db *gorm.DB, req serializers.CheckoutRequest) (models.Order, error) {
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}

	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, models.ErrNotFound
		}
		return models.Order{}, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem

		for _, item := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrNotFound
				}
				return err
			}

			if err := product.DeductStock(item.Quantity); err != nil {
				return err
			}
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.PriceMinorUnits(),
			})
		}

		order = models.Order{
			UserID:    user.ID,
			OrderDate: time.Now(),
			Cost:      req.Cost,
			Status:    models.OrderStatusPending,
			Address:   req.Address,
			Items:     orderItems,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	order.User = user
	return order, nil
}

// -------- Handlers --------

// PlaceOrderHandler handles checkout.
// POST /orders
func PlaceOrderHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serializers.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			respondError(c, err)
			return
		}

		// Reload with product snapshots for the response.
		if err := db.Preload("Items.Product.Categories").Preload("Items.Product").
			Preload("User").First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		c.JSON(http.StatusCreated,
			serializers.NewOrderResponse(order, cfg.Catalog.LowStockThreshold))
	}
}

// GetOrderHandler returns a single order with nested user and items.
// GET /orders/:orderID
func GetOrderHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items.Product.Categories").Preload("Items.Product").
			Preload("User").First(&order, id).Error; err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewOrderResponse(order, cfg.Catalog.LowStockThreshold))
	}
}

// GetAllOrdersHandler returns every order, newest first (admin).
// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items.Product.Categories").Preload("Items.Product").
			Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewOrderListResponse(orders, cfg.Catalog.LowStockThreshold))
	}
}

// GetUserOrdersHandler returns a user's orders, newest first.
// GET /orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			respondError(c, err)
			return
		}

		var orders []models.Order
		if err := db.Preload("Items.Product.Categories").Preload("Items.Product").
			Preload("User").
			Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewOrderListResponse(orders, cfg.Catalog.LowStockThreshold))
	}
}

// UpdateOrderStatusHandler moves an order through its externally driven
// status transitions. Delivery stamps the user's last purchase date.
// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req serializers.UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "status"})
			return
		}

		var order models.Order
		if err := db.Preload("Items.Product.Categories").Preload("Items.Product").
			Preload("User").First(&order, id).Error; err != nil {
			respondError(c, err)
			return
		}

		order.Status = status
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&order).Update("status", status).Error; err != nil {
				return err
			}
			if status == models.OrderStatusDelivered {
				now := time.Now()
				order.User.LastPurchaseDate = &now
				return tx.Model(&order.User).Update("last_purchase_date", now).Error
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK,
			serializers.NewOrderResponse(order, cfg.Catalog.LowStockThreshold))
	}
}

// DeleteOrderHandler removes an order and its items.
// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			respondError(c, err)
			return
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
