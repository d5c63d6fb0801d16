package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"smart_cafe/internal/domain"
	"smart_cafe/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderItemRequest is one line of a new order. The price field is accepted
// for payload compatibility but unit prices are resolved from the menu.
type OrderItemRequest struct {
	MenuItemID uint    `json:"menu_item_id"` // Menu item to order
	Quantity   int     `json:"quantity"`     // Quantity, defaults to 1
	Price      float64 `json:"price"`        // Ignored; server-side lookup is authoritative
}

// PlaceOrderRequest is the order placement payload
type PlaceOrderRequest struct {
	UserID          uint               `json:"user_id"`          // Must match the session when supplied
	CafeID          uint               `json:"cafe_id"`          // Cafe the order targets
	Items           []OrderItemRequest `json:"items"`            // Order lines, at least one
	TotalAmount     float64            `json:"total_amount"`     // Trusted when non-zero, computed otherwise
	DeliveryAddress string             `json:"delivery_address"` // Optional delivery address
	ContactNumber   string             `json:"contact_number"`   // Optional contact number
	PaymentMethod   string             `json:"payment_method"`   // Defaults to cash
	JazzcashTID     string             `json:"jazzcash_tid"`     // Optional JazzCash transaction id
}

// OrderLineView is one line of an order in the history response
type OrderLineView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderView is one order in the history response
type OrderView struct {
	ID              uint            `json:"id"`
	CafeName        string          `json:"cafe_name"`
	TotalAmount     float64         `json:"total_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	DeliveryAddress string          `json:"delivery_address"`
	ContactNumber   string          `json:"contact_number"`
	PaymentMethod   string          `json:"payment_method"`
	JazzcashTID     string          `json:"jazzcash_tid"`
	Items           []OrderLineView `json:"items"`
}

// PlaceOrderHandler creates an order with its lines in a single transaction.
// Unit prices are snapshotted from the menu at order time.
func PlaceOrderHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CafeID == 0 || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
			return
		}
		userID, ok := requestedUserID(c, req.UserID)
		if !ok {
			return
		}
		// Resolve authoritative unit prices for every requested item
		ids := make([]uint, 0, len(req.Items))
		for _, it := range req.Items {
			ids = append(ids, it.MenuItemID)
		}
		var menuItems []domain.MenuItem
		if err := db.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
			return
		}
		prices := make(map[uint]float64, len(menuItems))
		for _, mi := range menuItems {
			prices[mi.ID] = mi.Price
		}
		lines := make([]domain.OrderItem, 0, len(req.Items))
		var computed float64
		for _, it := range req.Items {
			price, found := prices[it.MenuItemID]
			if !found {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Menu item not found"})
				return
			}
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			lines = append(lines, domain.OrderItem{MenuItemID: it.MenuItemID, Quantity: qty, Price: price})
			computed += price * float64(qty)
		}
		// A supplied non-zero total is trusted; otherwise the line sum is used
		total := req.TotalAmount
		if total == 0 {
			total = computed
		}
		order := domain.Order{
			UserID:          userID,
			CafeID:          req.CafeID,
			TotalAmount:     total,
			Status:          "pending",
			DeliveryAddress: req.DeliveryAddress,
			ContactNumber:   req.ContactNumber,
			PaymentMethod:   req.PaymentMethod,
			JazzcashTID:     req.JazzcashTID,
		}
		// Order, lines and preference counters land together or not at all
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for i := range lines {
				lines[i].OrderID = order.ID
			}
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
			for _, line := range lines {
				if err := bumpPreference(tx, userID, line.MenuItemID, line.Quantity); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"cafe_id": req.CafeID,
				"error":   err.Error(),
			}).Error("Order placement failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,
			"cafe_id":  req.CafeID,
			"order_id": order.ID,
			"total":    total,
			"items":    len(lines),
		}).Info("Order placed")
		utils.InvalidateOrderViews(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order placed successfully", "order_id": order.ID})
	}
}

// bumpPreference increments the per-user order counter for a menu item,
// creating the preference row on first order.
func bumpPreference(tx *gorm.DB, userID, menuItemID uint, qty int) error {
	var pref domain.UserPreference
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&domain.UserPreference{UserID: userID, MenuItemID: menuItemID, OrderCount: qty}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&pref).Update("order_count", gorm.Expr("order_count + ?", qty)).Error
}

// ListOrdersHandler returns the user's order history, newest first. Orders
// whose cafe row is gone still show up, labelled "Unknown Cafe".
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var explicit uint
		if q := c.Query("user_id"); q != "" {
			if v, err := strconv.Atoi(q); err == nil {
				explicit = uint(v)
			}
		}
		userID, ok := requestedUserID(c, explicit)
		if !ok {
			return
		}
		var orders []OrderView
		err := db.Table("orders o").
			Select("o.id, COALESCE(c.name, 'Unknown Cafe') AS cafe_name, o.total_amount, o.status, o.created_at, o.delivery_address, o.contact_number, o.payment_method, o.jazzcash_tid").
			Joins("LEFT JOIN cafes c ON c.id = o.cafe_id").
			Where("o.user_id = ?", userID).
			Order("o.created_at DESC, o.id DESC").
			Scan(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		for i := range orders {
			var items []OrderLineView
			err := db.Table("order_items oi").
				Select("mi.name AS name, oi.quantity, oi.price").
				Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
				Where("oi.order_id = ?", orders[i].ID).
				Scan(&items).Error
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
				return
			}
			if items == nil {
				items = []OrderLineView{}
			}
			orders[i].Items = items
		}
		if orders == nil {
			orders = []OrderView{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
