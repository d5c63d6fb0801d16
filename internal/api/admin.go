package api

import (
	"context"
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

// DashboardStats are the admin landing-page counters
type DashboardStats struct {
	Users         int64 `json:"users"`          // Accounts with role "user" only
	Cafes         int64 `json:"cafes"`          // All cafes
	Orders        int64 `json:"orders"`         // All orders
	PendingOrders int64 `json:"pending_orders"` // Orders still pending
}

// CreateCafeRequest is the cafe creation payload
type CreateCafeRequest struct {
	Name        string `json:"name"`        // Required cafe name
	Description string `json:"description"` // Optional description
	Location    string `json:"location"`    // Optional location
}

// AdminOrderView is one row of the all-orders listing
type AdminOrderView struct {
	ID            uint      `json:"id"`
	UserName      string    `json:"user_name"`
	CafeName      string    `json:"cafe_name"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminDashboardHandler returns the four dashboard counters
func AdminDashboardHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var stats DashboardStats
		if found, err := utils.GetCache(ctx, rdb, utils.AdminDashboardKey, &stats); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
			return
		}
		// Four independent counts; the seeded admin is not a "user"
		queries := []struct {
			dest  *int64
			build func() *gorm.DB
		}{
			{&stats.Users, func() *gorm.DB { return db.Model(&domain.User{}).Where("role = ?", "user") }},
			{&stats.Cafes, func() *gorm.DB { return db.Model(&domain.Cafe{}) }},
			{&stats.Orders, func() *gorm.DB { return db.Model(&domain.Order{}) }},
			{&stats.PendingOrders, func() *gorm.DB { return db.Model(&domain.Order{}).Where("status = ?", "pending") }},
		}
		for _, q := range queries {
			if err := q.build().Count(q.dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch statistics"})
				return
			}
		}
		_ = utils.SetCache(ctx, rdb, utils.AdminDashboardKey, stats, utils.CacheTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

// CreateCafeHandler registers a new cafe, active by default
func CreateCafeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCafeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cafe name is required"})
			return
		}
		cafe := domain.Cafe{
			Name:        req.Name,
			Description: req.Description,
			Location:    req.Location,
			Status:      "active",
		}
		if err := db.Create(&cafe).Error; err != nil {
			logrus.WithFields(logrus.Fields{"name": req.Name, "error": err.Error()}).Error("Cafe creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create cafe"})
			return
		}
		logrus.WithFields(logrus.Fields{"cafe_id": cafe.ID, "name": cafe.Name}).Info("Cafe created")
		utils.InvalidateCatalog(context.Background(), rdb)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cafe created successfully"})
	}
}

// ListUsersHandler returns all non-privileged accounts
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User
		if err := db.Where("role = ?", "user").Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// ListAllOrdersHandler returns every order with user and cafe names, newest first
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []AdminOrderView
		err := db.Table("orders o").
			Select("o.id, COALESCE(u.name, 'Unknown User') AS user_name, COALESCE(c.name, 'Unknown Cafe') AS cafe_name, o.total_amount, o.status, o.payment_method, o.created_at").
			Joins("LEFT JOIN users u ON u.id = o.user_id").
			Joins("LEFT JOIN cafes c ON c.id = o.cafe_id").
			Order("o.created_at DESC, o.id DESC").
			Scan(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []AdminOrderView{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// ListNotificationsHandler returns the admin inbox, newest first
func ListNotificationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []domain.Notification
		if err := db.Where("to_role = ?", "admin").Order("created_at DESC, id DESC").Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
	}
}

// MarkNotificationReadHandler flags one inbox message as read
func MarkNotificationReadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid notification id"})
			return
		}
		res := db.Model(&domain.Notification{}).Where("id = ? AND to_role = ?", id, "admin").Update("read", true)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update notification"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification marked as read"})
	}
}
