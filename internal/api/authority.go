package api

import (
	"net/http"
	"time"

	"smart_cafe/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CafeInspection is a cafe annotated with its menu size, status ignored
type CafeInspection struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	MenuCount   int       `json:"menu_count"` // All menu items, available or not
}

// NotifyRequest is a one-way message to the admin inbox
type NotifyRequest struct {
	CafeID  uint   `json:"cafe_id"` // Optional cafe context
	Subject string `json:"subject"` // Required subject
	Message string `json:"message"` // Required body
}

// AuthorityDashboardHandler lists every cafe with its menu item count
func AuthorityDashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cafes []CafeInspection
		err := db.Table("cafes c").
			Select("c.id, c.name, c.description, c.location, c.status, c.created_at, (SELECT COUNT(*) FROM menu_items mi WHERE mi.cafe_id = c.id) AS menu_count").
			Scan(&cafes).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cafes"})
			return
		}
		if cafes == nil {
			cafes = []CafeInspection{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cafes": cafes})
	}
}

// SendNotificationHandler records a food-authority message for the admin role.
// The cafe_id is context only; every message lands in the same admin inbox.
func SendNotificationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Subject == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Subject and message are required"})
			return
		}
		notification := domain.Notification{
			FromRole: "food_authority",
			ToRole:   "admin",
			Subject:  req.Subject,
			Message:  req.Message,
		}
		if req.CafeID != 0 {
			notification.CafeID = &req.CafeID
		}
		if err := db.Create(&notification).Error; err != nil {
			logrus.WithFields(logrus.Fields{"subject": req.Subject, "error": err.Error()}).Error("Notification failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send notification"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"notification_id": notification.ID,
			"cafe_id":         req.CafeID,
		}).Info("Notification sent to admin")
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification sent successfully"})
	}
}
