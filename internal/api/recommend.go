package api

import (
	"context"
	"net/http"
	"strconv"

	"smart_cafe/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RecommendedItem is a menu item decorated with its ranking signals
type RecommendedItem struct {
	ID          uint     `json:"id"`
	CafeID      uint     `json:"cafe_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `gorm:"column:image_url" json:"image_url"`
	Category    string   `json:"category"`
	Available   bool     `json:"available"`
	OrderCount  int      `json:"order_count"`           // Orders across all users
	AvgRating   *float64 `json:"avg_rating"`            // This user's average rating, null when unrated
}

// RecommendationsHandler ranks available items by global popularity, then by
// the requesting user's own ratings. A popularity heuristic, nothing more.
func RecommendationsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil || userID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.RecommendKey(uint(userID))
		var items []RecommendedItem
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &items); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": items})
			return
		}
		// Items with no orders stay eligible: the LEFT JOINs leave their
		// order_count at 0 and avg_rating NULL, ranking them last.
		err = db.Table("menu_items mi").
			Select("mi.id, mi.cafe_id, mi.name, mi.description, mi.price, mi.image_url, mi.category, mi.available, COUNT(oi.id) AS order_count, AVG(up.rating) AS avg_rating").
			Joins("LEFT JOIN order_items oi ON oi.menu_item_id = mi.id").
			Joins("LEFT JOIN user_preferences up ON up.menu_item_id = mi.id AND up.user_id = ?", userID).
			Where("mi.available = ?", true).
			Group("mi.id, mi.cafe_id, mi.name, mi.description, mi.price, mi.image_url, mi.category, mi.available").
			Order("order_count DESC, avg_rating DESC").
			Limit(5).
			Scan(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch recommendations"})
			return
		}
		if items == nil {
			items = []RecommendedItem{}
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, items, utils.CacheTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": items})
	}
}
