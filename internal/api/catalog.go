package api

import (
	"context"
	"net/http"
	"strconv"

	"smart_cafe/internal/domain"
	"smart_cafe/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ListActiveCafesHandler returns the cafes end users can order from
func ListActiveCafesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var cafes []domain.Cafe
		// Try the cache first, catalog reads dominate traffic
		if found, err := utils.GetCache(ctx, rdb, utils.ActiveCafesKey, &cafes); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "cafes": cafes})
			return
		}
		if err := db.Where("status = ?", "active").Find(&cafes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cafes"})
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.ActiveCafesKey, cafes, utils.CacheTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "cafes": cafes})
	}
}

// ListMenuItemsHandler returns the available items of one cafe
func ListMenuItemsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cafeID, err := strconv.Atoi(c.Param("cafe_id"))
		if err != nil || cafeID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cafe id"})
			return
		}
		ctx := context.Background()
		cacheKey := utils.MenuItemsKey(uint(cafeID))
		var items []domain.MenuItem
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &items); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
			return
		}
		if err := db.Where("cafe_id = ? AND available = ?", cafeID, true).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch menu items"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, items, utils.CacheTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
	}
}

// ListAllCafesHandler returns every cafe regardless of status, newest first.
// Serves both the admin and food-authority cafe listings.
func ListAllCafesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var cafes []domain.Cafe
		if found, err := utils.GetCache(ctx, rdb, utils.AllCafesKey, &cafes); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "cafes": cafes})
			return
		}
		if err := db.Order("created_at DESC, id DESC").Find(&cafes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cafes"})
			return
		}
		_ = utils.SetCache(ctx, rdb, utils.AllCafesKey, cafes, utils.CacheTTL)
		c.JSON(http.StatusOK, gin.H{"success": true, "cafes": cafes})
	}
}
