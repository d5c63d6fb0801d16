package api

import (
	"errors"
	"net/http"
	"strconv"

	"smart_cafe/internal/domain"
	"smart_cafe/internal/middleware"
	"smart_cafe/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileView is the full own-record projection, address included
type ProfileView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
}

// UpdateProfileRequest carries tri-state optional fields: a nil pointer means
// "leave untouched". Empty strings are skipped too, matching the falsy-field
// convention callers already rely on.
type UpdateProfileRequest struct {
	UserID      uint    `json:"user_id"`     // Accepted for payload compatibility, must match the session
	Email       *string `json:"email"`       // New email, optional
	Phone       *string `json:"phone"`       // New phone, optional
	Address     *string `json:"address"`     // New address, optional
	NewPassword *string `json:"newPassword"` // New password, re-hashed before storage
}

// requestedUserID resolves the target user: the authenticated ID, unless the
// caller supplied an explicit user_id that does not match it (forbidden).
func requestedUserID(c *gin.Context, explicit uint) (uint, bool) {
	authID := middleware.CurrentUserID(c)
	if explicit != 0 && explicit != authID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
		return 0, false
	}
	return authID, true
}

// GetProfileHandler returns the authenticated user's own record
func GetProfileHandler(db *gorm.DB) gin.HandlerFunc {
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
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": ProfileView{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			StudentID: user.StudentID,
			Phone:     user.Phone,
			Address:   user.Address,
			Role:      user.Role,
		}})
	}
}

// UpdateProfileHandler applies a partial update to the user's own record
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		userID, ok := requestedUserID(c, req.UserID)
		if !ok {
			return
		}
		updates := map[string]any{}
		if req.Email != nil && *req.Email != "" {
			updates["email"] = *req.Email
		}
		if req.Phone != nil && *req.Phone != "" {
			updates["phone"] = *req.Phone
		}
		if req.Address != nil && *req.Address != "" {
			updates["address"] = *req.Address
		}
		if req.NewPassword != nil && *req.NewPassword != "" {
			hash, err := utils.HashPassword(*req.NewPassword)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
				return
			}
			updates["password"] = hash
		}
		if len(updates) > 0 {
			if err := db.Model(&domain.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
	}
}
