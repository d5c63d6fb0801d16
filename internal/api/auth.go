package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"smart_cafe/internal/domain" // Importing domain models
	"smart_cafe/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email"`    // Login email
	Password string `json:"password"` // Plaintext password
}

// Request struct for signup
type SignupRequest struct {
	Name      string `json:"name"`      // Display name
	Email     string `json:"email"`     // Login email
	Password  string `json:"password"`  // Plaintext password
	StudentID string `json:"studentId"` // Optional campus student id
	Phone     string `json:"phone"`     // Optional phone number
}

// UserView is the public projection of a user returned on login
type UserView struct {
	ID        uint   `json:"id"`         // User ID
	Name      string `json:"name"`       // Display name
	Email     string `json:"email"`      // Login email
	Role      string `json:"role"`       // User role
	StudentID string `json:"student_id"` // Campus student id
	Phone     string `json:"phone"`      // Phone number
}

// LoginHandler authenticates a user and returns the public view plus a session token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}
		// Compare provided password with stored bcrypt digest
		if !utils.CheckPassword(user.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		// Issue a session token carrying the verified role claim
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": UserView{
				ID:        user.ID,
				Name:      user.Name,
				Email:     user.Email,
				Role:      user.Role,
				StudentID: user.StudentID,
				Phone:     user.Phone,
			},
			"token": token,
		})
	}
}

// SignupHandler creates a new account, always with role "user"
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, email, and password are required"})
			return
		}
		// Check if email already exists
		var count int64
		if err := db.Model(&domain.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Signup failed"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Signup failed"})
			return
		}
		user := domain.User{
			Name:      req.Name,
			Email:     req.Email,
			Password:  hash,
			StudentID: req.StudentID,
			Phone:     req.Phone,
			Role:      "user", // Role is fixed at creation
		}
		if err := db.Create(&user).Error; err != nil {
			// Unique index may still race with the count check above
			logrus.WithFields(logrus.Fields{"email": req.Email, "error": err.Error()}).Error("Signup failed")
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account created successfully"})
	}
}

// LogoutHandler acknowledges logout; sessions are stateless tokens
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
	}
}
