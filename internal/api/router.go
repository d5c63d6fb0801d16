package api

import (
	"time"

	"smart_cafe/internal/config"
	"smart_cafe/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewRouter wires every endpoint onto a gin engine. The menu and auth groups
// are public; the user, admin and food-authority groups require a session
// token, the latter two with the matching role claim.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/login", LoginHandler(db, cfg.JWTSecret))
	authGroup.POST("/signup", SignupHandler(db))
	authGroup.POST("/logout", LogoutHandler())

	menuGroup := apiGroup.Group("/menu")
	menuGroup.GET("/cafes", ListActiveCafesHandler(db, rdb))
	menuGroup.GET("/cafes/:cafe_id/items", ListMenuItemsHandler(db, rdb))
	menuGroup.GET("/recommendations/:user_id", RecommendationsHandler(db, rdb))

	userGroup := apiGroup.Group("/user")
	userGroup.Use(middleware.JWTAuth(cfg.JWTSecret))
	userGroup.GET("/profile", GetProfileHandler(db))
	userGroup.PUT("/profile", UpdateProfileHandler(db))
	userGroup.GET("/orders", ListOrdersHandler(db))
	userGroup.POST("/orders", PlaceOrderHandler(db, rdb))

	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(cfg.JWTSecret, "admin"))
	adminGroup.GET("/dashboard", AdminDashboardHandler(db, rdb))
	adminGroup.GET("/cafes", ListAllCafesHandler(db, rdb))
	adminGroup.POST("/cafes", CreateCafeHandler(db, rdb))
	adminGroup.GET("/users", ListUsersHandler(db))
	adminGroup.GET("/orders", ListAllOrdersHandler(db))
	adminGroup.GET("/notifications", ListNotificationsHandler(db))
	adminGroup.PUT("/notifications/:id/read", MarkNotificationReadHandler(db))

	authorityGroup := apiGroup.Group("/food-authority")
	authorityGroup.Use(middleware.JWTAuth(cfg.JWTSecret, "food_authority"))
	authorityGroup.GET("/dashboard", AuthorityDashboardHandler(db))
	authorityGroup.GET("/cafes", ListAllCafesHandler(db, rdb))
	authorityGroup.POST("/notifications", SendNotificationHandler(db))

	return r
}
