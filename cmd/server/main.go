package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"smart_cafe/internal/api"    // Custom package for API handlers
	"smart_cafe/internal/config" // Custom package for configuration
	"smart_cafe/internal/db"     // Custom package for schema and seeding

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/driver/sqlite"        // SQLite driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// openDatabase connects with the configured driver
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	return gorm.Open(mysql.Open(cfg.MySQLDSN()), &gorm.Config{})
}

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gormDB, err := openDatabase(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Ensure schema, default admin and sample catalog exist on every start
	if err := db.AutoMigrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(gormDB, cfg); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin with all routes
	r := api.NewRouter(gormDB, redisClient, cfg)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
