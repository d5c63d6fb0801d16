package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDriver      string // Database driver: mysql or sqlite
	DBUser        string // Database user (mysql)
	DBPassword    string // Database password (mysql)
	DBHost        string // Database host (mysql)
	DBPort        string // Database port (mysql)
	DBName        string // Database name (mysql)
	DBPath        string // Database file path (sqlite)
	JWTSecret     string // JWT secret key
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	AdminEmail    string // Seeded admin login email
	AdminPassword string // Seeded admin password
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getEnv("APP_PORT", "5000"),                  // Application port
		DBDriver:      getEnv("DB_DRIVER", "mysql"),                // Database driver
		DBUser:        os.Getenv("DB_USER"),                        // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                    // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),              // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                   // Database port
		DBName:        getEnv("DB_NAME", "smart_cafe"),             // Database name
		DBPath:        getEnv("DB_PATH", "smart_cafe.db"),          // SQLite file path
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),            // JWT secret key
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),      // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                     // Redis password
		RedisDB:       redisDB,                                     // Redis database number
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@cafe.com"),     // Seeded admin email
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),        // Seeded admin password
		IsProd:        os.Getenv("IS_PROD") == "true",              // Is production environment
	}
}

// getEnv returns the environment value for key, or fallback when unset
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// MySQLDSN builds the MySQL Data Source Name from the loaded settings
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
