package main

import (
	"smart_cafe/internal/config" // Custom import path (Config)
	"smart_cafe/internal/db"     // Custom import path (Database)

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Pick the dialector matching the configured driver
	if cfg.DBDriver == "sqlite" {
		db.Migrate(sqlite.Open(cfg.DBPath))
		return
	}
	db.Migrate(mysql.Open(cfg.MySQLDSN()))
}
