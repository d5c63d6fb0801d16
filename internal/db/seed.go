package db

import (
	"smart_cafe/internal/config"
	"smart_cafe/internal/domain"
	"smart_cafe/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed ensures the default admin account and the sample catalog exist.
// Both steps are idempotent and run on every startup.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return seedSampleData(db)
}

// seedAdmin creates the default admin user once
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&domain.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already exists
	}
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := domain.User{
		Name:     "Admin User",
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("email", cfg.AdminEmail).Info("Seeded default admin user")
	return nil
}

// seedSampleData inserts one cafe and its menu when no cafes exist yet
func seedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Cafe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Catalog already populated
	}
	cafe := domain.Cafe{
		Name:        "Cafe De Light",
		Description: "Offering a variety of snacks, fast food, and beverages.",
		Location:    "COMSATS University, Vehari Campus",
		Status:      "active",
	}
	items := []domain.MenuItem{
		{Name: "Cheese Burger", Description: "Juicy grilled beef patty with cheese, lettuce, and tomato.", Price: 350, ImageURL: "../../../public/images/burger.jpg", Category: "Fast Food", Available: true},
		{Name: "Margherita Pizza", Description: "Classic cheesy pizza with a crispy crust and tomato base.", Price: 800, ImageURL: "../../../public/images/pizza.jpg", Category: "Fast Food", Available: true},
		{Name: "White Sauce Pasta", Description: "Creamy and rich pasta tossed in white sauce and herbs.", Price: 450, ImageURL: "../../../public/images/pasta.jpg", Category: "Italian", Available: true},
		{Name: "Cappuccino", Description: "Rich espresso with steamed milk foam.", Price: 250, ImageURL: "../../../public/images/coffee.jpg", Category: "Beverages", Available: true},
		{Name: "Club Sandwich", Description: "Layered sandwich with chicken, egg, and veggies.", Price: 300, ImageURL: "../../../public/images/sandwich.jpg", Category: "Fast Food", Available: true},
		{Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken pieces.", Price: 500, ImageURL: "../../../public/images/biryani.jpg", Category: "Pakistani", Available: true},
		{Name: "Zinger Burger", Description: "Crispy chicken fillet with fresh lettuce and special sauce.", Price: 350, ImageURL: "../../../public/images/burger.jpg", Category: "Fast Food", Available: true},
	}
	// Cafe and its menu land together or not at all
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cafe).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].CafeID = cafe.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"cafe":  cafe.Name,
			"items": len(items),
		}).Info("Seeded sample catalog")
		return nil
	})
}
