package domain

import "time"

// MenuItem Model
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`               // Primary key
	CafeID      uint      `gorm:"not null;index" json:"cafe_id"`      // Foreign key to Cafe
	Name        string    `gorm:"not null" json:"name"`               // Item name
	Description string    `json:"description"`                        // Optional description
	Price       float64   `gorm:"not null" json:"price"`              // Current unit price
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`  // Optional image path
	Category    string    `json:"category"`                           // Optional category label
	Available   bool      `gorm:"not null;default:true" json:"available"` // Visible in catalog only when true
	CreatedAt   time.Time `json:"created_at"`                         // Timestamp of creation
}
