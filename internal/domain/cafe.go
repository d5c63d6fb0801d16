package domain

import "time"

// Cafe Model
type Cafe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                // Primary key
	Name        string    `gorm:"not null" json:"name"`                // Cafe name
	Description string    `json:"description"`                         // Optional description
	Location    string    `json:"location"`                            // Optional campus location
	Status      string    `gorm:"not null;default:active" json:"status"` // Status: active or inactive
	CreatedAt   time.Time `json:"created_at"`                          // Timestamp of creation
}
