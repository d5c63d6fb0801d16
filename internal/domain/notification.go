package domain

import "time"

// Notification Model
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`             // Primary key
	FromRole  string    `gorm:"not null" json:"from_role"`        // Sender role
	ToRole    string    `gorm:"not null;index" json:"to_role"`    // Recipient role inbox
	CafeID    *uint     `json:"cafe_id"`                          // Optional cafe context, not a routing key
	Subject   string    `gorm:"not null" json:"subject"`          // Message subject
	Message   string    `gorm:"not null" json:"message"`          // Message body
	Read      bool      `gorm:"not null;default:false" json:"read"` // Read flag
	CreatedAt time.Time `json:"created_at"`                       // Timestamp of creation
}
