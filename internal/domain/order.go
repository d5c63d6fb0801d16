package domain

import "time"

// Order Model
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`                  // Primary key
	UserID          uint      `gorm:"not null;index" json:"user_id"`         // Foreign key to User
	CafeID          uint      `gorm:"not null" json:"cafe_id"`               // Foreign key to Cafe
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`          // Order total
	Status          string    `gorm:"not null;default:pending" json:"status"` // Status: pending, ...
	DeliveryAddress string    `json:"delivery_address"`                      // Optional delivery address
	ContactNumber   string    `json:"contact_number"`                        // Optional contact number
	PaymentMethod   string    `gorm:"not null;default:cash" json:"payment_method"` // Payment method, defaults to cash
	JazzcashTID     string    `gorm:"column:jazzcash_tid" json:"jazzcash_tid"` // Optional JazzCash transaction id
	CreatedAt       time.Time `json:"created_at"`                            // Timestamp of creation
}
