package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Primary key
	Name      string    `gorm:"not null" json:"name"`              // Display name
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // Unique login email
	Password  string    `gorm:"not null" json:"-"`                 // Bcrypt digest, never serialized
	StudentID string    `json:"student_id"`                        // Optional campus student id
	Phone     string    `json:"phone"`                             // Optional phone number
	Address   string    `json:"address"`                           // Optional delivery address
	Role      string    `gorm:"not null;default:user" json:"role"` // Role: user, admin or food_authority
	CreatedAt time.Time `json:"created_at"`                        // Timestamp of creation
}
