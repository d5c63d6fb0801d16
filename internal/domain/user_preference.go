package domain

// UserPreference Model, used only as a recommendation ranking signal
type UserPreference struct {
	ID         uint `gorm:"primaryKey" json:"id"`                          // Primary key
	UserID     uint `gorm:"not null;index:idx_pref_user_item" json:"user_id"` // Foreign key to User
	MenuItemID uint `gorm:"not null;index:idx_pref_user_item" json:"menu_item_id"` // Foreign key to MenuItem
	Rating     int  `gorm:"not null;default:0" json:"rating"`              // Rating given by the user
	OrderCount int  `gorm:"not null;default:0" json:"order_count"`         // Times the user ordered the item
}
