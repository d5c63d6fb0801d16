package domain

// OrderItem Model
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`           // Primary key
	OrderID    uint    `gorm:"not null;index" json:"order_id"` // Foreign key to Order
	MenuItemID uint    `gorm:"not null" json:"menu_item_id"`   // Foreign key to MenuItem
	Quantity   int     `gorm:"not null" json:"quantity"`       // Ordered quantity, at least 1
	Price      float64 `gorm:"not null" json:"price"`          // Unit price snapshot at order time
}
