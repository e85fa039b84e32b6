package model

import "time"

// CartItem is one (user, menu item) line in a cart.
// A user has at most one line per item: re-adding the same item
// increments the quantity instead of inserting a second row.
// No price column here. Cart lines follow the live catalog price;
// prices are only frozen at checkout.
type CartItem struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	MenuItemID int64     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menu_item_id"`
	Quantity   int64     `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
