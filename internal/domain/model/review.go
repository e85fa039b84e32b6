package model

import "time"

// Review is one customer rating for one menu item.
// A user reviews a given item at most once.
type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_review_user_item" json:"user_id"`
	MenuItemID int64     `gorm:"not null;uniqueIndex:idx_review_user_item" json:"menu_item_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
