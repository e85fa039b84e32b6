package model

import "time"

// OrderItem carries the price and name exactly as they were when the
// order was placed. Catalog changes after that never reach these rows.
// MenuItemID is nullable so the history survives catalog deletion.
type OrderItem struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64     `gorm:"not null;index" json:"order_id"`
	MenuItemID       *int64    `gorm:"index" json:"menu_item_id"`
	ItemNameSnapshot string    `gorm:"type:varchar(255);not null" json:"item_name_snapshot"`
	PricePerUnit     int64     `gorm:"not null" json:"price_per_unit"`
	Quantity         int64     `gorm:"not null" json:"quantity"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
