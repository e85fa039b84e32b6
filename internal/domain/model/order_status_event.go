package model

import "time"

// OrderStatusEvent records one applied status transition.
// ActorUserID is nil when the transition came from the payment
// callback rather than a staff member.
type OrderStatusEvent struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64       `gorm:"not null;index" json:"order_id"`
	ActorUserID *int64      `json:"actor_user_id"`
	FromStatus  OrderStatus `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus    OrderStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	Note        string      `gorm:"type:varchar(255)" json:"note"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
