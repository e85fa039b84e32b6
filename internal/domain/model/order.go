package model

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusOutForDelivery OrderStatus = "Out_for_Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCanceled       OrderStatus = "Canceled"
)

type PaymentMethod string

const (
	PaymentMethodMpesa          PaymentMethod = "mpesa"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Order is an immutable record of a completed checkout.
// Customer and delivery fields are snapshots taken at checkout; later
// profile edits never touch them. Monetary fields and the payment
// method are frozen at creation, only Status and UpdatedAt move.
type Order struct {
	ID                  int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              *int64      `gorm:"index" json:"user_id"`
	CustomerName        string      `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone       string      `gorm:"type:varchar(15);not null" json:"customer_phone"`
	DeliveryAddress     string      `gorm:"type:text;not null" json:"delivery_address"`
	DeliveryCity        string      `gorm:"type:varchar(100)" json:"delivery_city"`
	DeliveryPostalCode  string      `gorm:"type:varchar(20)" json:"delivery_postal_code"`
	SpecialInstructions string      `gorm:"type:text" json:"special_instructions"`
	Subtotal            int64       `gorm:"not null" json:"subtotal"`
	DeliveryFee         int64       `gorm:"not null" json:"delivery_fee"`
	TotalPrice          int64       `gorm:"not null" json:"total_price"`
	PaymentMethod       string      `gorm:"type:varchar(20)" json:"payment_method"`
	Status              OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt           time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo reports whether s -> next is a legal move.
// The fulfilment path is linear (Pending -> Processing ->
// Out_for_Delivery -> Delivered); Canceled is reachable from any
// non-terminal state. Re-applying the current terminal status is not a
// transition and is handled by callers as a no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCanceled
	case OrderStatusProcessing:
		return next == OrderStatusOutForDelivery || next == OrderStatusCanceled
	case OrderStatusOutForDelivery:
		return next == OrderStatusDelivered || next == OrderStatusCanceled
	}
	return false
}
