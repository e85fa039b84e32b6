package model

import "time"

type MpesaTransactionStatus string

const (
	MpesaTransactionPending MpesaTransactionStatus = "PENDING"
	MpesaTransactionSuccess MpesaTransactionStatus = "SUCCESS"
	MpesaTransactionFailed  MpesaTransactionStatus = "FAILED"
)

// MpesaTransaction tracks one STK push prompt sent for an order.
// The Daraja callback is matched back by CheckoutRequestID.
type MpesaTransaction struct {
	ID                int64                  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID           int64                  `gorm:"not null;index" json:"order_id"`
	MerchantRequestID string                 `gorm:"type:varchar(100)" json:"merchant_request_id"`
	CheckoutRequestID string                 `gorm:"type:varchar(100);not null;uniqueIndex" json:"checkout_request_id"`
	PhoneNumber       string                 `gorm:"type:varchar(15);not null" json:"phone_number"`
	Amount            int64                  `gorm:"not null" json:"amount"`
	Status            MpesaTransactionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ResultCode        *int                   `json:"result_code"`
	ResultDesc        string                 `gorm:"type:varchar(255)" json:"result_desc"`
	MpesaReceipt      string                 `gorm:"type:varchar(50)" json:"mpesa_receipt"`
	CreatedAt         time.Time              `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time              `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
