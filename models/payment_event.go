package models

import "time"

// PaymentEvent is the audit record kept for every handled payment
// notification from the gateway.
type PaymentEvent struct {
	ID                    string    `gorm:"primaryKey" json:"id"` // UUID
	OrderID               uint      `gorm:"index;not null" json:"order_id"`
	StatusCode            int       `gorm:"not null" json:"status_code"`
	CheckoutRequestID     string    `gorm:"not null" json:"checkout_request_id"`
	MerchantTransactionID string    `gorm:"not null" json:"merchant_transaction_id"`
	CreatedAt             time.Time `json:"created_at"`
}
