package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status           string      `gorm:"not null;default:pending" json:"status"` // e.g., "pending", "completed"
	Total            float64     `gorm:"not null" json:"total"`
	BillingCountry   string      `gorm:"not null" json:"billing_country"` // ISO country code, e.g., "KE"
	BillingPhone     string      `json:"billing_phone"`
	BillingEmail     string      `json:"billing_email"`
	BillingFirstName string      `json:"billing_first_name"`
	BillingLastName  string      `json:"billing_last_name"`
	Paid             bool        `gorm:"default:false" json:"paid"`
	PaidAt           *time.Time  `json:"paid_at"`
	StockReduced     bool        `gorm:"default:false" json:"stock_reduced"`
	Items            []OrderItem `json:"items"`
	Notes            []OrderNote `json:"notes"`
}

type OrderItem struct {
	gorm.Model
	OrderID     uint   `gorm:"index;not null" json:"order_id"`
	ProductID   uint   `gorm:"not null" json:"product_id"`
	ProductName string `gorm:"not null" json:"product_name"`
	Quantity    int    `gorm:"not null" json:"quantity"`
}

type OrderNote struct {
	gorm.Model
	OrderID uint   `gorm:"index;not null" json:"order_id"`
	Note    string `gorm:"not null" json:"note"`
}
