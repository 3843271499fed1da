package tingg

import "github.com/osenco/osen-wc-tingg/models"

// OrderStore is the order capability the gateway needs from the host shop.
// MarkPaid and ReduceStock must be idempotent per order so that duplicate
// webhook deliveries cannot double-apply a payment.
type OrderStore interface {
	FetchByID(id uint) (*models.Order, error)
	MarkPaid(order *models.Order) error
	ReduceStock(order *models.Order) error
	AppendNote(order *models.Order, note string) error
}

// EventLog records each handled payment notification for auditing.
type EventLog interface {
	Record(event *models.PaymentEvent) error
}
