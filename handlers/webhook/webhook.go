package webhook

import (
	"fmt"
	"log"
	"net/http"

	"github.com/osenco/osen-wc-tingg/models"
	"github.com/osenco/osen-wc-tingg/tingg"

	"github.com/gin-gonic/gin"
)

// Notification is the payment status callback posted by the gateway.
// The account number carries the order id.
type Notification struct {
	AccountNumber         uint   `json:"accountNumber" binding:"required"`
	RequestStatusCode     int    `json:"requestStatusCode" binding:"required"`
	CheckoutRequestID     string `json:"checkoutRequestID" binding:"required"`
	MerchantTransactionID string `json:"merchantTransactionID" binding:"required"`
}

// Acknowledgement is the response body that tells the gateway a
// notification was processed. Identifiers are echoed back so the gateway
// can correlate it.
type Acknowledgement struct {
	StatusCode            int    `json:"statusCode"`
	StatusDescription     string `json:"statusDescription"`
	ReceiptNumber         uint   `json:"receiptNumber"`
	CheckoutRequestID     string `json:"checkoutRequestID"`
	MerchantTransactionID string `json:"merchantTransactionID"`
}

// Notifier is told when an order has been paid in full.
type Notifier interface {
	PaymentReceived(order *models.Order)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(order *models.Order)

func (f NotifierFunc) PaymentReceived(order *models.Order) { f(order) }

type Handler struct {
	Orders   tingg.OrderStore
	Events   tingg.EventLog
	Notifier Notifier
}

func NewHandler(orders tingg.OrderStore, events tingg.EventLog, notifier Notifier) *Handler {
	return &Handler{
		Orders:   orders,
		Events:   events,
		Notifier: notifier,
	}
}

// Handle processes a payment notification. Partial payments reduce stock
// and annotate the order; full payments additionally mark it paid. Either
// way the gateway gets an acknowledgement so it stops re-delivering. Any
// other status code is dropped without an acknowledgement; a malformed body
// fails closed with no order mutation.
func (h *Handler) Handle(c *gin.Context) {
	var notification Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		log.Printf("Rejected malformed payment notification: %v", err)
		c.Status(http.StatusBadRequest)
		return
	}

	status := tingg.RequestStatus(notification.RequestStatusCode)
	if !status.Handled() {
		// Not an error: the integration only reacts to partial and full
		// payments. Logged so unhandled codes are visible in operations.
		log.Printf("Ignoring payment notification with status code %d for order #%d",
			notification.RequestStatusCode, notification.AccountNumber)
		c.Status(http.StatusOK)
		return
	}

	order, err := h.Orders.FetchByID(notification.AccountNumber)
	if err != nil {
		log.Printf("Payment notification for unknown order #%d: %v", notification.AccountNumber, err)
		c.Status(http.StatusNotFound)
		return
	}

	if status == tingg.StatusPaidInFull {
		if err := h.Orders.MarkPaid(order); err != nil {
			log.Printf("Failed to mark order #%d paid: %v", order.ID, err)
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	if err := h.Orders.ReduceStock(order); err != nil {
		log.Printf("Failed to reduce stock for order #%d: %v", order.ID, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	var note string
	if status == tingg.StatusPartiallyPaid {
		note = fmt.Sprintf("Order #%d has been partially paid", notification.AccountNumber)
	}
	if status == tingg.StatusPaidInFull {
		note = fmt.Sprintf("Order #%d has been paid in full", notification.AccountNumber)
	}

	if err := h.Orders.AppendNote(order, note); err != nil {
		log.Printf("Failed to add note to order #%d: %v", order.ID, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	h.recordEvent(notification)

	if status == tingg.StatusPaidInFull && h.Notifier != nil {
		h.Notifier.PaymentReceived(order)
	}

	c.JSON(http.StatusOK, Acknowledgement{
		StatusCode:            int(tingg.StatusPaymentAccepted),
		StatusDescription:     "Payment accepted",
		ReceiptNumber:         notification.AccountNumber,
		CheckoutRequestID:     notification.CheckoutRequestID,
		MerchantTransactionID: notification.MerchantTransactionID,
	})
}

// recordEvent keeps the audit trail; failures are logged, never fatal to
// the acknowledgement.
func (h *Handler) recordEvent(notification Notification) {
	if h.Events == nil {
		return
	}

	event := models.PaymentEvent{
		OrderID:               notification.AccountNumber,
		StatusCode:            notification.RequestStatusCode,
		CheckoutRequestID:     notification.CheckoutRequestID,
		MerchantTransactionID: notification.MerchantTransactionID,
	}
	if err := h.Events.Record(&event); err != nil {
		log.Printf("Failed to record payment event for order #%d: %v", notification.AccountNumber, err)
	}
}
