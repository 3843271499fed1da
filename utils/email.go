package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/osenco/osen-wc-tingg/models"

	"gopkg.in/gomail.v2"
)

// SendPaymentReceivedEmail notifies the customer that their order has been
// paid in full. Failures are logged and never block webhook processing.
func SendPaymentReceivedEmail(order *models.Order) {
	if order.BillingEmail == "" {
		log.Printf("Order #%d has no billing email, skipping payment confirmation", order.ID)
		return
	}

	// Create a new email message
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", order.BillingEmail)
	m.SetHeader("Subject", fmt.Sprintf("Payment received for order #%d", order.ID))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nWe have received your payment of %.2f for order #%d. Thank you for shopping with us.",
		order.BillingFirstName, order.Total, order.ID,
	))

	// Dialer configuration for the SMTP server
	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	// Sending the email
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send payment confirmation to %s: %v", order.BillingEmail, err)
		return
	}
}
