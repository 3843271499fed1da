package tingg

import (
	"fmt"
	"strings"
	"time"

	"github.com/osenco/osen-wc-tingg/models"
)

// Builder assembles orders into encrypted checkout requests.
type Builder struct {
	Config    Config
	Countries CountryTable

	// Now is the clock used for the due date. Tests pin it.
	Now func() time.Time
}

func NewBuilder(cfg Config, countries CountryTable) *Builder {
	return &Builder{
		Config:    cfg,
		Countries: countries,
		Now:       time.Now,
	}
}

// ValidateBillingCountry is the precondition gate run before any payload is
// built. It rejects orders billed to a country the gateway does not support
// with a message safe to show to the shopper.
func (b *Builder) ValidateBillingCountry(countryCode string) error {
	if !b.Countries.Supports(countryCode) {
		return &ValidationError{
			Message: "Billing Country is not supported. Please contact support for further assistance",
		}
	}
	return nil
}

// BuildCheckoutRequest assembles the order into a checkout payload, encrypts
// it, and returns the redirect instruction for the storefront. The order
// itself is not touched; it stays in its pre-payment state until the
// gateway's webhook arrives.
func (b *Builder) BuildCheckoutRequest(order *models.Order) (*RedirectInstruction, error) {
	if err := b.Config.Validate(); err != nil {
		return nil, err
	}

	payload, err := b.buildPayload(order)
	if err != nil {
		return nil, err
	}

	params, err := EncryptCheckoutRequest(b.Config.IVKey, b.Config.SecretKey, payload)
	if err != nil {
		return nil, err
	}

	// The gateway's reference integration composes the query string with a
	// plain sprintf and no escaping; kept as-is for compatibility.
	checkoutPaymentURL := fmt.Sprintf("%s?params=%s&accessKey=%s&countryCode=%s",
		b.Config.CheckoutURL(),
		params,
		b.Config.AccessKey,
		order.BillingCountry,
	)

	return &RedirectInstruction{Result: "success", Redirect: checkoutPaymentURL}, nil
}

func (b *Builder) buildPayload(order *models.Order) (CheckoutPayload, error) {
	country, ok := b.Countries.ByCode(order.BillingCountry)
	if !ok {
		// Validation should have caught this before the builder runs.
		return CheckoutPayload{}, &ConfigurationError{
			Reason: fmt.Sprintf("no currency mapping for billing country %q", order.BillingCountry),
		}
	}

	dueDate := b.Now().Add(time.Duration(b.Config.PaymentPeriod) * time.Minute)
	base := strings.TrimRight(b.Config.PublicBaseURL, "/")

	return CheckoutPayload{
		AccessKey:             b.Config.AccessKey,
		AccountNumber:         order.ID,
		ServiceCode:           b.Config.ServiceCode,
		RequestAmount:         order.Total,
		MSISDN:                order.BillingPhone,
		MerchantTransactionID: order.ID,
		CustomerEmail:         order.BillingEmail,
		CustomerLastName:      order.BillingLastName,
		CustomerFirstName:     order.BillingFirstName,
		RequestDescription:    orderDescription(order.Items),
		CurrencyCode:          country.CurrencyCode,
		DueDate:               dueDate.Format("2006-01-02 15:04:05"),
		FailRedirectURL:       b.Config.ShopPageURL,
		SuccessRedirectURL:    fmt.Sprintf("%s/orders/%d/confirmation", base, order.ID),
		PaymentWebhookURL:     base + "/tingg/payment-webhook",
	}, nil
}

// orderDescription concatenates "<quantity> x <product name>, " for every
// line item and trims the trailing separator. An order with no items gets
// an empty description.
func orderDescription(items []models.OrderItem) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%d x %s, ", item.Quantity, item.ProductName)
	}
	return strings.TrimRight(strings.TrimSpace(sb.String()), ",")
}
