package tingg

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/osenco/osen-wc-tingg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() Config {
	return Config{
		Enabled:       true,
		Sandbox:       true,
		Title:         "Tingg",
		Description:   "Pay with banks, mobile money, and cards throughout Africa.",
		PaymentPeriod: 1440,
		ServiceCode:   "TESTSVC",
		IVKey:         "iv-seed",
		SecretKey:     "secret",
		AccessKey:     "test-access-key",
		ShopPageURL:   "https://shop.example.com/shop",
		PublicBaseURL: "https://shop.example.com",
	}
}

func testOrder() *models.Order {
	return &models.Order{
		Model:            gorm.Model{ID: 42},
		Status:           "pending",
		Total:            1000,
		BillingCountry:   "KE",
		BillingPhone:     "254700000000",
		BillingEmail:     "jane@example.com",
		BillingFirstName: "Jane",
		BillingLastName:  "Doe",
		Items: []models.OrderItem{
			{ProductID: 7, ProductName: "Widget", Quantity: 2},
		},
	}
}

func testBuilder() *Builder {
	b := NewBuilder(testConfig(), DefaultCountries())
	b.Now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	}
	return b
}

func TestBuildPayload(t *testing.T) {
	payload, err := testBuilder().buildPayload(testOrder())
	require.NoError(t, err)

	assert.Equal(t, uint(42), payload.AccountNumber)
	assert.Equal(t, uint(42), payload.MerchantTransactionID)
	assert.Equal(t, "2 x Widget", payload.RequestDescription)
	assert.Equal(t, "KES", payload.CurrencyCode)
	assert.Equal(t, float64(1000), payload.RequestAmount)
	assert.Equal(t, "254700000000", payload.MSISDN)
	assert.Equal(t, "jane@example.com", payload.CustomerEmail)
	assert.Equal(t, "Jane", payload.CustomerFirstName)
	assert.Equal(t, "Doe", payload.CustomerLastName)
	assert.Equal(t, "https://shop.example.com/shop", payload.FailRedirectURL)
	assert.Equal(t, "https://shop.example.com/orders/42/confirmation", payload.SuccessRedirectURL)
	assert.Equal(t, "https://shop.example.com/tingg/payment-webhook", payload.PaymentWebhookURL)
}

func TestBuildPayloadDueDate(t *testing.T) {
	// payment_period=1440 minutes pushes the due date exactly one day out.
	payload, err := testBuilder().buildPayload(testOrder())
	require.NoError(t, err)

	assert.Equal(t, "2024-03-02 12:00:00", payload.DueDate)
}

func TestBuildPayloadDescription(t *testing.T) {
	builder := testBuilder()

	order := testOrder()
	order.Items = append(order.Items, models.OrderItem{ProductID: 8, ProductName: "Gadget", Quantity: 1})
	payload, err := builder.buildPayload(order)
	require.NoError(t, err)
	assert.Equal(t, "2 x Widget, 1 x Gadget", payload.RequestDescription)

	order.Items = nil
	payload, err = builder.buildPayload(order)
	require.NoError(t, err)
	assert.Equal(t, "", payload.RequestDescription)
}

func TestBuildPayloadUnmappedCountry(t *testing.T) {
	order := testOrder()
	order.BillingCountry = "FR"

	_, err := testBuilder().buildPayload(order)
	require.Error(t, err)
	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestValidateBillingCountry(t *testing.T) {
	builder := testBuilder()

	require.NoError(t, builder.ValidateBillingCountry("KE"))

	err := builder.ValidateBillingCountry("FR")
	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "not supported")
}

func TestBuildCheckoutRequest(t *testing.T) {
	builder := testBuilder()

	redirect, err := builder.BuildCheckoutRequest(testOrder())
	require.NoError(t, err)

	assert.Equal(t, "success", redirect.Result)
	require.True(t, strings.HasPrefix(redirect.Redirect, "https://beep2.cellulant.com:9212/checkout/v2/express/?params="))
	assert.Contains(t, redirect.Redirect, "&accessKey=test-access-key")
	assert.True(t, strings.HasSuffix(redirect.Redirect, "&countryCode=KE"))

	// The params blob must decrypt back to the payload the builder assembled.
	params := redirect.Redirect
	params = params[strings.Index(params, "params=")+len("params="):]
	params = params[:strings.Index(params, "&accessKey=")]

	plaintext, err := DecryptCheckoutRequest("iv-seed", "secret", params)
	require.NoError(t, err)

	var payload CheckoutPayload
	require.NoError(t, json.Unmarshal(plaintext, &payload))
	assert.Equal(t, uint(42), payload.AccountNumber)
	assert.Equal(t, "KES", payload.CurrencyCode)
	assert.Equal(t, "2 x Widget", payload.RequestDescription)
}

func TestBuildCheckoutRequestLiveURL(t *testing.T) {
	cfg := testConfig()
	cfg.Sandbox = false
	builder := NewBuilder(cfg, DefaultCountries())

	redirect, err := builder.BuildCheckoutRequest(testOrder())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(redirect.Redirect, "https://mula.africa/v2/express/?params="))
}

func TestBuildCheckoutRequestMissingCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey = ""
	builder := NewBuilder(cfg, DefaultCountries())

	_, err := builder.BuildCheckoutRequest(testOrder())
	require.Error(t, err)
	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
