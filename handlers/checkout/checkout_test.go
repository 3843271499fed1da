package checkout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/osenco/osen-wc-tingg/models"
	"github.com/osenco/osen-wc-tingg/tingg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderStore struct {
	order *models.Order
}

func (s *fakeOrderStore) FetchByID(id uint) (*models.Order, error) {
	if s.order == nil || s.order.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *fakeOrderStore) MarkPaid(order *models.Order) error    { return nil }
func (s *fakeOrderStore) ReduceStock(order *models.Order) error { return nil }
func (s *fakeOrderStore) AppendNote(order *models.Order, note string) error {
	return nil
}

func gatewayConfig() tingg.Config {
	return tingg.Config{
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

func kenyanOrder() *models.Order {
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

func newTestRouter(cfg tingg.Config, store *fakeOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	builder := tingg.NewBuilder(cfg, tingg.DefaultCountries())
	builder.Now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	}
	h := NewHandler(builder, store)

	r := gin.New()
	r.GET("/checkout/options", h.Options)
	r.POST("/orders/:id/checkout", h.Create)
	r.GET("/orders/:id/confirmation", h.Confirmation)
	return r
}

func post(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckout(t *testing.T) {
	r := newTestRouter(gatewayConfig(), &fakeOrderStore{order: kenyanOrder()})

	w := post(r, "/orders/42/checkout")

	require.Equal(t, http.StatusOK, w.Code)

	var redirect tingg.RedirectInstruction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &redirect))
	assert.Equal(t, "success", redirect.Result)
	assert.True(t, strings.HasPrefix(redirect.Redirect, "https://beep2.cellulant.com:9212/checkout/v2/express/?params="))
	assert.Contains(t, redirect.Redirect, "&accessKey=test-access-key")
	assert.Contains(t, redirect.Redirect, "&countryCode=KE")
}

func TestCreateCheckoutUnsupportedCountry(t *testing.T) {
	order := kenyanOrder()
	order.BillingCountry = "FR"
	r := newTestRouter(gatewayConfig(), &fakeOrderStore{order: order})

	w := post(r, "/orders/42/checkout")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not supported")
}

func TestCreateCheckoutGatewayDisabled(t *testing.T) {
	cfg := gatewayConfig()
	cfg.Enabled = false
	r := newTestRouter(cfg, &fakeOrderStore{order: kenyanOrder()})

	w := post(r, "/orders/42/checkout")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateCheckoutUnknownOrder(t *testing.T) {
	r := newTestRouter(gatewayConfig(), &fakeOrderStore{})

	w := post(r, "/orders/42/checkout")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCheckoutMisconfiguredGateway(t *testing.T) {
	cfg := gatewayConfig()
	cfg.SecretKey = ""
	r := newTestRouter(cfg, &fakeOrderStore{order: kenyanOrder()})

	w := post(r, "/orders/42/checkout")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unable to initiate checkout", body["error"])
}

func TestOptions(t *testing.T) {
	r := newTestRouter(gatewayConfig(), &fakeOrderStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/options", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "Tingg", body["title"])
}

func TestConfirmation(t *testing.T) {
	order := kenyanOrder()
	order.Paid = true
	order.Status = "completed"
	r := newTestRouter(gatewayConfig(), &fakeOrderStore{order: order})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/42/confirmation", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["order_id"])
	assert.Equal(t, true, body["paid"])
	assert.Equal(t, "completed", body["status"])
}
