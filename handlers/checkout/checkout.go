package checkout

import (
	"log"
	"net/http"
	"strconv"

	"github.com/osenco/osen-wc-tingg/tingg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Builder *tingg.Builder
	Orders  tingg.OrderStore
}

func NewHandler(builder *tingg.Builder, orders tingg.OrderStore) *Handler {
	return &Handler{
		Builder: builder,
		Orders:  orders,
	}
}

// Options exposes the gateway settings the storefront shows at checkout.
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"enabled":     h.Builder.Config.Enabled,
		"sandbox":     h.Builder.Config.Sandbox,
		"title":       h.Builder.Config.Title,
		"description": h.Builder.Config.Description,
	})
}

// Create initiates a checkout for an order and returns the redirect
// instruction pointing at the Tingg express checkout. The order itself is
// left untouched until the payment webhook arrives.
func (h *Handler) Create(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if !h.Builder.Config.Enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment gateway is disabled"})
		return
	}

	order, err := h.Orders.FetchByID(uint(orderID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Validation runs before any payload is built; it is the only gate
	// against orders billed to an unsupported country.
	if err := h.Builder.ValidateBillingCountry(order.BillingCountry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redirect, err := h.Builder.BuildCheckoutRequest(order)
	if err != nil {
		// Configuration and crypto failures abort the attempt outright;
		// the shopper only sees a generic failure.
		log.Printf("Checkout for order #%d aborted: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to initiate checkout"})
		return
	}

	c.JSON(http.StatusOK, redirect)
}

// Confirmation is the landing page the gateway redirects paid shoppers to.
func (h *Handler) Confirmation(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.Orders.FetchByID(uint(orderID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
		"paid":     order.Paid,
		"total":    order.Total,
	})
}
