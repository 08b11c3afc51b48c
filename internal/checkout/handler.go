package checkout

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thinknumbers/order-scanner-delight/internal/cart"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Place order (mock payment)
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	sid := cart.SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	var req struct {
		TableNumber string `json:"table_number"`
		Card        Card   `json:"card"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), sid, req.TableNumber, req.Card)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "payment cancelled"})
		default:
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// --------------------------------------------------
// Totals preview for the payment form
// --------------------------------------------------
func (h *Handler) GetTotals(c *gin.Context) {
	sid := cart.SessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	subtotal, tax, total, err := h.service.Totals(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	})
}

// --------------------------------------------------
// Admin: list placed orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
