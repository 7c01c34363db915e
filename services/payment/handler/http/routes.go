package http

import (
	"github.com/labstack/echo/v4"
	"github.com/okvist/patronpay/services/payment"
)

// PaymentHandler handles HTTP requests for the payment flow
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// RegisterRoutes registers the payment routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	// Patron-facing flow
	g.POST("/fines/display", h.DisplayFines)
	g.POST("/payments", h.StartPayment)
	g.GET("/payments/:id", h.GetTransaction)

	// Provider callbacks: return redirects the patron, notify is the
	// provider's server-to-server delivery. Both are idempotent.
	g.GET("/payments/callback/:provider", h.HandleReturn)
	g.POST("/payments/notify/:provider", h.HandleNotify)

	// Operator actions
	g.POST("/admin/transactions/:id/resolve", h.ResolveTransaction)
	g.POST("/admin/transactions/:id/flag-fines-updated", h.FlagFinesUpdated)
}
