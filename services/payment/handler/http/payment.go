package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
)

// DisplayFinesRequest identifies the patron and session displaying fines
type DisplayFinesRequest struct {
	SessionID       string   `json:"session_id"`
	Patron          Patron   `json:"patron"`
	SelectedFineIDs []string `json:"selected_fine_ids,omitempty"`
}

// StartPaymentRequest starts a payment for the fines displayed earlier in
// the same session
type StartPaymentRequest struct {
	SessionID       string   `json:"session_id"`
	Patron          Patron   `json:"patron"`
	SelectedFineIDs []string `json:"selected_fine_ids,omitempty"`
	Provider        string   `json:"provider"`
}

// Patron is the request-scoped patron identity
type Patron struct {
	ID       string `json:"id"`
	Driver   string `json:"driver"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

func (p Patron) toModel() *models.Patron {
	return &models.Patron{
		ID:       p.ID,
		Driver:   p.Driver,
		Username: p.Username,
		Fullname: p.Fullname,
		Email:    p.Email,
	}
}

// DisplayFines returns the payable fines and captures the session fingerprint
func (h *PaymentHandler) DisplayFines(c echo.Context) error {
	var req DisplayFinesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.SessionID == "" || req.Patron.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id and patron.id are required"})
	}

	details, err := h.paymentUC.DisplayFines(c.Request().Context(), req.SessionID, req.Patron.toModel(), req.SelectedFineIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load fines"})
	}

	return c.JSON(http.StatusOK, details)
}

// StartPayment starts the payment flow and returns the redirect instruction
func (h *PaymentHandler) StartPayment(c echo.Context) error {
	var req StartPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.SessionID == "" || req.Patron.ID == "" || req.Provider == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id, patron.id and provider are required"})
	}

	redirect, err := h.paymentUC.StartPayment(c.Request().Context(), req.SessionID, req.Patron.toModel(), req.SelectedFineIDs, req.Provider)
	if err != nil {
		return h.startPaymentError(c, err)
	}

	return c.JSON(http.StatusOK, redirect)
}

// startPaymentError maps domain errors to user-facing responses. Business
// errors carry a specific message; gateway errors stay generic.
func (h *PaymentHandler) startPaymentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentInProgress):
		return c.JSON(http.StatusConflict, map[string]string{"error": "A payment is already in progress"})
	case errors.Is(err, payment.ErrUnresolvedPayment):
		return c.JSON(http.StatusConflict, map[string]string{"error": "A previous payment is awaiting resolution, please contact the library"})
	case errors.Is(err, payment.ErrFinesChanged), errors.Is(err, payment.ErrNoFingerprint):
		return c.JSON(http.StatusConflict, map[string]string{"error": "Your fines have changed, please review them and try again"})
	case errors.Is(err, payment.ErrNotPayable):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "These fines cannot be paid online"})
	case errors.Is(err, payment.ErrUnknownProvider):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown payment provider"})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Payment could not be started, please try again"})
	}
}

// HandleReturn processes the provider redirecting the patron back
func (h *PaymentHandler) HandleReturn(c echo.Context) error {
	return h.handleCallback(c)
}

// HandleNotify processes the provider's asynchronous server-to-server notify
func (h *PaymentHandler) HandleNotify(c echo.Context) error {
	return h.handleCallback(c)
}

// handleCallback acknowledges with 200 unless something internal broke:
// forged, duplicate and malformed callbacks are all acknowledged generically
// so the provider stops retrying, and none of them mutate state.
func (h *PaymentHandler) handleCallback(c echo.Context) error {
	provider := c.Param("provider")

	if err := c.Request().ParseForm(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid callback"})
	}
	params := c.Request().Form
	for key, values := range c.QueryParams() {
		for _, value := range values {
			params.Set(key, value)
		}
	}

	err := h.paymentUC.HandleCallback(c.Request().Context(), provider, params)
	if err != nil {
		if errors.Is(err, payment.ErrUnknownProvider) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown payment provider"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Callback processing failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "acknowledged"})
}

// GetTransaction returns the status of one transaction
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.paymentUC.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Transaction not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load transaction"})
	}

	return c.JSON(http.StatusOK, transaction)
}

// ResolveTransaction records an operator resolving a stuck transaction
func (h *PaymentHandler) ResolveTransaction(c echo.Context) error {
	err := h.paymentUC.ResolveTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.adminError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "resolved"})
}

// FlagFinesUpdated flags a transaction for manual reconciliation
func (h *PaymentHandler) FlagFinesUpdated(c echo.Context) error {
	err := h.paymentUC.FlagFinesUpdated(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.adminError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "flagged"})
}

func (h *PaymentHandler) adminError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payment.ErrTransactionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Transaction not found"})
	case errors.Is(err, payment.ErrStatusConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "Transaction is not in a state that allows this action"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Operation failed"})
	}
}
