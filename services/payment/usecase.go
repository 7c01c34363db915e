package payment

import (
	"context"
	"net/url"

	"github.com/okvist/patronpay/internal/pkg/models"
)

// PermitResult is the concurrency guard's answer.
type PermitResult struct {
	Permitted bool
	Reason    string
}

// PaymentUC is the payment orchestrator facade.
type PaymentUC interface {
	// DisplayFines returns the authoritative payable fines for the patron
	// and captures the session fingerprint used to detect changes before
	// payment is submitted.
	DisplayFines(ctx context.Context, sessionID string, patron *models.Patron, selectedFineIDs []string) (*models.PayableFines, error)

	// StartPayment runs the guard checks, asks the provider to start the
	// payment, persists the transaction and returns the redirect.
	StartPayment(ctx context.Context, sessionID string, patron *models.Patron, selectedFineIDs []string, provider string) (*RedirectInstruction, error)

	// HandleCallback processes a provider return/notify request. It is
	// idempotent: duplicates and forged callbacks produce no state change.
	HandleCallback(ctx context.Context, provider string, params url.Values) error

	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// ResolveTransaction and FlagFinesUpdated are operator actions.
	ResolveTransaction(ctx context.Context, id string) error
	FlagFinesUpdated(ctx context.Context, id string) error
}
