package payment

import (
	"context"
	"net/url"

	"github.com/okvist/patronpay/internal/pkg/models"
)

// CallbackOutcome is the provider's verdict on a payment, mapped from
// provider-specific status codes after signature validation.
type CallbackOutcome string

const (
	OutcomeSuccess   CallbackOutcome = "success"
	OutcomeCancelled CallbackOutcome = "cancelled"
	OutcomeFailed    CallbackOutcome = "failed"
)

// PayerInfo carries the patron details a provider wants on the invoice.
type PayerInfo struct {
	FirstName string
	LastName  string
	Email     string
}

// StartRequest is the provider-agnostic input to start a payment.
type StartRequest struct {
	TransactionID  string
	ReturnURL      string
	NotifyURL      string
	Payer          PayerInfo
	LineItems      []models.FeeLineItem
	TransactionFee int64
	Currency       string
}

// RedirectInstruction tells the web tier how to send the patron to the
// provider: a plain redirect or an auto-submitting form.
type RedirectInstruction struct {
	URL    string            `json:"url"`
	Method string            `json:"method"`
	Fields map[string]string `json:"fields,omitempty"`
}

// CallbackResult is the validated content of a provider callback.
type CallbackResult struct {
	Outcome           CallbackOutcome
	TransactionID     string
	ProviderReference string
	Message           string
}

// GatewayAdapter is implemented once per payment provider. StartPayment must
// not touch the transaction store; persisting is the orchestrator's job after
// the provider accepted the request. ValidateCallback must verify the
// signature before trusting any callback field.
type GatewayAdapter interface {
	Name() string
	StartPayment(ctx context.Context, req *StartRequest) (*RedirectInstruction, error)
	// ExtractTransactionID pulls the correlation id out of callback params
	// without validating anything else. Used for the idempotency check
	// before signature verification.
	ExtractTransactionID(params url.Values) string
	ValidateCallback(params url.Values) (*CallbackResult, error)
}

// ILSClient is the library-management system collaborator. Registration
// carries both the external correlation id and the internal receipt number
// so either one can be looked up from an ILS payment record.
type ILSClient interface {
	GetPayableFinesDetails(ctx context.Context, patron *models.Patron, selectedFineIDs []string) (*models.PayableFines, error)
	MarkFeesAsPaid(ctx context.Context, patron *models.Patron, amount int64, transactionID, internalNumber string, fineIDs []string) (bool, error)
}

// Reporter is the operator-facing sink for paid-but-unregistered
// transactions.
type Reporter interface {
	ReportUnresolved(report *models.UnresolvedReport) error
}
