package payment

import "errors"

// Business errors surfaced to the patron with a specific message. No
// transaction is created when these occur.
var (
	ErrPaymentInProgress = errors.New("payment already in progress")
	ErrUnresolvedPayment = errors.New("prior payment unresolved")
	ErrFinesChanged      = errors.New("fines changed since display")
	ErrNoFingerprint     = errors.New("no stored fingerprint for session")
	ErrNotPayable        = errors.New("fines are not payable online")
)

// Infrastructure and validation errors.
var (
	// ErrStatusConflict means a status-guarded update matched no row: the
	// transaction moved on concurrently, so the caller's transition is a
	// duplicate and must not be re-applied.
	ErrStatusConflict       = errors.New("transaction status changed concurrently")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidSignature     = errors.New("callback signature mismatch")
	ErrUnknownProvider      = errors.New("unknown payment provider")
	ErrRegistrationRejected = errors.New("library system rejected fee registration")
)
