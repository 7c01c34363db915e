package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the closed set of payment transaction states.
type TransactionStatus string

const (
	// StatusProgress is the initial state: the provider accepted the start
	// request and the patron was redirected, no callback received yet.
	StatusProgress TransactionStatus = "PROGRESS"
	// StatusPaid means the provider confirmed the charge; fines are not yet
	// registered in the library system.
	StatusPaid TransactionStatus = "PAID"
	// StatusCancelled means the patron cancelled at the provider.
	StatusCancelled TransactionStatus = "CANCELLED"
	// StatusPaymentFailed means the provider reported the charge failed.
	StatusPaymentFailed TransactionStatus = "PAYMENT_FAILED"
	// StatusComplete means the charge succeeded and the fines were marked
	// paid in the library system.
	StatusComplete TransactionStatus = "COMPLETE"
	// StatusRegistrationFailed means the charge succeeded but marking the
	// fines paid failed; the reconciler retries these.
	StatusRegistrationFailed TransactionStatus = "REGISTRATION_FAILED"
	// StatusRegistrationExpired means registration retries ran out and an
	// operator has to step in.
	StatusRegistrationExpired TransactionStatus = "REGISTRATION_EXPIRED"
	// StatusFinesUpdated flags a paid transaction whose underlying fines no
	// longer match what was paid; set manually, resolved manually.
	StatusFinesUpdated TransactionStatus = "FINES_UPDATED"
	// StatusRegistrationResolved means an operator fixed the registration
	// by hand.
	StatusRegistrationResolved TransactionStatus = "REGISTRATION_RESOLVED"
)

// validTransitions is the total transition table. Any transition not listed
// here is rejected.
var validTransitions = map[TransactionStatus][]TransactionStatus{
	StatusProgress:            {StatusPaid, StatusCancelled, StatusPaymentFailed},
	StatusPaid:                {StatusComplete, StatusRegistrationFailed},
	StatusRegistrationFailed:  {StatusComplete, StatusRegistrationExpired, StatusFinesUpdated, StatusRegistrationResolved},
	StatusRegistrationExpired: {StatusFinesUpdated, StatusRegistrationResolved},
	StatusFinesUpdated:        {StatusRegistrationResolved},
}

// statusOrder fixes the iteration order over the transition table.
var statusOrder = []TransactionStatus{
	StatusProgress,
	StatusPaid,
	StatusRegistrationFailed,
	StatusRegistrationExpired,
	StatusFinesUpdated,
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionSources returns every status allowed to move into next, in
// declaration order. Status-guarded updates derive their WHERE clauses from
// it so the SQL guards and this table cannot drift apart.
func TransitionSources(next TransactionStatus) []TransactionStatus {
	var sources []TransactionStatus
	for _, from := range statusOrder {
		if from.CanTransitionTo(next) {
			sources = append(sources, from)
		}
	}
	return sources
}

// IsTerminal reports whether no further transitions are possible.
func (s TransactionStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// BlocksNewPayment reports whether a transaction in this state represents
// money taken but fines not yet registered, which must block any further
// payment attempt by the same patron regardless of age.
func (s TransactionStatus) BlocksNewPayment() bool {
	switch s {
	case StatusPaid, StatusRegistrationFailed, StatusRegistrationExpired, StatusFinesUpdated:
		return true
	}
	return false
}

// Transaction is one online fee payment attempt. Rows are never deleted;
// they are the audit record of the attempt.
type Transaction struct {
	ID             string            `json:"id" db:"id"`
	InternalNumber string            `json:"internal_number" db:"internal_number"`
	Driver         string            `json:"driver" db:"driver"`
	UserID         string            `json:"user_id" db:"user_id"`
	PatronID       string            `json:"patron_id" db:"patron_id"`
	Amount         int64             `json:"amount" db:"amount"`
	TransactionFee int64             `json:"transaction_fee" db:"transaction_fee"`
	Currency       string            `json:"currency" db:"currency"`
	Status         TransactionStatus `json:"status" db:"status"`
	ErrorMessage   *string           `json:"error_message,omitempty" db:"error_message"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	PaidAt         *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	ReportedAt     *time.Time        `json:"reported_at,omitempty" db:"reported_at"`
}

// TotalAmount is the charge presented to the provider: fines plus service fee.
func (t *Transaction) TotalAmount() int64 {
	return t.Amount + t.TransactionFee
}

// FeeLineItem is an immutable snapshot of one fine included in a transaction,
// written atomically with the transaction row.
type FeeLineItem struct {
	TransactionID string `json:"transaction_id" db:"transaction_id"`
	Amount        int64  `json:"amount" db:"amount"`
	Currency      string `json:"currency" db:"currency"`
	Description   string `json:"description" db:"description"`
	FineID        string `json:"fine_id" db:"fine_id"`
	FineType      string `json:"fine_type" db:"fine_type"`
}

// NewTransactionID generates an unguessable external correlation id derived
// from the patron id, high-resolution time and a random component.
func NewTransactionID(patronID string) string {
	seed := fmt.Sprintf("%s:%d:%s", patronID, time.Now().UnixNano(), uuid.New().String())
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:32]
}

// NewInternalNumber generates the receipt number reported to the library
// system alongside the correlation id. It shows up in ILS payment records
// read by staff, so it stays short and readable.
func NewInternalNumber() string {
	return fmt.Sprintf("PP-%d", time.Now().UnixNano()/int64(time.Microsecond))
}
