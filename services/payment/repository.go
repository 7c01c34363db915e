package payment

import (
	"context"
	"time"

	"github.com/okvist/patronpay/internal/pkg/models"
)

// TransactionRepo is the durable record of every payment attempt. All status
// transitions are guarded by the current status in the WHERE clause; a
// transition that matches no row returns ErrStatusConflict.
type TransactionRepo interface {
	CreateWithLineItems(ctx context.Context, tx *models.Transaction, items []models.FeeLineItem) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	GetLineItems(ctx context.Context, transactionID string) ([]models.FeeLineItem, error)

	FindInProgress(ctx context.Context, patronID string, since time.Time) (*models.Transaction, error)
	FindUnresolved(ctx context.Context, patronID string) (*models.Transaction, error)

	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
	MarkCancelled(ctx context.Context, id string) error
	MarkPaymentFailed(ctx context.Context, id, errorMessage string) error
	MarkComplete(ctx context.Context, id string) error
	MarkRegistrationFailed(ctx context.Context, id, errorMessage string) error
	MarkRegistrationExpired(ctx context.Context, id string) error
	MarkFinesUpdated(ctx context.Context, id string) error
	MarkRegistrationResolved(ctx context.Context, id string) error
	MarkReported(ctx context.Context, id string, reportedAt time.Time) error

	ListRegistrationRetry(ctx context.Context, paidBefore time.Time) ([]models.Transaction, error)
	ListUnreported(ctx context.Context, reportedBefore time.Time) ([]models.Transaction, error)
}

// FingerprintStore keeps the session-scoped payment fingerprint captured when
// fines were displayed.
type FingerprintStore interface {
	Save(ctx context.Context, sessionID string, fp *models.PaymentFingerprint) error
	Get(ctx context.Context, sessionID string) (*models.PaymentFingerprint, error)
	Delete(ctx context.Context, sessionID string) error
}
