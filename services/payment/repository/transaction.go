package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
)

// PostgresTransactionRepo implements payment.TransactionRepo on PostgreSQL.
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) payment.TransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

// statusGuard builds the IN clause restricting a guarded update to the
// source statuses the transition table allows for next. Placeholders are
// numbered from firstArg.
func statusGuard(next models.TransactionStatus, firstArg int) (string, []interface{}) {
	sources := models.TransitionSources(next)
	placeholders := make([]string, len(sources))
	args := make([]interface{}, len(sources))
	for i, s := range sources {
		placeholders[i] = fmt.Sprintf("$%d", firstArg+i)
		args[i] = s
	}
	return strings.Join(placeholders, ", "), args
}

// CreateWithLineItems persists the transaction and its fee line items in one
// database transaction. The line items are the immutable audit snapshot of
// what was paid.
func (r *PostgresTransactionRepo) CreateWithLineItems(ctx context.Context, t *models.Transaction, items []models.FeeLineItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO payment_transactions (
			id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
			currency, status, error_message, created_at, paid_at, reported_at
		) VALUES (
			:id, :internal_number, :driver, :user_id, :patron_id, :amount, :transaction_fee,
			:currency, :status, :error_message, :created_at, :paid_at, :reported_at
		)
	`, t)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for i := range items {
		items[i].TransactionID = t.ID
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO payment_fee_line_items (
				transaction_id, amount, currency, description, fine_id, fine_type
			) VALUES (
				:transaction_id, :amount, :currency, :description, :fine_id, :fine_type
			)
		`, items[i])
		if err != nil {
			return fmt.Errorf("failed to insert fee line item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by its external correlation id
func (r *PostgresTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `
		SELECT id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
		       currency, status, error_message, created_at, paid_at, reported_at
		FROM payment_transactions
		WHERE id = $1
	`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

// GetLineItems retrieves the fee snapshot for a transaction
func (r *PostgresTransactionRepo) GetLineItems(ctx context.Context, transactionID string) ([]models.FeeLineItem, error) {
	query := `
		SELECT transaction_id, amount, currency, description, fine_id, fine_type
		FROM payment_fee_line_items
		WHERE transaction_id = $1
	`

	var items []models.FeeLineItem
	if err := r.db.SelectContext(ctx, &items, query, transactionID); err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	return items, nil
}

// FindInProgress finds a non-stale PROGRESS transaction for the patron.
// Returns nil without error when none exists.
func (r *PostgresTransactionRepo) FindInProgress(ctx context.Context, patronID string, since time.Time) (*models.Transaction, error) {
	query := `
		SELECT id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
		       currency, status, error_message, created_at, paid_at, reported_at
		FROM payment_transactions
		WHERE patron_id = $1 AND status = $2 AND created_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, patronID, models.StatusProgress, since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find in-progress transaction: %w", err)
	}

	return &t, nil
}

// FindUnresolved finds a paid-but-unregistered transaction for the patron,
// regardless of age. Returns nil without error when none exists.
func (r *PostgresTransactionRepo) FindUnresolved(ctx context.Context, patronID string) (*models.Transaction, error) {
	query := `
		SELECT id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
		       currency, status, error_message, created_at, paid_at, reported_at
		FROM payment_transactions
		WHERE patron_id = $1 AND status IN ($2, $3, $4, $5)
		ORDER BY created_at DESC
		LIMIT 1
	`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, patronID,
		models.StatusPaid,
		models.StatusRegistrationFailed,
		models.StatusRegistrationExpired,
		models.StatusFinesUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unresolved transaction: %w", err)
	}

	return &t, nil
}

// MarkPaid transitions PROGRESS -> PAID and stamps the paid timestamp
func (r *PostgresTransactionRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	guard, guardArgs := statusGuard(models.StatusPaid, 4)
	args := append([]interface{}{models.StatusPaid, paidAt, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1, paid_at = $2
		WHERE id = $3 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	return r.checkAffected(result)
}

// MarkCancelled transitions PROGRESS -> CANCELLED
func (r *PostgresTransactionRepo) MarkCancelled(ctx context.Context, id string) error {
	guard, guardArgs := statusGuard(models.StatusCancelled, 3)
	args := append([]interface{}{models.StatusCancelled, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1
		WHERE id = $2 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark transaction cancelled: %w", err)
	}

	return r.checkAffected(result)
}

// MarkPaymentFailed transitions PROGRESS -> PAYMENT_FAILED with the provider message
func (r *PostgresTransactionRepo) MarkPaymentFailed(ctx context.Context, id, errorMessage string) error {
	guard, guardArgs := statusGuard(models.StatusPaymentFailed, 4)
	args := append([]interface{}{models.StatusPaymentFailed, errorMessage, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1, error_message = $2
		WHERE id = $3 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}

	return r.checkAffected(result)
}

// MarkComplete transitions PAID or REGISTRATION_FAILED -> COMPLETE and clears
// the error message
func (r *PostgresTransactionRepo) MarkComplete(ctx context.Context, id string) error {
	guard, guardArgs := statusGuard(models.StatusComplete, 3)
	args := append([]interface{}{models.StatusComplete, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1, error_message = NULL
		WHERE id = $2 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark transaction complete: %w", err)
	}

	return r.checkAffected(result)
}

// MarkRegistrationFailed records a failed fee registration attempt after a
// successful charge. Valid from PAID (first attempt) and from
// REGISTRATION_FAILED (a further retry refreshing the error message, which
// leaves the status itself unchanged).
func (r *PostgresTransactionRepo) MarkRegistrationFailed(ctx context.Context, id, errorMessage string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = $1, error_message = $2
		WHERE id = $3 AND status IN ($4, $5)
	`, models.StatusRegistrationFailed, errorMessage, id, models.StatusPaid, models.StatusRegistrationFailed)
	if err != nil {
		return fmt.Errorf("failed to mark registration failed: %w", err)
	}

	return r.checkAffected(result)
}

// MarkRegistrationExpired escalates a transaction whose registration retries
// ran out. Only REGISTRATION_FAILED may expire; a transaction still in PAID
// has not had a registration attempt recorded yet.
func (r *PostgresTransactionRepo) MarkRegistrationExpired(ctx context.Context, id string) error {
	guard, guardArgs := statusGuard(models.StatusRegistrationExpired, 3)
	args := append([]interface{}{models.StatusRegistrationExpired, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1
		WHERE id = $2 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark registration expired: %w", err)
	}

	return r.checkAffected(result)
}

// MarkFinesUpdated flags a transaction for manual reconciliation
func (r *PostgresTransactionRepo) MarkFinesUpdated(ctx context.Context, id string) error {
	guard, guardArgs := statusGuard(models.StatusFinesUpdated, 3)
	args := append([]interface{}{models.StatusFinesUpdated, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1
		WHERE id = $2 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark fines updated: %w", err)
	}

	return r.checkAffected(result)
}

// MarkRegistrationResolved records an operator fixing the registration by hand
func (r *PostgresTransactionRepo) MarkRegistrationResolved(ctx context.Context, id string) error {
	guard, guardArgs := statusGuard(models.StatusRegistrationResolved, 3)
	args := append([]interface{}{models.StatusRegistrationResolved, id}, guardArgs...)

	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE payment_transactions
		SET status = $1
		WHERE id = $2 AND status IN (%s)
	`, guard), args...)
	if err != nil {
		return fmt.Errorf("failed to mark registration resolved: %w", err)
	}

	return r.checkAffected(result)
}

// MarkReported stamps the operator-report timestamp without changing status
func (r *PostgresTransactionRepo) MarkReported(ctx context.Context, id string, reportedAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payment_transactions
		SET reported_at = $1
		WHERE id = $2
	`, reportedAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark transaction reported: %w", err)
	}

	return r.checkAffected(result)
}

// ListRegistrationRetry selects transactions whose fee registration should be
// retried: paid or failed registration, paid long enough ago to not race the
// synchronous attempt.
func (r *PostgresTransactionRepo) ListRegistrationRetry(ctx context.Context, paidBefore time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
		       currency, status, error_message, created_at, paid_at, reported_at
		FROM payment_transactions
		WHERE status IN ($1, $2) AND paid_at < $3
		ORDER BY paid_at ASC
	`

	var list []models.Transaction
	err := r.db.SelectContext(ctx, &list, query, models.StatusPaid, models.StatusRegistrationFailed, paidBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to list registration retries: %w", err)
	}

	return list, nil
}

// ListUnreported selects escalated transactions that were never reported or
// whose last report is older than the reporting interval.
func (r *PostgresTransactionRepo) ListUnreported(ctx context.Context, reportedBefore time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, internal_number, driver, user_id, patron_id, amount, transaction_fee,
		       currency, status, error_message, created_at, paid_at, reported_at
		FROM payment_transactions
		WHERE status IN ($1, $2) AND (reported_at IS NULL OR reported_at < $3)
		ORDER BY created_at ASC
	`

	var list []models.Transaction
	err := r.db.SelectContext(ctx, &list, query, models.StatusRegistrationExpired, models.StatusFinesUpdated, reportedBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to list unreported transactions: %w", err)
	}

	return list, nil
}

// checkAffected maps a zero-row guarded update to ErrStatusConflict
func (r *PostgresTransactionRepo) checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return payment.ErrStatusConflict
	}
	return nil
}
