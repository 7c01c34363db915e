package usecase

import (
	"context"
	"time"

	"github.com/okvist/patronpay/internal/pkg/logger"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/internal/pkg/retry"
	"github.com/okvist/patronpay/services/payment"
)

// Reconciler drains transactions the synchronous flow could not finish. It
// retries fee registration for charged-but-unregistered transactions,
// escalates the ones that stay failed past the expiry window, and reports
// every transaction waiting on an operator.
type Reconciler struct {
	cfg      *models.Config
	repo     payment.TransactionRepo
	ils      payment.ILSClient
	reporter payment.Reporter
	retrier  *retry.Retrier
	log      *logger.ZapLogger
}

// NewReconciler creates a new reconciler
func NewReconciler(
	cfg *models.Config,
	repo payment.TransactionRepo,
	ils payment.ILSClient,
	reporter payment.Reporter,
	log *logger.ZapLogger,
) *Reconciler {
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = 2
	retryConfig.BaseDelay = 500 * time.Millisecond

	return &Reconciler{
		cfg:      cfg,
		repo:     repo,
		ils:      ils,
		reporter: reporter,
		retrier:  retry.New(retryConfig, log),
		log:      log,
	}
}

// Run executes reconciliation passes on a fixed interval until the context
// is cancelled. One pass runs immediately on start.
func (r *Reconciler) Run(ctx context.Context) {
	interval := time.Duration(r.cfg.Payment.ReconcileInterval) * time.Second

	r.runOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Reconciler stopping")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Reconciler) runOnce(ctx context.Context) {
	if err := r.RetryFailedRegistrations(ctx); err != nil {
		r.log.Error("Registration retry pass failed", logger.Err(err))
	}
	if err := r.ReportUnresolved(ctx); err != nil {
		r.log.Error("Unresolved report pass failed", logger.Err(err))
	}
}

// RetryFailedRegistrations retries fee registration for every transaction
// that was charged but never registered. Transactions still failing past the
// registration expiry window stop being retried and are escalated for
// operator attention. Recently paid transactions are left alone so the
// synchronous callback path can finish first.
func (r *Reconciler) RetryFailedRegistrations(ctx context.Context) error {
	minPaidAge := time.Duration(r.cfg.Payment.MinPaidAgeSeconds) * time.Second
	paidBefore := time.Now().Add(-minPaidAge)

	transactions, err := r.repo.ListRegistrationRetry(ctx, paidBefore)
	if err != nil {
		return err
	}

	expiry := time.Duration(r.cfg.Payment.RegistrationExpiry) * time.Second
	for i := range transactions {
		transaction := &transactions[i]

		// Only REGISTRATION_FAILED may expire. A transaction still in PAID
		// past the window gets a registration attempt first; its failure
		// moves it to REGISTRATION_FAILED and the next pass escalates it.
		expired := transaction.PaidAt != nil && time.Since(*transaction.PaidAt) > expiry
		if expired && transaction.Status.CanTransitionTo(models.StatusRegistrationExpired) {
			r.escalate(ctx, transaction)
			continue
		}

		r.retryRegistration(ctx, transaction)
	}

	return nil
}

func (r *Reconciler) retryRegistration(ctx context.Context, transaction *models.Transaction) {
	items, err := r.repo.GetLineItems(ctx, transaction.ID)
	if err != nil {
		r.log.Error("Failed to load line items",
			logger.Err(err),
			logger.String("transaction_id", transaction.ID))
		return
	}

	fineIDs := make([]string, 0, len(items))
	for _, item := range items {
		fineIDs = append(fineIDs, item.FineID)
	}

	patron := &models.Patron{
		ID:       transaction.PatronID,
		Driver:   transaction.Driver,
		Username: transaction.UserID,
	}

	err = r.retrier.Execute(ctx, func(ctx context.Context) error {
		ok, err := r.ils.MarkFeesAsPaid(ctx, patron, transaction.Amount, transaction.ID, transaction.InternalNumber, fineIDs)
		if err != nil {
			return err
		}
		if !ok {
			return payment.ErrRegistrationRejected
		}
		return nil
	})
	if err != nil {
		r.log.Warn("Registration retry failed",
			logger.Err(err),
			logger.String("transaction_id", transaction.ID),
			logger.String("patron_id", transaction.PatronID))

		if markErr := r.repo.MarkRegistrationFailed(ctx, transaction.ID, err.Error()); markErr != nil && markErr != payment.ErrStatusConflict {
			r.log.Error("Failed to record registration failure",
				logger.Err(markErr),
				logger.String("transaction_id", transaction.ID))
		}
		return
	}

	if err := r.repo.MarkComplete(ctx, transaction.ID); err != nil {
		if err != payment.ErrStatusConflict {
			r.log.Error("Failed to mark transaction complete",
				logger.Err(err),
				logger.String("transaction_id", transaction.ID))
		}
		return
	}

	r.log.Info("Registration recovered",
		logger.String("transaction_id", transaction.ID),
		logger.String("patron_id", transaction.PatronID))
}

// escalate moves a transaction out of the retry pool once automatic
// registration has been failing for longer than the expiry window.
func (r *Reconciler) escalate(ctx context.Context, transaction *models.Transaction) {
	if err := r.repo.MarkRegistrationExpired(ctx, transaction.ID); err != nil {
		if err != payment.ErrStatusConflict {
			r.log.Error("Failed to expire transaction",
				logger.Err(err),
				logger.String("transaction_id", transaction.ID))
		}
		return
	}

	r.log.Warn("Registration retries exhausted, operator attention required",
		logger.String("transaction_id", transaction.ID),
		logger.String("patron_id", transaction.PatronID))
}

// ReportUnresolved publishes a report for every transaction waiting on an
// operator, then stamps the report time so each one resurfaces only after
// the report interval passes without resolution.
func (r *Reconciler) ReportUnresolved(ctx context.Context) error {
	reportInterval := time.Duration(r.cfg.Payment.ReportInterval) * time.Second
	reportedBefore := time.Now().Add(-reportInterval)

	transactions, err := r.repo.ListUnreported(ctx, reportedBefore)
	if err != nil {
		return err
	}

	for i := range transactions {
		transaction := &transactions[i]

		report := &models.UnresolvedReport{
			TransactionID: transaction.ID,
			PatronID:      transaction.PatronID,
			Status:        string(transaction.Status),
		}
		if transaction.ErrorMessage != nil {
			report.ErrorMessage = *transaction.ErrorMessage
		}

		if err := r.reporter.ReportUnresolved(report); err != nil {
			r.log.Error("Failed to report unresolved transaction",
				logger.Err(err),
				logger.String("transaction_id", transaction.ID))
			continue
		}

		if err := r.repo.MarkReported(ctx, transaction.ID, time.Now()); err != nil && err != payment.ErrStatusConflict {
			r.log.Error("Failed to stamp report time",
				logger.Err(err),
				logger.String("transaction_id", transaction.ID))
		}
	}

	return nil
}
