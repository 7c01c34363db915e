package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/okvist/patronpay/internal/pkg/logger"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
)

// PaymentOrchestrator implements the payment.PaymentUC interface. It
// sequences fingerprint guard, concurrency guard, gateway adapter and
// transaction store on the start path, and gateway adapter, transaction
// store and fee registration on the callback path.
type PaymentOrchestrator struct {
	cfg          *models.Config
	repo         payment.TransactionRepo
	fingerprints payment.FingerprintStore
	gateways     map[string]payment.GatewayAdapter
	ils          payment.ILSClient
	guard        *ConcurrencyGuard
	locks        *patronLocks
	log          *logger.ZapLogger
}

// NewPaymentOrchestrator creates a new payment orchestrator
func NewPaymentOrchestrator(
	cfg *models.Config,
	repo payment.TransactionRepo,
	fingerprints payment.FingerprintStore,
	ils payment.ILSClient,
	adapters []payment.GatewayAdapter,
	log *logger.ZapLogger,
) payment.PaymentUC {
	gateways := make(map[string]payment.GatewayAdapter, len(adapters))
	for _, a := range adapters {
		gateways[a.Name()] = a
	}

	return &PaymentOrchestrator{
		cfg:          cfg,
		repo:         repo,
		fingerprints: fingerprints,
		gateways:     gateways,
		ils:          ils,
		guard:        NewConcurrencyGuard(repo),
		locks:        newPatronLocks(),
		log:          log,
	}
}

// DisplayFines fetches the authoritative payable fines from the library
// system and captures the session fingerprint compared at payment start.
func (uc *PaymentOrchestrator) DisplayFines(ctx context.Context, sessionID string, patron *models.Patron, selectedFineIDs []string) (*models.PayableFines, error) {
	details, err := uc.ils.GetPayableFinesDetails(ctx, patron, selectedFineIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payable fines: %w", err)
	}

	fp := SnapshotFingerprint(patron, details.Amount)
	if err := uc.fingerprints.Save(ctx, sessionID, fp); err != nil {
		return nil, fmt.Errorf("failed to store fingerprint: %w", err)
	}

	return details, nil
}

// StartPayment runs the start path of the payment flow. Nothing is persisted
// unless the provider accepted the request; any failure before that point is
// recoverable by simply retrying.
func (uc *PaymentOrchestrator) StartPayment(ctx context.Context, sessionID string, patron *models.Patron, selectedFineIDs []string, provider string) (*payment.RedirectInstruction, error) {
	adapter, ok := uc.gateways[provider]
	if !ok {
		return nil, payment.ErrUnknownProvider
	}

	// Guard check and persist are serialized per patron so two
	// simultaneous starts cannot both pass.
	unlock := uc.locks.lock(patron.ID)
	defer unlock()

	staleAfter := time.Duration(uc.cfg.Payment.StaleAfterSeconds) * time.Second
	permit, err := uc.guard.IsPaymentPermitted(ctx, patron.ID, staleAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment permission: %w", err)
	}
	if !permit.Permitted {
		if permit.Reason == payment.ErrUnresolvedPayment.Error() {
			return nil, payment.ErrUnresolvedPayment
		}
		return nil, payment.ErrPaymentInProgress
	}

	details, err := uc.ils.GetPayableFinesDetails(ctx, patron, selectedFineIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get payable fines: %w", err)
	}
	if !details.Payable || len(details.Fines) == 0 {
		return nil, payment.ErrNotPayable
	}

	// The fingerprint check runs even though the guard passed: fines can
	// change between page render and submit without any overlap in flight.
	stored, err := uc.fingerprints.Get(ctx, sessionID)
	if err != nil {
		if err == payment.ErrNoFingerprint {
			return nil, payment.ErrNoFingerprint
		}
		return nil, fmt.Errorf("failed to load fingerprint: %w", err)
	}
	if FingerprintChanged(stored, patron, details.Amount) {
		uc.log.Warn("Fines changed between display and payment",
			logger.String("patron_id", patron.ID),
			logger.Int64("stored_amount", stored.Amount),
			logger.Int64("current_amount", details.Amount))
		return nil, payment.ErrFinesChanged
	}

	transactionID := models.NewTransactionID(patron.ID)
	items := make([]models.FeeLineItem, 0, len(details.Fines))
	for _, fine := range details.Fines {
		items = append(items, models.FeeLineItem{
			TransactionID: transactionID,
			Amount:        fine.Amount,
			Currency:      uc.cfg.Payment.Currency,
			Description:   fine.Description,
			FineID:        fine.ID,
			FineType:      fine.Type,
		})
	}

	startReq := &payment.StartRequest{
		TransactionID: transactionID,
		ReturnURL:     fmt.Sprintf("%s/api/v1/payments/callback/%s", uc.cfg.Payment.ReturnBaseURL, provider),
		NotifyURL:     fmt.Sprintf("%s/api/v1/payments/notify/%s", uc.cfg.Payment.ReturnBaseURL, provider),
		Payer: payment.PayerInfo{
			FirstName: patron.Fullname,
			Email:     patron.Email,
		},
		LineItems:      items,
		TransactionFee: uc.cfg.Payment.TransactionFee,
		Currency:       uc.cfg.Payment.Currency,
	}

	redirect, err := adapter.StartPayment(ctx, startReq)
	if err != nil {
		// Nothing persisted; the patron sees a generic failure and can retry.
		return nil, fmt.Errorf("payment provider rejected start request: %w", err)
	}

	now := time.Now()
	transaction := &models.Transaction{
		ID:             transactionID,
		InternalNumber: models.NewInternalNumber(),
		Driver:         patron.Driver,
		UserID:         patron.Username,
		PatronID:       patron.ID,
		Amount:         details.Amount,
		TransactionFee: uc.cfg.Payment.TransactionFee,
		Currency:       uc.cfg.Payment.Currency,
		Status:         models.StatusProgress,
		CreatedAt:      now,
	}

	if err := uc.repo.CreateWithLineItems(ctx, transaction, items); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	// The displayed snapshot is consumed; a new display is needed for the
	// next payment. Best effort, the TTL covers a failed delete.
	if err := uc.fingerprints.Delete(ctx, sessionID); err != nil {
		uc.log.Warn("Failed to delete fingerprint", logger.Err(err))
	}

	uc.log.Info("Payment started",
		logger.String("transaction_id", transactionID),
		logger.String("patron_id", patron.ID),
		logger.Int64("amount", details.Amount),
		logger.String("provider", provider))

	return redirect, nil
}

// HandleCallback processes a provider return or notify request. Both may
// arrive for the same transaction; every path that does not transition state
// returns nil so the provider receives a generic acknowledgment and stops
// retrying, while forged or duplicate callbacks never mutate anything.
func (uc *PaymentOrchestrator) HandleCallback(ctx context.Context, provider string, params url.Values) error {
	adapter, ok := uc.gateways[provider]
	if !ok {
		return payment.ErrUnknownProvider
	}

	// Only the correlation id is read before signature validation.
	transactionID := adapter.ExtractTransactionID(params)
	if transactionID == "" {
		uc.log.Warn("Callback without transaction id", logger.String("provider", provider))
		return nil
	}

	transaction, err := uc.repo.GetByID(ctx, transactionID)
	if err != nil {
		if err == payment.ErrTransactionNotFound {
			uc.log.Warn("Callback for unknown transaction",
				logger.String("transaction_id", transactionID),
				logger.String("provider", provider))
			return nil
		}
		return fmt.Errorf("failed to load transaction: %w", err)
	}

	if transaction.Status != models.StatusProgress {
		uc.log.Debug("Duplicate callback acknowledged",
			logger.String("transaction_id", transactionID),
			logger.String("status", string(transaction.Status)))
		return nil
	}

	result, err := adapter.ValidateCallback(params)
	if err != nil {
		uc.log.Warn("Callback validation failed",
			logger.Err(err),
			logger.String("transaction_id", transactionID),
			logger.String("provider", provider))
		return nil
	}

	switch result.Outcome {
	case payment.OutcomeSuccess:
		paidAt := time.Now()
		if err := uc.repo.MarkPaid(ctx, transactionID, paidAt); err != nil {
			if err == payment.ErrStatusConflict {
				// A concurrent delivery won the race; already handled.
				return nil
			}
			return fmt.Errorf("failed to mark transaction paid: %w", err)
		}
		uc.log.Info("Payment confirmed",
			logger.String("transaction_id", transactionID),
			logger.String("provider_reference", result.ProviderReference))

		uc.registerFees(ctx, transaction)
		return nil

	case payment.OutcomeCancelled:
		if err := uc.repo.MarkCancelled(ctx, transactionID); err != nil && err != payment.ErrStatusConflict {
			return fmt.Errorf("failed to mark transaction cancelled: %w", err)
		}
		return nil

	default:
		message := result.Message
		if message == "" {
			message = "payment failed at provider"
		}
		if err := uc.repo.MarkPaymentFailed(ctx, transactionID, message); err != nil && err != payment.ErrStatusConflict {
			return fmt.Errorf("failed to mark transaction failed: %w", err)
		}
		return nil
	}
}

// registerFees attempts the synchronous fee registration after a successful
// charge. Failures are recorded for the reconciler and never propagated: a
// failed library-system call must not block the HTTP response to the
// provider, and the patron must never be told a completed charge failed.
func (uc *PaymentOrchestrator) registerFees(ctx context.Context, transaction *models.Transaction) {
	items, err := uc.repo.GetLineItems(ctx, transaction.ID)
	if err != nil {
		uc.log.Error("Failed to load line items for registration",
			logger.Err(err),
			logger.String("transaction_id", transaction.ID))
		uc.markRegistrationFailed(ctx, transaction.ID, err.Error())
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

	ok, err := uc.ils.MarkFeesAsPaid(ctx, patron, transaction.Amount, transaction.ID, transaction.InternalNumber, fineIDs)
	if err != nil {
		uc.markRegistrationFailed(ctx, transaction.ID, err.Error())
		return
	}
	if !ok {
		uc.markRegistrationFailed(ctx, transaction.ID, "library system rejected fee registration")
		return
	}

	if err := uc.repo.MarkComplete(ctx, transaction.ID); err != nil && err != payment.ErrStatusConflict {
		uc.log.Error("Failed to mark transaction complete",
			logger.Err(err),
			logger.String("transaction_id", transaction.ID))
		return
	}

	uc.log.Info("Fees registered",
		logger.String("transaction_id", transaction.ID),
		logger.String("patron_id", transaction.PatronID))
}

func (uc *PaymentOrchestrator) markRegistrationFailed(ctx context.Context, transactionID, message string) {
	uc.log.Error("Fee registration failed, deferring to reconciler",
		logger.String("transaction_id", transactionID),
		logger.String("error_message", message))

	if err := uc.repo.MarkRegistrationFailed(ctx, transactionID, message); err != nil && err != payment.ErrStatusConflict {
		uc.log.Error("Failed to record registration failure",
			logger.Err(err),
			logger.String("transaction_id", transactionID))
	}
}

// GetTransaction returns a transaction by id
func (uc *PaymentOrchestrator) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return uc.repo.GetByID(ctx, id)
}

// ResolveTransaction records an operator fixing a registration by hand
func (uc *PaymentOrchestrator) ResolveTransaction(ctx context.Context, id string) error {
	if err := uc.repo.MarkRegistrationResolved(ctx, id); err != nil {
		return err
	}
	uc.log.Info("Transaction manually resolved", logger.String("transaction_id", id))
	return nil
}

// FlagFinesUpdated flags a paid transaction whose fines no longer match what
// was paid; set by operators, resolved by operators.
func (uc *PaymentOrchestrator) FlagFinesUpdated(ctx context.Context, id string) error {
	if err := uc.repo.MarkFinesUpdated(ctx, id); err != nil {
		return err
	}
	uc.log.Warn("Transaction flagged for manual reconciliation", logger.String("transaction_id", id))
	return nil
}
