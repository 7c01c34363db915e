package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/patronpay/internal/pkg/logger"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
	"github.com/okvist/patronpay/services/payment/mocks"
)

type orchestratorMocks struct {
	repo         *mocks.MockTransactionRepo
	fingerprints *mocks.MockFingerprintStore
	ils          *mocks.MockILSClient
	adapter      *mocks.MockGatewayAdapter
}

func setupOrchestratorTest(t *testing.T) (payment.PaymentUC, orchestratorMocks, func()) {
	ctrl := gomock.NewController(t)

	m := orchestratorMocks{
		repo:         mocks.NewMockTransactionRepo(ctrl),
		fingerprints: mocks.NewMockFingerprintStore(ctrl),
		ils:          mocks.NewMockILSClient(ctrl),
		adapter:      mocks.NewMockGatewayAdapter(ctrl),
	}
	m.adapter.EXPECT().Name().Return("netpay").AnyTimes()

	cfg := &models.Config{}
	cfg.Payment.Currency = "EUR"
	cfg.Payment.StaleAfterSeconds = 900
	cfg.Payment.ReturnBaseURL = "https://pay.example.org"

	testLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, nil)
	require.NoError(t, err)

	uc := NewPaymentOrchestrator(cfg, m.repo, m.fingerprints, m.ils, []payment.GatewayAdapter{m.adapter}, testLogger)

	return uc, m, ctrl.Finish
}

func testPatron() *models.Patron {
	return &models.Patron{
		ID:       "patron-42",
		Driver:   "koha",
		Username: "jsmith",
		Fullname: "Jane Smith",
		Email:    "jane@example.org",
	}
}

func payableDetails(amount int64) *models.PayableFines {
	return &models.PayableFines{
		Payable: true,
		Amount:  amount,
		Fines: []models.Fine{
			{ID: "fine-1", Amount: amount, Currency: "EUR", Description: "Overdue book"},
		},
	}
}

func TestDisplayFinesStoresFingerprint(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).Return(payableDetails(1500), nil)
	m.fingerprints.EXPECT().Save(ctx, "session-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fp *models.PaymentFingerprint) error {
			assert.Equal(t, int64(1500), fp.Amount)
			assert.NotEmpty(t, fp.SessionID)
			return nil
		})

	details, err := uc.DisplayFines(ctx, "session-1", patron, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1500), details.Amount)
}

func TestStartPaymentBlockedByInProgress(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).
		Return(&models.Transaction{ID: "tx-live", Status: models.StatusProgress}, nil)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.ErrorIs(t, err, payment.ErrPaymentInProgress)
	assert.Nil(t, redirect)
}

func TestStartPaymentBlockedByUnresolved(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).
		Return(&models.Transaction{ID: "tx-stuck", Status: models.StatusRegistrationFailed}, nil)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.ErrorIs(t, err, payment.ErrUnresolvedPayment)
	assert.Nil(t, redirect)
}

func TestStartPaymentFingerprintMismatch(t *testing.T) {
	// The amount changed between display and submit; nothing may be
	// persisted and no provider call may happen.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).Return(nil, nil)
	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).Return(payableDetails(2000), nil)
	m.fingerprints.EXPECT().Get(ctx, "session-1").
		Return(SnapshotFingerprint(patron, 1500), nil)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.ErrorIs(t, err, payment.ErrFinesChanged)
	assert.Nil(t, redirect)
}

func TestStartPaymentWithoutFingerprint(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).Return(nil, nil)
	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).Return(payableDetails(1500), nil)
	m.fingerprints.EXPECT().Get(ctx, "session-1").Return(nil, payment.ErrNoFingerprint)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.ErrorIs(t, err, payment.ErrNoFingerprint)
	assert.Nil(t, redirect)
}

func TestStartPaymentNotPayable(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).Return(nil, nil)
	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).
		Return(&models.PayableFines{Payable: false, Reason: "account blocked"}, nil)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.ErrorIs(t, err, payment.ErrNotPayable)
	assert.Nil(t, redirect)
}

func TestStartPaymentUnknownProvider(t *testing.T) {
	uc, _, finish := setupOrchestratorTest(t)
	defer finish()

	redirect, err := uc.StartPayment(context.Background(), "session-1", testPatron(), nil, "legacypay")

	assert.ErrorIs(t, err, payment.ErrUnknownProvider)
	assert.Nil(t, redirect)
}

func TestStartPaymentProviderRejects(t *testing.T) {
	// The provider rejecting the start request must leave no transaction
	// behind; the patron can simply retry.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).Return(nil, nil)
	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).Return(payableDetails(1500), nil)
	m.fingerprints.EXPECT().Get(ctx, "session-1").Return(SnapshotFingerprint(patron, 1500), nil)
	m.adapter.EXPECT().StartPayment(ctx, gomock.Any()).Return(nil, errors.New("provider unavailable"))

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	assert.Error(t, err)
	assert.Nil(t, redirect)
}

func TestStartPaymentSuccess(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	patron := testPatron()
	ctx := context.Background()

	m.repo.EXPECT().FindInProgress(ctx, patron.ID, gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().FindUnresolved(ctx, patron.ID).Return(nil, nil)
	m.ils.EXPECT().GetPayableFinesDetails(ctx, patron, nil).Return(payableDetails(1500), nil)
	m.fingerprints.EXPECT().Get(ctx, "session-1").Return(SnapshotFingerprint(patron, 1500), nil)

	m.adapter.EXPECT().StartPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *payment.StartRequest) (*payment.RedirectInstruction, error) {
			assert.NotEmpty(t, req.TransactionID)
			assert.Equal(t, "https://pay.example.org/api/v1/payments/callback/netpay", req.ReturnURL)
			assert.Len(t, req.LineItems, 1)
			return &payment.RedirectInstruction{URL: "https://netpay.example/checkout/abc", Method: "GET"}, nil
		})

	m.repo.EXPECT().CreateWithLineItems(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transaction *models.Transaction, items []models.FeeLineItem) error {
			assert.Equal(t, models.StatusProgress, transaction.Status)
			assert.Equal(t, int64(1500), transaction.Amount)
			assert.Equal(t, patron.ID, transaction.PatronID)
			assert.NotEmpty(t, transaction.InternalNumber)
			assert.Len(t, items, 1)
			return nil
		})
	m.fingerprints.EXPECT().Delete(ctx, "session-1").Return(nil)

	redirect, err := uc.StartPayment(ctx, "session-1", patron, nil, "netpay")

	require.NoError(t, err)
	require.NotNil(t, redirect)
	assert.Equal(t, "https://netpay.example/checkout/abc", redirect.URL)
}

func callbackParams(transactionID string) url.Values {
	params := url.Values{}
	params.Set("npy_order", transactionID)
	return params
}

func progressTransaction() *models.Transaction {
	return &models.Transaction{
		ID:             "tx-001",
		InternalNumber: "PP-100",
		Driver:         "koha",
		UserID:         "jsmith",
		PatronID:       "patron-42",
		Amount:         1500,
		Currency:       "EUR",
		Status:         models.StatusProgress,
		CreatedAt:      time.Now(),
	}
}

func TestHandleCallbackUnknownTransaction(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-unknown")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-unknown")
	m.repo.EXPECT().GetByID(ctx, "tx-unknown").Return(nil, payment.ErrTransactionNotFound)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackDuplicateAcknowledged(t *testing.T) {
	// A callback for an already-settled transaction is acknowledged
	// without validation and without any state change.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	paid := progressTransaction()
	paid.Status = models.StatusComplete

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(paid, nil)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackInvalidSignature(t *testing.T) {
	// A forged callback is acknowledged generically and must not move the
	// transaction out of PROGRESS.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(progressTransaction(), nil)
	m.adapter.EXPECT().ValidateCallback(params).Return(nil, payment.ErrInvalidSignature)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackSuccessRegistersFees(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")
	transaction := progressTransaction()

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(transaction, nil)
	m.adapter.EXPECT().ValidateCallback(params).
		Return(&payment.CallbackResult{Outcome: payment.OutcomeSuccess, TransactionID: "tx-001", ProviderReference: "ref-9"}, nil)
	m.repo.EXPECT().MarkPaid(ctx, "tx-001", gomock.Any()).Return(nil)
	m.repo.EXPECT().GetLineItems(ctx, "tx-001").
		Return([]models.FeeLineItem{{TransactionID: "tx-001", FineID: "fine-1", Amount: 1500}}, nil)
	m.ils.EXPECT().MarkFeesAsPaid(ctx, gomock.Any(), int64(1500), "tx-001", "PP-100", []string{"fine-1"}).
		Return(true, nil)
	m.repo.EXPECT().MarkComplete(ctx, "tx-001").Return(nil)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackRegistrationFailure(t *testing.T) {
	// A failed registration after a successful charge is recorded for the
	// reconciler; the callback still succeeds so the provider stops
	// retrying a charge that already went through.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(progressTransaction(), nil)
	m.adapter.EXPECT().ValidateCallback(params).
		Return(&payment.CallbackResult{Outcome: payment.OutcomeSuccess, TransactionID: "tx-001"}, nil)
	m.repo.EXPECT().MarkPaid(ctx, "tx-001", gomock.Any()).Return(nil)
	m.repo.EXPECT().GetLineItems(ctx, "tx-001").
		Return([]models.FeeLineItem{{TransactionID: "tx-001", FineID: "fine-1", Amount: 1500}}, nil)
	m.ils.EXPECT().MarkFeesAsPaid(ctx, gomock.Any(), int64(1500), "tx-001", "PP-100", []string{"fine-1"}).
		Return(false, errors.New("ils timeout"))
	m.repo.EXPECT().MarkRegistrationFailed(ctx, "tx-001", "ils timeout").Return(nil)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackConcurrentDelivery(t *testing.T) {
	// Two deliveries race: the second MarkPaid matches no row and the
	// callback is acknowledged without re-registering fees.
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(progressTransaction(), nil)
	m.adapter.EXPECT().ValidateCallback(params).
		Return(&payment.CallbackResult{Outcome: payment.OutcomeSuccess, TransactionID: "tx-001"}, nil)
	m.repo.EXPECT().MarkPaid(ctx, "tx-001", gomock.Any()).Return(payment.ErrStatusConflict)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackCancelled(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(progressTransaction(), nil)
	m.adapter.EXPECT().ValidateCallback(params).
		Return(&payment.CallbackResult{Outcome: payment.OutcomeCancelled, TransactionID: "tx-001"}, nil)
	m.repo.EXPECT().MarkCancelled(ctx, "tx-001").Return(nil)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestHandleCallbackFailed(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()
	params := callbackParams("tx-001")

	m.adapter.EXPECT().ExtractTransactionID(params).Return("tx-001")
	m.repo.EXPECT().GetByID(ctx, "tx-001").Return(progressTransaction(), nil)
	m.adapter.EXPECT().ValidateCallback(params).
		Return(&payment.CallbackResult{Outcome: payment.OutcomeFailed, TransactionID: "tx-001", Message: "card declined"}, nil)
	m.repo.EXPECT().MarkPaymentFailed(ctx, "tx-001", "card declined").Return(nil)

	err := uc.HandleCallback(ctx, "netpay", params)

	assert.NoError(t, err)
}

func TestResolveTransaction(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()

	m.repo.EXPECT().MarkRegistrationResolved(ctx, "tx-001").Return(nil)
	assert.NoError(t, uc.ResolveTransaction(ctx, "tx-001"))

	m.repo.EXPECT().MarkRegistrationResolved(ctx, "tx-002").Return(payment.ErrStatusConflict)
	assert.ErrorIs(t, uc.ResolveTransaction(ctx, "tx-002"), payment.ErrStatusConflict)
}

func TestFlagFinesUpdated(t *testing.T) {
	uc, m, finish := setupOrchestratorTest(t)
	defer finish()

	ctx := context.Background()

	m.repo.EXPECT().MarkFinesUpdated(ctx, "tx-001").Return(nil)
	assert.NoError(t, uc.FlagFinesUpdated(ctx, "tx-001"))
}
