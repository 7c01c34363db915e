package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/patronpay/internal/pkg/logger"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/internal/pkg/retry"
	"github.com/okvist/patronpay/services/payment/mocks"
)

type reconcilerMocks struct {
	repo     *mocks.MockTransactionRepo
	ils      *mocks.MockILSClient
	reporter *mocks.MockReporter
}

func setupReconcilerTest(t *testing.T) (*Reconciler, reconcilerMocks, func()) {
	ctrl := gomock.NewController(t)

	m := reconcilerMocks{
		repo:     mocks.NewMockTransactionRepo(ctrl),
		ils:      mocks.NewMockILSClient(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
	}

	cfg := &models.Config{}
	cfg.Payment.MinPaidAgeSeconds = 120
	cfg.Payment.RegistrationExpiry = 259200
	cfg.Payment.ReportInterval = 86400

	testLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, nil)
	require.NoError(t, err)

	r := NewReconciler(cfg, m.repo, m.ils, m.reporter, testLogger)

	// Keep retries fast in tests
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = 1
	retryConfig.BaseDelay = time.Millisecond
	retryConfig.Jitter = false
	r.retrier = retry.New(retryConfig, testLogger)

	return r, m, ctrl.Finish
}

func failedTransaction(paidAgo time.Duration) models.Transaction {
	paidAt := time.Now().Add(-paidAgo)
	message := "ils timeout"
	return models.Transaction{
		ID:             "tx-001",
		InternalNumber: "PP-100",
		Driver:         "koha",
		UserID:         "jsmith",
		PatronID:       "patron-42",
		Amount:         1500,
		Currency:       "EUR",
		Status:         models.StatusRegistrationFailed,
		ErrorMessage:   &message,
		CreatedAt:      paidAt.Add(-time.Minute),
		PaidAt:         &paidAt,
	}
}

func TestRetryFailedRegistrationsRecovers(t *testing.T) {
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	transaction := failedTransaction(10 * time.Minute)

	m.repo.EXPECT().ListRegistrationRetry(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.repo.EXPECT().GetLineItems(ctx, "tx-001").
		Return([]models.FeeLineItem{{TransactionID: "tx-001", FineID: "fine-1", Amount: 1500}}, nil)
	m.ils.EXPECT().MarkFeesAsPaid(gomock.Any(), gomock.Any(), int64(1500), "tx-001", "PP-100", []string{"fine-1"}).
		Return(true, nil)
	m.repo.EXPECT().MarkComplete(ctx, "tx-001").Return(nil)

	err := r.RetryFailedRegistrations(ctx)

	assert.NoError(t, err)
}

func TestRetryFailedRegistrationsStillFailing(t *testing.T) {
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	transaction := failedTransaction(10 * time.Minute)

	m.repo.EXPECT().ListRegistrationRetry(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.repo.EXPECT().GetLineItems(ctx, "tx-001").
		Return([]models.FeeLineItem{{TransactionID: "tx-001", FineID: "fine-1", Amount: 1500}}, nil)
	m.ils.EXPECT().MarkFeesAsPaid(gomock.Any(), gomock.Any(), int64(1500), "tx-001", "PP-100", []string{"fine-1"}).
		Return(false, errors.New("ils still down")).
		AnyTimes()
	m.repo.EXPECT().MarkRegistrationFailed(ctx, "tx-001", gomock.Any()).Return(nil)

	err := r.RetryFailedRegistrations(ctx)

	assert.NoError(t, err)
}

func TestRetryFailedRegistrationsEscalatesExpired(t *testing.T) {
	// Past the expiry window the transaction leaves the retry pool without
	// any further registration attempt.
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	transaction := failedTransaction(96 * time.Hour)

	m.repo.EXPECT().ListRegistrationRetry(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.repo.EXPECT().MarkRegistrationExpired(ctx, "tx-001").Return(nil)

	err := r.RetryFailedRegistrations(ctx)

	assert.NoError(t, err)
}

func TestRetryFailedRegistrationsExpiredPaidIsRetried(t *testing.T) {
	// A transaction still in PAID past the expiry window gets a
	// registration attempt instead of an escalation: only
	// REGISTRATION_FAILED may move to REGISTRATION_EXPIRED. Its failure
	// records REGISTRATION_FAILED, which the next pass escalates.
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	transaction := failedTransaction(96 * time.Hour)
	transaction.Status = models.StatusPaid
	transaction.ErrorMessage = nil

	m.repo.EXPECT().ListRegistrationRetry(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.repo.EXPECT().GetLineItems(ctx, "tx-001").
		Return([]models.FeeLineItem{{TransactionID: "tx-001", FineID: "fine-1", Amount: 1500}}, nil)
	m.ils.EXPECT().MarkFeesAsPaid(gomock.Any(), gomock.Any(), int64(1500), "tx-001", "PP-100", []string{"fine-1"}).
		Return(false, errors.New("ils still down")).
		AnyTimes()
	m.repo.EXPECT().MarkRegistrationFailed(ctx, "tx-001", gomock.Any()).Return(nil)

	err := r.RetryFailedRegistrations(ctx)

	assert.NoError(t, err)
}

func TestRetryFailedRegistrationsEmptyList(t *testing.T) {
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()

	m.repo.EXPECT().ListRegistrationRetry(ctx, gomock.Any()).Return(nil, nil)

	assert.NoError(t, r.RetryFailedRegistrations(ctx))
}

func TestReportUnresolved(t *testing.T) {
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	message := "ils timeout"
	transaction := models.Transaction{
		ID:           "tx-001",
		PatronID:     "patron-42",
		Status:       models.StatusRegistrationExpired,
		ErrorMessage: &message,
	}

	m.repo.EXPECT().ListUnreported(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.reporter.EXPECT().ReportUnresolved(gomock.Any()).
		DoAndReturn(func(report *models.UnresolvedReport) error {
			assert.Equal(t, "tx-001", report.TransactionID)
			assert.Equal(t, "patron-42", report.PatronID)
			assert.Equal(t, "REGISTRATION_EXPIRED", report.Status)
			assert.Equal(t, "ils timeout", report.ErrorMessage)
			return nil
		})
	m.repo.EXPECT().MarkReported(ctx, "tx-001", gomock.Any()).Return(nil)

	err := r.ReportUnresolved(ctx)

	assert.NoError(t, err)
}

func TestReportUnresolvedPublishFailureSkipsStamp(t *testing.T) {
	// A failed publish leaves reported_at untouched so the transaction
	// resurfaces on the next pass.
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()
	transaction := models.Transaction{
		ID:       "tx-001",
		PatronID: "patron-42",
		Status:   models.StatusFinesUpdated,
	}

	m.repo.EXPECT().ListUnreported(ctx, gomock.Any()).
		Return([]models.Transaction{transaction}, nil)
	m.reporter.EXPECT().ReportUnresolved(gomock.Any()).Return(errors.New("nats unavailable"))

	err := r.ReportUnresolved(ctx)

	assert.NoError(t, err)
}

func TestReportUnresolvedListError(t *testing.T) {
	r, m, finish := setupReconcilerTest(t)
	defer finish()

	ctx := context.Background()

	m.repo.EXPECT().ListUnreported(ctx, gomock.Any()).Return(nil, errors.New("db down"))

	assert.Error(t, r.ReportUnresolved(ctx))
}
