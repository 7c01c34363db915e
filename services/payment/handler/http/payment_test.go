package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
	"github.com/okvist/patronpay/services/payment/mocks"
)

func setupHandlerTest(t *testing.T) (*PaymentHandler, *mocks.MockPaymentUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	return NewPaymentHandler(mockUC), mockUC, ctrl.Finish
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestDisplayFinesHandler(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	body := `{"session_id":"session-1","patron":{"id":"patron-42","driver":"koha","username":"jsmith"}}`
	req, rec := jsonRequest(http.MethodPost, "/api/v1/fines/display", body)
	c := e.NewContext(req, rec)

	mockUC.EXPECT().DisplayFines(gomock.Any(), "session-1", gomock.Any(), gomock.Any()).
		Return(&models.PayableFines{Payable: true, Amount: 1500}, nil)

	require.NoError(t, handler.DisplayFines(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":1500`)
}

func TestDisplayFinesHandlerMissingFields(t *testing.T) {
	handler, _, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/api/v1/fines/display", `{"session_id":"session-1"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, handler.DisplayFines(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartPaymentHandler(t *testing.T) {
	testCases := []struct {
		name         string
		ucErr        error
		expectedCode int
	}{
		{name: "Success", ucErr: nil, expectedCode: http.StatusOK},
		{name: "In progress", ucErr: payment.ErrPaymentInProgress, expectedCode: http.StatusConflict},
		{name: "Unresolved", ucErr: payment.ErrUnresolvedPayment, expectedCode: http.StatusConflict},
		{name: "Fines changed", ucErr: payment.ErrFinesChanged, expectedCode: http.StatusConflict},
		{name: "No fingerprint", ucErr: payment.ErrNoFingerprint, expectedCode: http.StatusConflict},
		{name: "Not payable", ucErr: payment.ErrNotPayable, expectedCode: http.StatusUnprocessableEntity},
		{name: "Unknown provider", ucErr: payment.ErrUnknownProvider, expectedCode: http.StatusBadRequest},
		{name: "Gateway failure stays generic", ucErr: errors.New("provider timeout"), expectedCode: http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockUC, finish := setupHandlerTest(t)
			defer finish()

			e := echo.New()
			body := `{"session_id":"session-1","provider":"netpay","patron":{"id":"patron-42","driver":"koha"}}`
			req, rec := jsonRequest(http.MethodPost, "/api/v1/payments", body)
			c := e.NewContext(req, rec)

			var redirect *payment.RedirectInstruction
			if tc.ucErr == nil {
				redirect = &payment.RedirectInstruction{URL: "https://netpay.example/checkout/abc", Method: "GET"}
			}
			mockUC.EXPECT().StartPayment(gomock.Any(), "session-1", gomock.Any(), gomock.Any(), "netpay").
				Return(redirect, tc.ucErr)

			require.NoError(t, handler.StartPayment(c))
			assert.Equal(t, tc.expectedCode, rec.Code)

			if tc.name == "Gateway failure stays generic" {
				assert.NotContains(t, rec.Body.String(), "provider timeout")
			}
		})
	}
}

func TestHandleReturnAcknowledges(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/callback/netpay?npy_order=tx-001&npy_status=ok", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("netpay")

	mockUC.EXPECT().HandleCallback(gomock.Any(), "netpay", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) error {
			assert.Equal(t, "tx-001", params.Get("npy_order"))
			assert.Equal(t, "ok", params.Get("npy_status"))
			return nil
		})

	require.NoError(t, handler.HandleReturn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acknowledged")
}

func TestHandleNotifyFormBody(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	form := url.Values{}
	form.Set("npy_order", "tx-001")
	form.Set("npy_status", "fail")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/notify/netpay", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("netpay")

	mockUC.EXPECT().HandleCallback(gomock.Any(), "netpay", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) error {
			assert.Equal(t, "tx-001", params.Get("npy_order"))
			return nil
		})

	require.NoError(t, handler.HandleNotify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCallbackUnknownProvider(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/callback/legacypay", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("legacypay")

	mockUC.EXPECT().HandleCallback(gomock.Any(), "legacypay", gomock.Any()).
		Return(payment.ErrUnknownProvider)

	require.NoError(t, handler.HandleReturn(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransactionHandler(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/tx-001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("tx-001")

	mockUC.EXPECT().GetTransaction(gomock.Any(), "tx-001").
		Return(&models.Transaction{ID: "tx-001", Status: models.StatusComplete}, nil)

	require.NoError(t, handler.GetTransaction(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETE")
}

func TestGetTransactionHandlerNotFound(t *testing.T) {
	handler, mockUC, finish := setupHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/tx-missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("tx-missing")

	mockUC.EXPECT().GetTransaction(gomock.Any(), "tx-missing").
		Return(nil, payment.ErrTransactionNotFound)

	require.NoError(t, handler.GetTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveTransactionHandler(t *testing.T) {
	testCases := []struct {
		name         string
		ucErr        error
		expectedCode int
	}{
		{name: "Resolved", ucErr: nil, expectedCode: http.StatusOK},
		{name: "Not found", ucErr: payment.ErrTransactionNotFound, expectedCode: http.StatusNotFound},
		{name: "Wrong state", ucErr: payment.ErrStatusConflict, expectedCode: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockUC, finish := setupHandlerTest(t)
			defer finish()

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/transactions/tx-001/resolve", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("tx-001")

			mockUC.EXPECT().ResolveTransaction(gomock.Any(), "tx-001").Return(tc.ucErr)

			require.NoError(t, handler.ResolveTransaction(c))
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}
