// Package netpay implements the gateway adapter for the NetPay hosted
// payment page. Outbound: a signed payment-create call returning a redirect
// href. Inbound: redirect callbacks carrying npy_* parameters signed with
// HMAC-SHA256 over the shared merchant secret.
package netpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	httpclient "github.com/okvist/patronpay/internal/pkg/http"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
	"github.com/okvist/patronpay/services/payment/gateway/gatewayutil"
)

const (
	// ProviderName identifies this adapter in routes and configuration
	ProviderName = "netpay"

	signatureHeader = "X-NetPay-Signature"
	signatureParam  = "npy_signature"
	orderParam      = "npy_order"
	referenceParam  = "npy_reference"
	statusParam     = "npy_status"
	messageParam    = "npy_message"
	paramPrefix     = "npy_"

	statusOK     = "ok"
	statusCancel = "cancel"
	statusFail   = "fail"
)

// Adapter implements payment.GatewayAdapter for NetPay.
type Adapter struct {
	merchantID string
	secret     []byte
	locale     string
	client     *httpclient.Client
}

type createItem struct {
	ProductCode string `json:"product_code"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type createRequest struct {
	MerchantID string       `json:"merchant_id"`
	OrderID    string       `json:"order_id"`
	Amount     int64        `json:"amount"`
	Currency   string       `json:"currency"`
	Locale     string       `json:"locale"`
	ReturnURL  string       `json:"return_url"`
	NotifyURL  string       `json:"notify_url"`
	PayerName  string       `json:"payer_name,omitempty"`
	PayerEmail string       `json:"payer_email,omitempty"`
	Items      []createItem `json:"items"`
}

type createResponse struct {
	Reference string `json:"reference"`
	Href      string `json:"href"`
}

// NewAdapter creates a NetPay adapter. Missing credentials are a
// configuration error and fatal at startup.
func NewAdapter(config models.NetPayConfig, timeout time.Duration) (*Adapter, error) {
	if config.MerchantID == "" {
		return nil, fmt.Errorf("netpay: merchant id is required")
	}
	if config.Secret == "" {
		return nil, fmt.Errorf("netpay: secret is required")
	}
	if config.Endpoint == "" {
		return nil, fmt.Errorf("netpay: endpoint is required")
	}

	locale := config.Locale
	if locale == "" {
		locale = "en_US"
	}

	return &Adapter{
		merchantID: config.MerchantID,
		secret:     []byte(config.Secret),
		locale:     locale,
		client:     httpclient.NewClient(config.Endpoint, timeout),
	}, nil
}

// Name returns the provider identifier
func (a *Adapter) Name() string {
	return ProviderName
}

// StartPayment builds the payment-create request, signs it and posts it to
// the provider. Only a successful response counts as the provider accepting
// the payment; the transaction store is untouched here.
func (a *Adapter) StartPayment(ctx context.Context, req *payment.StartRequest) (*payment.RedirectInstruction, error) {
	var total int64
	items := make([]createItem, 0, len(req.LineItems)+1)
	for _, line := range req.LineItems {
		items = append(items, createItem{
			ProductCode: gatewayutil.ProductCode(line.FineType),
			Description: gatewayutil.SanitizeDescription(line.Description),
			Amount:      line.Amount,
		})
		total += line.Amount
	}
	if req.TransactionFee > 0 {
		items = append(items, createItem{
			ProductCode: "SERVICE-FEE",
			Description: "Transaction fee",
			Amount:      req.TransactionFee,
		})
		total += req.TransactionFee
	}

	body, err := json.Marshal(createRequest{
		MerchantID: a.merchantID,
		OrderID:    req.TransactionID,
		Amount:     total,
		Currency:   req.Currency,
		Locale:     a.locale,
		ReturnURL:  req.ReturnURL,
		NotifyURL:  req.NotifyURL,
		PayerName:  req.Payer.FirstName,
		PayerEmail: req.Payer.Email,
		Items:      items,
	})
	if err != nil {
		return nil, fmt.Errorf("netpay: failed to marshal create request: %w", err)
	}

	headers := map[string]string{
		signatureHeader: a.sign(body),
	}

	var resp createResponse
	if err := a.client.PostJSONWithHeaders(ctx, "/v1/payments", body, headers, &resp); err != nil {
		return nil, fmt.Errorf("netpay: payment create failed: %w", err)
	}
	if resp.Href == "" {
		return nil, fmt.Errorf("netpay: provider returned no redirect href")
	}

	return &payment.RedirectInstruction{
		URL:    resp.Href,
		Method: "GET",
	}, nil
}

// ExtractTransactionID reads the correlation id from callback params without
// validating anything else.
func (a *Adapter) ExtractTransactionID(params url.Values) string {
	return params.Get(orderParam)
}

// ValidateCallback recomputes the expected signature from the callback's own
// fields and the shared secret. Any mismatch rejects the callback; the
// claimed status is never read before the signature verifies.
func (a *Adapter) ValidateCallback(params url.Values) (*payment.CallbackResult, error) {
	got := params.Get(signatureParam)
	if got == "" {
		return nil, fmt.Errorf("netpay: missing callback signature: %w", payment.ErrInvalidSignature)
	}

	expected := a.signParams(params)
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return nil, payment.ErrInvalidSignature
	}

	orderID := params.Get(orderParam)
	status := params.Get(statusParam)
	if orderID == "" || status == "" {
		return nil, fmt.Errorf("netpay: callback missing required fields")
	}

	result := &payment.CallbackResult{
		TransactionID:     orderID,
		ProviderReference: params.Get(referenceParam),
		Message:           params.Get(messageParam),
	}

	switch status {
	case statusOK:
		result.Outcome = payment.OutcomeSuccess
	case statusCancel:
		result.Outcome = payment.OutcomeCancelled
	case statusFail:
		result.Outcome = payment.OutcomeFailed
	default:
		return nil, fmt.Errorf("netpay: unknown callback status %q", status)
	}

	return result, nil
}

// sign computes the HMAC-SHA256 hex signature of a request body
func (a *Adapter) sign(body []byte) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// signParams computes the callback signature: all npy_* parameters except
// the signature itself, sorted by key, joined as key=value pairs.
func (a *Adapter) signParams(params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == signatureParam || !strings.HasPrefix(key, paramPrefix) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params.Get(key))
	}

	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignedCallbackParams builds a correctly signed callback parameter set.
// Exported for provider simulators and tests.
func SignedCallbackParams(secret, orderID, reference, status, message string) url.Values {
	params := url.Values{}
	params.Set(orderParam, orderID)
	params.Set(referenceParam, reference)
	params.Set(statusParam, status)
	if message != "" {
		params.Set(messageParam, message)
	}
	params.Set("npy_timestamp", strconv.FormatInt(time.Now().Unix(), 10))

	a := &Adapter{secret: []byte(secret)}
	params.Set(signatureParam, a.signParams(params))
	return params
}
