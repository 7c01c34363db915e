// Package ils is the HTTP client for the library-management system that owns
// the patron's fines. It supplies the authoritative payable amount before a
// payment starts and registers fees as paid after a successful charge.
package ils

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/okvist/patronpay/internal/pkg/http"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
)

// Client implements payment.ILSClient over the library system's REST API.
type Client struct {
	http *httpclient.Client
}

// NewClient creates a new library system client
func NewClient(config models.ILSConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("ils: base url is required")
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	return &Client{
		http: httpclient.NewClientWithAPIKey(config.BaseURL, config.APIKey, timeout),
	}, nil
}

type payableFinesRequest struct {
	PatronID        string   `json:"patron_id"`
	Driver          string   `json:"driver"`
	SelectedFineIDs []string `json:"selected_fine_ids,omitempty"`
}

// GetPayableFinesDetails asks the library system what the patron can pay
// online right now. The returned amount is authoritative; the UI total is
// only a display value.
func (c *Client) GetPayableFinesDetails(ctx context.Context, patron *models.Patron, selectedFineIDs []string) (*models.PayableFines, error) {
	req := payableFinesRequest{
		PatronID:        patron.ID,
		Driver:          patron.Driver,
		SelectedFineIDs: selectedFineIDs,
	}

	var details models.PayableFines
	if err := c.http.PostJSON(ctx, "/api/v1/fines/payable", req, &details); err != nil {
		return nil, fmt.Errorf("ils: failed to get payable fines: %w", err)
	}

	return &details, nil
}

type markPaidRequest struct {
	PatronID                  string   `json:"patron_id"`
	Driver                    string   `json:"driver"`
	Amount                    int64    `json:"amount"`
	TransactionID             string   `json:"transaction_id"`
	InternalTransactionNumber string   `json:"internal_transaction_number"`
	FineIDs                   []string `json:"fine_ids"`
}

type markPaidResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// MarkFeesAsPaid registers the paid fines in the library system. A transport
// error and an explicit rejection are distinct: the first may be retried
// blindly, the second carries a reason.
func (c *Client) MarkFeesAsPaid(ctx context.Context, patron *models.Patron, amount int64, transactionID, internalNumber string, fineIDs []string) (bool, error) {
	req := markPaidRequest{
		PatronID:                  patron.ID,
		Driver:                    patron.Driver,
		Amount:                    amount,
		TransactionID:             transactionID,
		InternalTransactionNumber: internalNumber,
		FineIDs:                   fineIDs,
	}

	var resp markPaidResponse
	if err := c.http.PostJSON(ctx, "/api/v1/fines/mark-paid", req, &resp); err != nil {
		return false, fmt.Errorf("ils: mark fees as paid failed: %w", err)
	}

	if !resp.Success && resp.Message != "" {
		return false, fmt.Errorf("ils: registration rejected: %s", resp.Message)
	}

	return resp.Success, nil
}

var _ payment.ILSClient = (*Client)(nil)
