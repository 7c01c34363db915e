// Package natsgw publishes reconciliation events to NATS for operator
// tooling and notification consumers.
package natsgw

import (
	"fmt"

	"github.com/okvist/patronpay/internal/pkg/models"
	natspkg "github.com/okvist/patronpay/internal/pkg/nats"
	"github.com/okvist/patronpay/services/payment"
)

// Reporter implements payment.Reporter over a NATS connection.
type Reporter struct {
	client  *natspkg.Client
	subject string
}

// NewReporter creates a new NATS reporter
func NewReporter(client *natspkg.Client, subject string) *Reporter {
	return &Reporter{
		client:  client,
		subject: subject,
	}
}

// ReportUnresolved publishes one unresolved-transaction report
func (r *Reporter) ReportUnresolved(report *models.UnresolvedReport) error {
	if err := r.client.PublishJSON(r.subject, report); err != nil {
		return fmt.Errorf("failed to publish unresolved report: %w", err)
	}
	return nil
}

var _ payment.Reporter = (*Reporter)(nil)
