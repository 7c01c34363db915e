package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okvist/patronpay/services/payment"
)

// ConcurrencyGuard enforces single-flight payment per patron: a fresh
// PROGRESS transaction blocks new attempts until it goes stale, and a
// paid-but-unregistered transaction blocks them at any age.
type ConcurrencyGuard struct {
	repo payment.TransactionRepo
}

// NewConcurrencyGuard creates a new concurrency guard
func NewConcurrencyGuard(repo payment.TransactionRepo) *ConcurrencyGuard {
	return &ConcurrencyGuard{repo: repo}
}

// IsPaymentPermitted checks whether the patron may start a new payment.
func (g *ConcurrencyGuard) IsPaymentPermitted(ctx context.Context, patronID string, staleAfter time.Duration) (*payment.PermitResult, error) {
	inProgress, err := g.repo.FindInProgress(ctx, patronID, time.Now().Add(-staleAfter))
	if err != nil {
		return nil, fmt.Errorf("failed to check in-progress transactions: %w", err)
	}
	if inProgress != nil {
		return &payment.PermitResult{Permitted: false, Reason: payment.ErrPaymentInProgress.Error()}, nil
	}

	unresolved, err := g.repo.FindUnresolved(ctx, patronID)
	if err != nil {
		return nil, fmt.Errorf("failed to check unresolved transactions: %w", err)
	}
	if unresolved != nil {
		return &payment.PermitResult{Permitted: false, Reason: payment.ErrUnresolvedPayment.Error()}, nil
	}

	return &payment.PermitResult{Permitted: true}, nil
}

// patronLocks serializes permit-check plus persist per patron so two
// simultaneous start attempts cannot both pass the guard.
type patronLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPatronLocks() *patronLocks {
	return &patronLocks{locks: make(map[string]*sync.Mutex)}
}

func (p *patronLocks) lock(patronID string) func() {
	p.mu.Lock()
	l, ok := p.locks[patronID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[patronID] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
