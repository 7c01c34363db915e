package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/okvist/patronpay/internal/pkg/database"
	"github.com/okvist/patronpay/internal/pkg/models"
	"github.com/okvist/patronpay/services/payment"
)

const fingerprintKeyPrefix = "fingerprint:"

// RedisFingerprintStore keeps session-scoped payment fingerprints in Redis
// with a TTL. Fingerprints are ephemeral; losing one only forces the patron
// to reload the fines page.
type RedisFingerprintStore struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewFingerprintStore creates a new fingerprint store
func NewFingerprintStore(redisClient *database.RedisClient, ttl time.Duration) payment.FingerprintStore {
	if ttl == 0 {
		ttl = time.Hour
	}
	return &RedisFingerprintStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Save stores the fingerprint for a session
func (s *RedisFingerprintStore) Save(ctx context.Context, sessionID string, fp *models.PaymentFingerprint) error {
	data, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("failed to marshal fingerprint: %w", err)
	}

	if err := s.redisClient.Set(ctx, fingerprintKeyPrefix+sessionID, data, s.ttl); err != nil {
		return fmt.Errorf("failed to store fingerprint: %w", err)
	}

	return nil
}

// Get retrieves the fingerprint for a session; ErrNoFingerprint when the
// session never displayed fines or the entry expired.
func (s *RedisFingerprintStore) Get(ctx context.Context, sessionID string) (*models.PaymentFingerprint, error) {
	data, err := s.redisClient.Get(ctx, fingerprintKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, payment.ErrNoFingerprint
		}
		return nil, fmt.Errorf("failed to get fingerprint: %w", err)
	}

	var fp models.PaymentFingerprint
	if err := json.Unmarshal([]byte(data), &fp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fingerprint: %w", err)
	}

	return &fp, nil
}

// Delete removes the fingerprint for a session
func (s *RedisFingerprintStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Delete(ctx, fingerprintKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to delete fingerprint: %w", err)
	}
	return nil
}
