package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/okvist/patronpay/internal/pkg/models"
)

// SnapshotFingerprint computes a deterministic digest of the patron identity
// together with the payable amount shown to the patron. Pure computation;
// callers persist the result in session state.
func SnapshotFingerprint(patron *models.Patron, amount int64) *models.PaymentFingerprint {
	return &models.PaymentFingerprint{
		SessionID: patronDigest(patron),
		Amount:    amount,
	}
}

// FingerprintChanged reports whether the patron identity or the payable
// amount differs from what was stored when the fines were displayed. Paying a
// stale total must be blocked without a global lock.
func FingerprintChanged(stored *models.PaymentFingerprint, patron *models.Patron, amount int64) bool {
	if stored == nil {
		return true
	}
	return stored.SessionID != patronDigest(patron) || stored.Amount != amount
}

func patronDigest(patron *models.Patron) string {
	// json.Marshal of a struct is deterministic (fields in declaration
	// order), so the digest is stable for equal identities.
	data, err := json.Marshal(patron)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
