package models

// Patron identifies a library user to the external library system.
type Patron struct {
	ID       string `json:"id"`
	Driver   string `json:"driver"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// Fine is one payable charge sourced from the library system.
type Fine struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// PayableFines is the authoritative answer from the library system on what a
// patron can pay online right now.
type PayableFines struct {
	Payable bool   `json:"payable"`
	Amount  int64  `json:"amount"`
	Fines   []Fine `json:"fines"`
	Reason  string `json:"reason,omitempty"`
}

// PaymentFingerprint is the session-scoped snapshot of what the patron was
// shown to pay. It is compared at payment start to detect fines changing
// between page render and submission. Never persisted durably.
type PaymentFingerprint struct {
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
}

// UnresolvedReport is the payload published to the operator reporting sink
// for paid-but-unregistered transactions.
type UnresolvedReport struct {
	TransactionID string `json:"transaction_id"`
	PatronID      string `json:"patron_id"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message,omitempty"`
}
