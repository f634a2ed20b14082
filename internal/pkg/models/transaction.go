package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TransactionStatus represents the lifecycle state of a payment transaction
type TransactionStatus string

const (
	StatusProgress             TransactionStatus = "PROGRESS"
	StatusPaid                 TransactionStatus = "PAID"
	StatusComplete             TransactionStatus = "COMPLETE"
	StatusCanceled             TransactionStatus = "CANCELED"
	StatusPaymentFailed        TransactionStatus = "PAYMENT_FAILED"
	StatusRegistrationFailed   TransactionStatus = "REGISTRATION_FAILED"
	StatusRegistrationExpired  TransactionStatus = "REGISTRATION_EXPIRED"
	StatusRegistrationResolved TransactionStatus = "REGISTRATION_RESOLVED"
	StatusFinesUpdated         TransactionStatus = "FINES_UPDATED"
)

// RegistrationTTL is how long a started registration attempt holds the
// advisory lock before another attempt may claim the transaction.
const RegistrationTTL = 120 * time.Second

// validTransitions lists every reachable status edge. Writes outside this
// table are refused by the repository.
var validTransitions = map[TransactionStatus][]TransactionStatus{
	StatusProgress:            {StatusPaid, StatusCanceled, StatusPaymentFailed},
	StatusPaid:                {StatusComplete, StatusFinesUpdated, StatusRegistrationFailed, StatusRegistrationExpired},
	StatusRegistrationFailed:  {StatusComplete, StatusFinesUpdated, StatusRegistrationFailed, StatusRegistrationExpired},
	StatusFinesUpdated:        {StatusComplete, StatusRegistrationResolved},
	StatusRegistrationExpired: {StatusComplete, StatusRegistrationResolved},
}

// CanTransition reports whether the status edge from -> to is reachable
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transaction represents one online payment attempt for library fees.
// CardUsername is a copy taken at creation time; the owning user's live
// credentials may rotate before registration completes.
type Transaction struct {
	ID                    uuid.UUID         `json:"id" db:"id"`
	TransactionID         string            `json:"transaction_id" db:"transaction_id"`
	UserID                uuid.UUID         `json:"user_id" db:"user_id"`
	CardUsername          string            `json:"card_username" db:"card_username"`
	Amount                int64             `json:"amount" db:"amount"`
	TransactionFee        int64             `json:"transaction_fee" db:"transaction_fee"`
	Currency              string            `json:"currency" db:"currency"`
	Status                TransactionStatus `json:"status" db:"status"`
	StatusMessage         string            `json:"status_message" db:"status_message"`
	FineIDs               pq.StringArray    `json:"fine_ids,omitempty" db:"fine_ids"`
	CreatedAt             time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at" db:"updated_at"`
	PaidAt                *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	RegistrationStartedAt *time.Time        `json:"registration_started_at,omitempty" db:"registration_started_at"`
	ReportedAt            *time.Time        `json:"reported_at,omitempty" db:"reported_at"`
}

// IsInProgress reports whether a browser-facing flow may still be waiting
// on this transaction
func (t *Transaction) IsInProgress() bool {
	return t.Status == StatusProgress || t.Status == StatusRegistrationFailed
}

// NeedsRegistration reports whether the transaction is eligible for a
// registration attempt against the ILS
func (t *Transaction) NeedsRegistration() bool {
	return t.Status == StatusPaid || t.Status == StatusRegistrationFailed
}

// IsRegistered reports whether the fees were durably cleared in the ILS
func (t *Transaction) IsRegistered() bool {
	return t.Status == StatusComplete
}

// IsRegistrationInProgress reports whether a registration attempt started
// within ttl is still holding the advisory lock
func (t *Transaction) IsRegistrationInProgress(ttl time.Duration) bool {
	if t.RegistrationStartedAt == nil {
		return false
	}
	return time.Since(*t.RegistrationStartedAt) < ttl
}
