package models

import (
	"time"

	"github.com/google/uuid"
)

// Fee is a billable line item bound to exactly one transaction.
// Immutable after creation.
type Fee struct {
	ID             uuid.UUID `json:"id" db:"id"`
	TransactionID  uuid.UUID `json:"transaction_id" db:"transaction_id"`
	Title          string    `json:"title" db:"title"`
	Type           string    `json:"type" db:"type"`
	Description    string    `json:"description" db:"description"`
	Amount         int64     `json:"amount" db:"amount"`
	Currency       string    `json:"currency" db:"currency"`
	FineID         *string   `json:"fine_id,omitempty" db:"fine_id"`
	OrganizationID *string   `json:"organization_id,omitempty" db:"organization_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
