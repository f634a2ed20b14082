package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is one append-only audit record for a transaction.
// Events are never edited or removed; replayed in creation order they are
// the only reliable reconstruction of what happened across retries.
type TransactionEvent struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	ServerIP      string          `json:"server_ip" db:"server_ip"`
	ServerName    string          `json:"server_name" db:"server_name"`
	RequestPath   string          `json:"request_path" db:"request_path"`
	Message       string          `json:"message" db:"message"`
	Data          json.RawMessage `json:"data,omitempty" db:"data"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// PaymentEvent is the message published on NATS when a transaction reaches
// a terminal or parked state
type PaymentEvent struct {
	TransactionID string            `json:"transaction_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}
