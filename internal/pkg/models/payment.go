package models

import (
	"github.com/google/uuid"
)

// CreatePaymentRequest starts an online payment for the patron's current
// payable fines. FineIDs narrows the payment to specific fines when the
// ILS policy allows selecting them.
type CreatePaymentRequest struct {
	FineIDs []string `json:"fine_ids,omitempty"`
}

// GatewayNotification is the asynchronous confirmation posted by the
// payment gateway after money was collected
type GatewayNotification struct {
	TransactionID        string `json:"transaction_id" form:"transaction_id"`
	GatewayTransactionID string `json:"gateway_transaction_id" form:"gateway_transaction_id"`
	Amount               int64  `json:"amount" form:"amount"`
	TransactionFee       int64  `json:"transaction_fee" form:"transaction_fee"`
	Status               string `json:"status" form:"status"`
	Signature            string `json:"signature" form:"signature"`
}

// TransactionDetail is a transaction together with its fee lines and
// audit trail
type TransactionDetail struct {
	Transaction *Transaction        `json:"transaction"`
	Fees        []*Fee              `json:"fees"`
	Events      []*TransactionEvent `json:"events"`
}

// PaymentStatusResponse is the browser-facing view of a transaction;
// a patron whose payment is still being registered sees "processing",
// never an error
type PaymentStatusResponse struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	Display       string            `json:"display"`
}
