package payment

import "errors"

var (
	// ErrTransactionNotFound means no transaction row matches the lookup
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrUserNotFound means the owning user no longer exists
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidTransition means the requested status edge is not in the
	// transition table
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrAmountMismatch means the gateway-reported amount disagrees with
	// the transaction
	ErrAmountMismatch = errors.New("amount does not match transaction")
	// ErrAuthenticationFailure means no stored credential could log the
	// patron into the ILS
	ErrAuthenticationFailure = errors.New("no valid ILS credentials for patron")
	// ErrPaymentInProgress means the patron already has an unresolved
	// transaction and may not start a new payment
	ErrPaymentInProgress = errors.New("another payment is still being processed")
	// ErrInvalidSignature means the gateway callback signature check failed
	ErrInvalidSignature = errors.New("invalid gateway signature")
	// ErrNothingPayable means the patron has no payable fines to pay
	ErrNothingPayable = errors.New("no payable fines")
)
