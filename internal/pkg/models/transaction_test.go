package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name string
		from TransactionStatus
		to   TransactionStatus
		want bool
	}{
		{name: "progress to paid", from: StatusProgress, to: StatusPaid, want: true},
		{name: "progress to canceled", from: StatusProgress, to: StatusCanceled, want: true},
		{name: "progress to payment failed", from: StatusProgress, to: StatusPaymentFailed, want: true},
		{name: "paid to complete", from: StatusPaid, to: StatusComplete, want: true},
		{name: "paid to fines updated", from: StatusPaid, to: StatusFinesUpdated, want: true},
		{name: "paid to registration failed", from: StatusPaid, to: StatusRegistrationFailed, want: true},
		{name: "paid to registration expired", from: StatusPaid, to: StatusRegistrationExpired, want: true},
		{name: "registration failed retried to complete", from: StatusRegistrationFailed, to: StatusComplete, want: true},
		{name: "registration failed again", from: StatusRegistrationFailed, to: StatusRegistrationFailed, want: true},
		{name: "fines updated resolved by operator", from: StatusFinesUpdated, to: StatusRegistrationResolved, want: true},
		{name: "expired resolved by operator", from: StatusRegistrationExpired, to: StatusRegistrationResolved, want: true},

		{name: "progress straight to complete", from: StatusProgress, to: StatusComplete, want: false},
		{name: "paid back to progress", from: StatusPaid, to: StatusProgress, want: false},
		{name: "complete is terminal", from: StatusComplete, to: StatusPaid, want: false},
		{name: "canceled is terminal", from: StatusCanceled, to: StatusProgress, want: false},
		{name: "payment failed is terminal", from: StatusPaymentFailed, to: StatusPaid, want: false},
		{name: "resolved is terminal", from: StatusRegistrationResolved, to: StatusComplete, want: false},
		{name: "paid cannot be canceled", from: StatusPaid, to: StatusCanceled, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTransactionPredicates(t *testing.T) {
	tx := &Transaction{Status: StatusProgress}
	assert.True(t, tx.IsInProgress())
	assert.False(t, tx.NeedsRegistration())
	assert.False(t, tx.IsRegistered())

	tx.Status = StatusPaid
	assert.False(t, tx.IsInProgress())
	assert.True(t, tx.NeedsRegistration())

	tx.Status = StatusRegistrationFailed
	assert.True(t, tx.IsInProgress())
	assert.True(t, tx.NeedsRegistration())

	tx.Status = StatusComplete
	assert.False(t, tx.NeedsRegistration())
	assert.True(t, tx.IsRegistered())

	tx.Status = StatusFinesUpdated
	assert.False(t, tx.IsInProgress())
	assert.False(t, tx.NeedsRegistration())
}

func TestIsRegistrationInProgress(t *testing.T) {
	tx := &Transaction{}
	assert.False(t, tx.IsRegistrationInProgress(RegistrationTTL))

	recent := time.Now().Add(-30 * time.Second)
	tx.RegistrationStartedAt = &recent
	assert.True(t, tx.IsRegistrationInProgress(RegistrationTTL))

	stale := time.Now().Add(-3 * time.Minute)
	tx.RegistrationStartedAt = &stale
	assert.False(t, tx.IsRegistrationInProgress(RegistrationTTL))
}
