package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

// RetryFailedTransactions is one iteration of the background retry sweep:
// pick up every transaction whose registration failed or silently stalled
// and attempt registration again. Transactions that have been failing for
// longer than the configured give-up age are marked REGISTRATION_EXPIRED
// for operator resolution instead.
func (u *PaymentUseCase) RetryFailedTransactions(ctx context.Context) error {
	minPaidAge := time.Duration(u.cfg.Payment.MinPaidAgeSeconds) * time.Second

	txs, err := u.txRepo.GetFailedTransactions(ctx, minPaidAge)
	if err != nil {
		return fmt.Errorf("failed to list failed transactions: %w", err)
	}

	logger.Info("Retry sweep started", logger.Int("transactions", len(txs)))

	expireAfter := time.Duration(u.cfg.Payment.ExpireAfterHours) * time.Hour
	var registered, expired int

	for _, tx := range txs {
		if tx.PaidAt != nil && expireAfter > 0 && time.Since(*tx.PaidAt) > expireAfter {
			u.expireTransaction(ctx, tx)
			expired++
			continue
		}

		patron, err := u.ResolvePatron(ctx, tx)
		if err != nil {
			logger.Warn("Could not resolve patron during sweep",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
			continue
		}

		if u.Reconcile(ctx, patron, tx) {
			registered++
		}
	}

	logger.Info("Retry sweep finished",
		logger.Int("transactions", len(txs)),
		logger.Int("registered", registered),
		logger.Int("expired", expired))

	return nil
}

// expireTransaction gives up on a long-unresolved transaction
func (u *PaymentUseCase) expireTransaction(ctx context.Context, tx *models.Transaction) {
	u.appendEvent(ctx, tx.ID, "Registration attempts expired", map[string]interface{}{
		"paid_at": tx.PaidAt,
	})

	if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusRegistrationExpired, "registration retries exhausted"); err != nil {
		logger.Error("Failed to expire transaction",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return
	}

	if err := u.txRepo.MarkReported(ctx, tx.ID); err != nil {
		logger.Error("Failed to stamp reported timestamp",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
	}

	tx.Status = models.StatusRegistrationExpired
	u.publishEvent(ctx, "payments.unresolved", tx)
}

// ReportUnresolvedTransactions is one iteration of the operator-notification
// sweep: publish a notification for every parked transaction that has not
// been reported within the configured interval, and stamp it reported
func (u *PaymentUseCase) ReportUnresolvedTransactions(ctx context.Context) error {
	interval := time.Duration(u.cfg.Payment.ReportIntervalHours) * time.Hour

	txs, err := u.txRepo.GetUnresolvedTransactions(ctx, interval)
	if err != nil {
		return fmt.Errorf("failed to list unresolved transactions: %w", err)
	}

	logger.Info("Report sweep started", logger.Int("transactions", len(txs)))

	for _, tx := range txs {
		u.publishEvent(ctx, "payments.unresolved", tx)

		if err := u.txRepo.MarkReported(ctx, tx.ID); err != nil {
			logger.Error("Failed to stamp reported timestamp",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
			continue
		}

		u.appendEvent(ctx, tx.ID, "Unresolved transaction reported", nil)
	}

	return nil
}
