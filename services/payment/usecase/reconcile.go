package usecase

import (
	"context"
	"fmt"

	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// Audit messages written by the reconciliation engine. Operators grep for
// these; changing them breaks existing diagnostics.
const (
	msgAlreadyRegistering  = "Transaction is already being registered"
	msgStartedRegistration = "Started registration with the ILS"
	msgRegistered          = "Successfully registered payment with the ILS"
	msgFinesUpdated        = "Registration aborted, fines have been updated"
	msgRegistrationFailed  = "Registration with the ILS failed"
)

// Reconcile takes a transaction already confirmed as paid and durably
// clears the matching fees in the ILS, exactly once. It may be invoked
// concurrently for the same transaction (duplicate webhook, duplicate user
// click, sweep overlapping a live callback); the advisory registration
// lock on the transaction row serializes the attempts.
//
// Every exit path leaves the transaction in a well-defined status with one
// terminal audit event appended. Internal faults are converted into a
// REGISTRATION_FAILED state; nothing propagates past this boundary.
func (u *PaymentUseCase) Reconcile(ctx context.Context, patron *models.Patron, tx *models.Transaction) bool {
	// Claim the advisory lock in a single conditional update. Two attempts
	// racing here cannot both win: the row is the arbiter.
	claimed, err := u.txRepo.TryStartRegistration(ctx, tx.ID, u.registrationTTL())
	if err != nil {
		logger.Error("Failed to claim registration lock",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return false
	}
	if !claimed {
		u.appendEvent(ctx, tx.ID, msgAlreadyRegistering, nil)
		return false
	}

	u.appendEvent(ctx, tx.ID, msgStartedRegistration, nil)

	policy, err := u.paymentPolicy(ctx, patron)
	if err != nil {
		u.failRegistration(ctx, tx, fmt.Sprintf("failed to read payment policy: %v", err), err)
		return false
	}

	var fineIDs []string
	if policy.SelectFines {
		fineIDs = tx.FineIDs
	}

	// Under an exact-match or no-credit policy the patron may only pay what
	// the ILS currently considers payable. If the fines changed between
	// checkout and now, park the transaction instead of clearing fees the
	// patron did not pay for.
	if policy.ExactBalanceRequired || policy.CreditUnsupported {
		summary, err := u.ils.GetCurrentFines(ctx, patron, fineIDs)
		if err != nil {
			u.failRegistration(ctx, tx, fmt.Sprintf("failed to read current fines: %v", err), err)
			return false
		}

		mismatch := (policy.ExactBalanceRequired && summary.Amount != tx.Amount) ||
			(policy.CreditUnsupported && tx.Amount > summary.Amount)
		if !summary.Payable || mismatch {
			u.parkFinesUpdated(ctx, tx, summary.Amount)
			return false
		}
	}

	result, err := u.ils.ClearFees(ctx, patron, &payment.ClearFeesRequest{
		Amount:               tx.Amount,
		Currency:             tx.Currency,
		GatewayTransactionID: tx.TransactionID,
		TransactionID:        tx.ID.String(),
		FineIDs:              fineIDs,
	})
	if err != nil {
		u.failRegistration(ctx, tx, err.Error(), err)
		return false
	}

	switch result.Outcome {
	case payment.ClearOK:
		if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusComplete, ""); err != nil {
			logger.Error("Failed to mark transaction complete",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
			return false
		}
		tx.Status = models.StatusComplete
		u.appendEvent(ctx, tx.ID, msgRegistered, nil)
		u.publishEvent(ctx, "payments.registered", tx)

		logger.Info("Registered payment with the ILS",
			logger.String("transaction_id", tx.ID.String()),
			logger.Int64("amount", tx.Amount),
			logger.String("currency", tx.Currency))
		return true

	case payment.ClearFinesUpdated:
		u.appendEvent(ctx, tx.ID, msgFinesUpdated, map[string]interface{}{"detail": result.Detail})
		if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusFinesUpdated, result.Detail); err != nil {
			logger.Error("Failed to park transaction as fines updated",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
		} else {
			tx.Status = models.StatusFinesUpdated
			u.publishEvent(ctx, "payments.unresolved", tx)
		}
		return false

	default:
		u.failRegistration(ctx, tx, result.Detail, nil)
		return false
	}
}

// paymentPolicy reads the ILS online-payment policy, going through the
// cache when possible. A cache error only costs us a direct ILS call.
func (u *PaymentUseCase) paymentPolicy(ctx context.Context, patron *models.Patron) (*models.PaymentPolicy, error) {
	if u.policyCache != nil {
		policy, err := u.policyCache.GetPolicy(ctx, patron.CatUsername)
		if err != nil {
			logger.Warn("Policy cache read failed",
				logger.String("cat_username", patron.CatUsername),
				logger.Err(err))
		} else if policy != nil {
			return policy, nil
		}
	}

	policy, err := u.ils.GetOnlinePaymentConfig(ctx, patron)
	if err != nil {
		return nil, err
	}

	if u.policyCache != nil {
		if err := u.policyCache.SetPolicy(ctx, patron.CatUsername, policy); err != nil {
			logger.Warn("Policy cache write failed",
				logger.String("cat_username", patron.CatUsername),
				logger.Err(err))
		}
	}

	return policy, nil
}

// parkFinesUpdated moves the transaction to FINES_UPDATED: the payable
// total no longer matches what was paid, so clearing must not proceed
func (u *PaymentUseCase) parkFinesUpdated(ctx context.Context, tx *models.Transaction, payable int64) {
	detail := fmt.Sprintf("paid %d, currently payable %d", tx.Amount, payable)
	u.appendEvent(ctx, tx.ID, msgFinesUpdated, map[string]interface{}{
		"paid_amount":    tx.Amount,
		"payable_amount": payable,
	})

	if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusFinesUpdated, detail); err != nil {
		logger.Error("Failed to park transaction as fines updated",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return
	}

	tx.Status = models.StatusFinesUpdated
	u.publishEvent(ctx, "payments.unresolved", tx)
}

// failRegistration moves the transaction to REGISTRATION_FAILED, keeping
// the failure detail for diagnosis and the sweep's automatic retry
func (u *PaymentUseCase) failRegistration(ctx context.Context, tx *models.Transaction, detail string, cause error) {
	data := map[string]interface{}{}
	if cause != nil {
		data["error"] = cause.Error()
	} else if detail != "" {
		data["error"] = detail
	}
	u.appendEvent(ctx, tx.ID, msgRegistrationFailed, data)

	if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusRegistrationFailed, detail); err != nil {
		logger.Error("Failed to mark registration failed",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return
	}

	tx.Status = models.StatusRegistrationFailed
	logger.Warn("Registration with the ILS failed",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("detail", detail))
}
