package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

const transactionColumns = `
	id, transaction_id, user_id, card_username, amount, transaction_fee,
	currency, status, status_message, fine_ids, created_at, updated_at,
	paid_at, registration_started_at, reported_at
`

// CreateTransaction creates a new transaction row in PROGRESS
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	if tx.Status == "" {
		tx.Status = models.StatusProgress
	}

	query := `
		INSERT INTO transactions (id, transaction_id, user_id, card_username,
			amount, transaction_fee, currency, status, status_message,
			fine_ids, created_at, updated_at
		) VALUES (:id, :transaction_id, :user_id, :card_username,
			:amount, :transaction_fee, :currency, :status, :status_message,
			:fine_ids, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// CreateFees inserts the fee line items bound to a transaction
func (r *TransactionRepo) CreateFees(ctx context.Context, fees []*models.Fee) error {
	if len(fees) == 0 {
		return nil
	}

	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO fees (id, transaction_id, title, type, description,
			amount, currency, fine_id, organization_id, created_at
		) VALUES (:id, :transaction_id, :title, :type, :description,
			:amount, :currency, :fine_id, :organization_id, :created_at)
	`
	for _, fee := range fees {
		if fee.ID == uuid.Nil {
			fee.ID = uuid.New()
		}
		if fee.CreatedAt.IsZero() {
			fee.CreatedAt = time.Now()
		}
		if _, err := dbTx.NamedExecContext(ctx, query, fee); err != nil {
			return fmt.Errorf("failed to insert fee: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fees: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by its internal id
func (r *TransactionRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// GetTransactionByExternalID retrieves a transaction by the identifier the
// gateway issued for it
func (r *TransactionRepo) GetTransactionByExternalID(ctx context.Context, externalID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE transaction_id = $1`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// GetFees retrieves the fee lines bound to a transaction
func (r *TransactionRepo) GetFees(ctx context.Context, transactionID uuid.UUID) ([]*models.Fee, error) {
	query := `
		SELECT id, transaction_id, title, type, description, amount,
			currency, fine_id, organization_id, created_at
		FROM fees
		WHERE transaction_id = $1
		ORDER BY created_at
	`

	var fees []*models.Fee
	if err := r.db.SelectContext(ctx, &fees, query, transactionID); err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}

	return fees, nil
}

// UpdateStatus applies one status edge. The edge is validated against the
// transition table and the write is conditional on the current status, so
// a concurrent writer that got there first makes this a no-op error rather
// than a silent overwrite.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus, message string) error {
	if !models.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", payment.ErrInvalidTransition, from, to)
	}

	query := `
		UPDATE transactions
		SET status = $1, status_message = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, to, message, time.Now(), id, from)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s -> %s", payment.ErrInvalidTransition, from, to)
	}

	return nil
}

// MarkPaid records the gateway confirmation: PROGRESS -> PAID with the
// paid timestamp and the gateway's transaction identifier
func (r *TransactionRepo) MarkPaid(ctx context.Context, id uuid.UUID, gatewayTransactionID string, transactionFee int64) error {
	now := time.Now()
	query := `
		UPDATE transactions
		SET status = $1, transaction_id = $2, transaction_fee = $3,
			paid_at = $4, updated_at = $4
		WHERE id = $5 AND status = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		models.StatusPaid, gatewayTransactionID, transactionFee, now, id, models.StatusProgress)
	if err != nil {
		return fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s -> %s", payment.ErrInvalidTransition, models.StatusProgress, models.StatusPaid)
	}

	return nil
}

// MarkReported stamps the reported timestamp after an unresolved
// transaction was included in an operator notification
func (r *TransactionRepo) MarkReported(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE transactions SET reported_at = $1, updated_at = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to mark transaction reported: %w", err)
	}
	return nil
}

// TryStartRegistration claims the advisory registration lock in a single
// conditional update, avoiding the check-then-act race between the read of
// registration_started_at and its write. Returns false when another attempt
// started within ttl and still holds the lock.
func (r *TransactionRepo) TryStartRegistration(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error) {
	query := `
		UPDATE transactions
		SET registration_started_at = $1, updated_at = $1
		WHERE id = $2
			AND (registration_started_at IS NULL OR registration_started_at < $3)
	`
	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, id, now.Add(-ttl))
	if err != nil {
		return false, fmt.Errorf("failed to claim registration lock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

// IsPaymentInProgress reports whether the patron has any unresolved
// transaction; starting a second payment while one is unresolved risks
// charging twice for the same fees
func (r *TransactionRepo) IsPaymentInProgress(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE user_id = $1 AND status IN ($2, $3, $4, $5)
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID,
		models.StatusPaid, models.StatusRegistrationFailed,
		models.StatusRegistrationExpired, models.StatusFinesUpdated)
	if err != nil {
		return false, fmt.Errorf("failed to count in-progress payments: %w", err)
	}

	return count > 0, nil
}

// GetFailedTransactions returns transactions needing a registration retry:
// REGISTRATION_FAILED with a paid timestamp, or PAID longer than minPaidAge
// with no successful registration (an attempt that silently stalled)
func (r *TransactionRepo) GetFailedTransactions(ctx context.Context, minPaidAge time.Duration) ([]*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE (status = $1 AND paid_at IS NOT NULL)
			OR (status = $2 AND paid_at IS NOT NULL AND paid_at < $3)
		ORDER BY paid_at
	`, transactionColumns)

	var txs []*models.Transaction
	err := r.db.SelectContext(ctx, &txs, query,
		models.StatusRegistrationFailed, models.StatusPaid, time.Now().Add(-minPaidAge))
	if err != nil {
		return nil, fmt.Errorf("failed to list failed transactions: %w", err)
	}

	return txs, nil
}

// GetUnresolvedTransactions returns parked transactions that have not been
// reported within the given interval, for operator notification
func (r *TransactionRepo) GetUnresolvedTransactions(ctx context.Context, interval time.Duration) ([]*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE status IN ($1, $2)
			AND paid_at IS NOT NULL
			AND (reported_at IS NULL OR reported_at < $3)
		ORDER BY paid_at
	`, transactionColumns)

	var txs []*models.Transaction
	err := r.db.SelectContext(ctx, &txs, query,
		models.StatusFinesUpdated, models.StatusRegistrationExpired, time.Now().Add(-interval))
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved transactions: %w", err)
	}

	return txs, nil
}
