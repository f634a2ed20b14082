package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

// CreateEvent appends one audit record to a transaction's event log.
// Events are insert-only; there is no update or delete path.
func (r *TransactionRepo) CreateEvent(ctx context.Context, event *models.TransactionEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO transaction_events (id, transaction_id, server_ip,
			server_name, request_path, message, data, created_at
		) VALUES (:id, :transaction_id, :server_ip, :server_name,
			:request_path, :message, :data, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to insert transaction event: %w", err)
	}

	return nil
}

// ListEvents returns a transaction's audit trail in creation order
func (r *TransactionRepo) ListEvents(ctx context.Context, transactionID uuid.UUID) ([]*models.TransactionEvent, error) {
	query := `
		SELECT id, transaction_id, server_ip, server_name, request_path,
			message, data, created_at
		FROM transaction_events
		WHERE transaction_id = $1
		ORDER BY created_at, id
	`

	var events []*models.TransactionEvent
	if err := r.db.SelectContext(ctx, &events, query, transactionID); err != nil {
		return nil, fmt.Errorf("failed to list transaction events: %w", err)
	}

	return events, nil
}
