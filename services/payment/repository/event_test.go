package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoskela/libpay/internal/pkg/models"
)

func TestCreateEvent(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	event := &models.TransactionEvent{
		TransactionID: uuid.New(),
		ServerName:    "payment-1",
		Message:       "Started registration with the ILS",
	}

	mock.ExpectExec("INSERT INTO transaction_events").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_CreationOrder(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	txID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "transaction_id", "server_ip", "server_name", "request_path", "message", "data", "created_at"}).
		AddRow(uuid.New(), txID, "10.0.0.1", "payment-1", "/api/v1/payments/gateway/callback", "Payment confirmed by gateway", nil, now.Add(-time.Minute)).
		AddRow(uuid.New(), txID, "10.0.0.1", "payment-1", "/api/v1/payments/gateway/callback", "Started registration with the ILS", nil, now)

	mock.ExpectQuery("^SELECT (.+) FROM transaction_events").
		WithArgs(txID).
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), txID)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Payment confirmed by gateway", events[0].Message)
	assert.Equal(t, "Started registration with the ILS", events[1].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
