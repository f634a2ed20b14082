package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TransactionRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func transactionRows(tx *models.Transaction) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "transaction_id", "user_id", "card_username", "amount",
		"transaction_fee", "currency", "status", "status_message", "fine_ids",
		"created_at", "updated_at", "paid_at", "registration_started_at", "reported_at",
	}).AddRow(
		tx.ID, tx.TransactionID, tx.UserID, tx.CardUsername, tx.Amount,
		tx.TransactionFee, tx.Currency, tx.Status, tx.StatusMessage, nil,
		tx.CreatedAt, tx.UpdatedAt, tx.PaidAt, tx.RegistrationStartedAt, tx.ReportedAt,
	)
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	tx := &models.Transaction{
		UserID:       uuid.New(),
		CardUsername: "12345678",
		Amount:       1500,
		Currency:     "EUR",
	}

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTransaction(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, models.StatusProgress, tx.Status)
	assert.False(t, tx.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := repo.GetTransaction(context.Background(), id)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_Success(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	want := &models.Transaction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		CardUsername: "12345678",
		Amount:       1500,
		Currency:     "EUR",
		Status:       models.StatusPaid,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
		WithArgs(want.ID).
		WillReturnRows(transactionRows(want))

	got, err := repo.GetTransaction(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Amount, got.Amount)
	assert.Equal(t, models.StatusPaid, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, models.StatusPaid, models.StatusComplete, "")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_UnreachableEdgeRejectedBeforeWrite(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// COMPLETE is terminal: the repository refuses the edge without touching
	// the database.
	err := repo.UpdateStatus(context.Background(), uuid.New(),
		models.StatusComplete, models.StatusPaid, "")

	assert.ErrorIs(t, err, payment.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ConcurrentWriterWins(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// The edge is valid but another writer changed the row first: the
	// conditional update affects zero rows.
	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(),
		models.StatusPaid, models.StatusComplete, "")

	assert.ErrorIs(t, err, payment.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaid_RequiresProgress(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkPaid(context.Background(), uuid.New(), "gw-1234", 50)

	assert.ErrorIs(t, err, payment.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryStartRegistration_ClaimsLock(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.TryStartRegistration(context.Background(), uuid.New(), 120*time.Second)

	assert.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryStartRegistration_LockHeld(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// Another attempt started within the TTL; the conditional update does
	// not match the row.
	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.TryStartRegistration(context.Background(), uuid.New(), 120*time.Second)

	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryStartRegistration_QueryError(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE transactions").
		WillReturnError(errors.New("connection refused"))

	claimed, err := repo.TryStartRegistration(context.Background(), uuid.New(), 120*time.Second)

	assert.Error(t, err)
	assert.False(t, claimed)
}

func TestIsPaymentInProgress(t *testing.T) {
	testCases := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "no unresolved transactions", count: 0, want: false},
		{name: "one unresolved transaction", count: 1, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			userID := uuid.New()
			mock.ExpectQuery("^SELECT COUNT").
				WithArgs(userID,
					string(models.StatusPaid), string(models.StatusRegistrationFailed),
					string(models.StatusRegistrationExpired), string(models.StatusFinesUpdated)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.count))

			got, err := repo.IsPaymentInProgress(context.Background(), userID)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetFailedTransactions(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	paidAt := time.Now().Add(-1 * time.Hour)
	tx := &models.Transaction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		CardUsername: "12345678",
		Amount:       1500,
		Currency:     "EUR",
		Status:       models.StatusRegistrationFailed,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		PaidAt:       &paidAt,
	}

	mock.ExpectQuery("^SELECT (.+) FROM transactions").
		WillReturnRows(transactionRows(tx))

	txs, err := repo.GetFailedTransactions(context.Background(), 120*time.Second)

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.Equal(t, models.StatusRegistrationFailed, txs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnresolvedTransactions(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	paidAt := time.Now().Add(-48 * time.Hour)
	tx := &models.Transaction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		CardUsername: "12345678",
		Amount:       1500,
		Currency:     "EUR",
		Status:       models.StatusFinesUpdated,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		PaidAt:       &paidAt,
	}

	mock.ExpectQuery("^SELECT (.+) FROM transactions").
		WillReturnRows(transactionRows(tx))

	txs, err := repo.GetUnresolvedTransactions(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.StatusFinesUpdated, txs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
