package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tkoskela/libpay/services/payment TransactionRepo,UserRepo,PolicyCache

// TransactionRepo persists transactions, fee lines and the append-only
// audit event log. The transaction row is the single source of truth;
// all coordination between concurrent registration attempts happens
// through it.
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	CreateFees(ctx context.Context, fees []*models.Fee) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByExternalID(ctx context.Context, externalID string) (*models.Transaction, error)
	GetFees(ctx context.Context, transactionID uuid.UUID) ([]*models.Fee, error)

	// UpdateStatus applies one status edge. The write is conditional on the
	// current status so an unreachable edge affects zero rows and returns
	// ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus, message string) error
	MarkPaid(ctx context.Context, id uuid.UUID, gatewayTransactionID string, transactionFee int64) error
	MarkReported(ctx context.Context, id uuid.UUID) error

	// TryStartRegistration claims the advisory registration lock in a single
	// conditional update. It returns false when another attempt started
	// within ttl and still holds the lock.
	TryStartRegistration(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error)

	IsPaymentInProgress(ctx context.Context, userID uuid.UUID) (bool, error)
	GetFailedTransactions(ctx context.Context, minPaidAge time.Duration) ([]*models.Transaction, error)
	GetUnresolvedTransactions(ctx context.Context, interval time.Duration) ([]*models.Transaction, error)

	CreateEvent(ctx context.Context, event *models.TransactionEvent) error
	ListEvents(ctx context.Context, transactionID uuid.UUID) ([]*models.TransactionEvent, error)
}

// UserRepo looks up patron accounts and their stored library cards
type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByCardUsername(ctx context.Context, username string) (*models.User, error)
	GetCardsByUsername(ctx context.Context, userID uuid.UUID, username string) ([]*models.LibraryCard, error)
}

// PolicyCache caches the ILS online-payment policy per card username
type PolicyCache interface {
	GetPolicy(ctx context.Context, cardUsername string) (*models.PaymentPolicy, error)
	SetPolicy(ctx context.Context, cardUsername string, policy *models.PaymentPolicy) error
}
