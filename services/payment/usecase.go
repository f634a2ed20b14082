package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tkoskela/libpay/services/payment PaymentUC

// PaymentUC is the payment usecase interface
type PaymentUC interface {
	// patron authentication
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)

	// payment lifecycle
	CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Transaction, error)
	GetPayment(ctx context.Context, userID, id uuid.UUID) (*models.TransactionDetail, error)
	CancelPayment(ctx context.Context, userID, id uuid.UUID) error

	// gateway confirmation
	HandleGatewayCallback(ctx context.Context, notif *models.GatewayNotification) error
	HandleGatewayReturn(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error)

	// reconciliation
	Reconcile(ctx context.Context, patron *models.Patron, tx *models.Transaction) bool
	ResolvePatron(ctx context.Context, tx *models.Transaction) (*models.Patron, error)

	// background sweep
	RetryFailedTransactions(ctx context.Context) error
	ReportUnresolvedTransactions(ctx context.Context) error
}
