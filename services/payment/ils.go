package payment

import (
	"context"

	"github.com/tkoskela/libpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_ils.go -package=mocks github.com/tkoskela/libpay/services/payment ILSClient

// ClearOutcome tags the result of an ILS fee-clearing call
type ClearOutcome int

const (
	// ClearOK means the fees were durably cleared in the ILS
	ClearOK ClearOutcome = iota
	// ClearFinesUpdated means the ILS rejected the payment because the
	// payable fines changed since checkout
	ClearFinesUpdated
	// ClearFailed means the ILS rejected the payment for any other reason
	ClearFailed
)

// ClearResult is the tagged result of a fee-clearing call
type ClearResult struct {
	Outcome ClearOutcome
	Detail  string
}

// ClearFeesRequest carries everything the ILS needs to register a payment
type ClearFeesRequest struct {
	Amount               int64
	Currency             string
	GatewayTransactionID string
	TransactionID        string
	FineIDs              []string
}

// ILSClient is the capability the reconciliation engine consumes from the
// integrated library system. All calls block on the network and must honor
// the caller's context deadline.
type ILSClient interface {
	Login(ctx context.Context, username, password string) (*models.Patron, error)
	GetOnlinePaymentConfig(ctx context.Context, patron *models.Patron) (*models.PaymentPolicy, error)
	GetCurrentFines(ctx context.Context, patron *models.Patron, fineIDs []string) (*models.FineSummary, error)
	ListFines(ctx context.Context, patron *models.Patron) ([]*models.Fine, error)
	ClearFees(ctx context.Context, patron *models.Patron, req *ClearFeesRequest) (*ClearResult, error)
}
