package usecase

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/crypto"
	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/internal/pkg/requestcontext"
	"github.com/tkoskela/libpay/services/payment"
)

// PaymentUseCase implements the payment.PaymentUC interface
type PaymentUseCase struct {
	cfg         *models.Config
	txRepo      payment.TransactionRepo
	userRepo    payment.UserRepo
	policyCache payment.PolicyCache
	ils         payment.ILSClient
	gw          payment.PaymentGW
	cipher      *crypto.Cipher
	hostname    string
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	cfg *models.Config,
	txRepo payment.TransactionRepo,
	userRepo payment.UserRepo,
	policyCache payment.PolicyCache,
	ils payment.ILSClient,
	gw payment.PaymentGW,
	cipher *crypto.Cipher,
) *PaymentUseCase {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return &PaymentUseCase{
		cfg:         cfg,
		txRepo:      txRepo,
		userRepo:    userRepo,
		policyCache: policyCache,
		ils:         ils,
		gw:          gw,
		cipher:      cipher,
		hostname:    hostname,
	}
}

// registrationTTL returns the advisory-lock TTL for registration attempts
func (u *PaymentUseCase) registrationTTL() time.Duration {
	if u.cfg.Payment.RegistrationTTLSeconds > 0 {
		return time.Duration(u.cfg.Payment.RegistrationTTLSeconds) * time.Second
	}
	return models.RegistrationTTL
}

// appendEvent appends one audit record to the transaction's event log.
// Audit writes are best-effort: a failed insert is logged but never rolls
// back the state transition it documents.
func (u *PaymentUseCase) appendEvent(ctx context.Context, transactionID uuid.UUID, message string, data map[string]interface{}) {
	event := &models.TransactionEvent{
		TransactionID: transactionID,
		ServerIP:      requestcontext.GetClientIP(ctx),
		ServerName:    u.hostname,
		RequestPath:   requestcontext.GetRequestPath(ctx),
		Message:       message,
	}

	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			logger.Warn("Failed to marshal event data",
				logger.String("transaction_id", transactionID.String()),
				logger.Err(err))
		} else {
			event.Data = payload
		}
	}

	if err := u.txRepo.CreateEvent(ctx, event); err != nil {
		logger.Error("Failed to append transaction event",
			logger.String("transaction_id", transactionID.String()),
			logger.String("message", message),
			logger.Err(err))
	}
}

// publishEvent publishes a payment lifecycle event; failures are logged
// and never propagated
func (u *PaymentUseCase) publishEvent(ctx context.Context, subject string, tx *models.Transaction) {
	if u.gw == nil {
		return
	}

	event := &models.PaymentEvent{
		TransactionID: tx.ID.String(),
		UserID:        tx.UserID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        tx.Status,
		Timestamp:     time.Now().UTC(),
	}

	if err := u.gw.PublishPaymentEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish payment event",
			logger.String("subject", subject),
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
	}
}
