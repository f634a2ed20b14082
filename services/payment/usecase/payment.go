package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/tkoskela/libpay/internal/pkg/jwt"
	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// Login authenticates a patron against the ILS and issues a service token
func (u *PaymentUseCase) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	if _, err := u.ils.Login(ctx, username, password); err != nil {
		return nil, fmt.Errorf("ILS login failed: %w", err)
	}

	user, err := u.userRepo.GetUserByCardUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.CardUsername, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// CreatePayment starts an online payment for the patron's currently payable
// fines. A patron with an unresolved earlier transaction may not start a
// new one; paying the same fees twice is worse than waiting.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Transaction, error) {
	inProgress, err := u.txRepo.IsPaymentInProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment state: %w", err)
	}
	if inProgress {
		return nil, payment.ErrPaymentInProgress
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	password, err := u.cipher.Decrypt(user.CardPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt card password: %w", err)
	}

	patron, err := u.ils.Login(ctx, user.CardUsername, password)
	if err != nil {
		return nil, fmt.Errorf("ILS login failed: %w", err)
	}

	policy, err := u.paymentPolicy(ctx, patron)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment policy: %w", err)
	}

	fines, err := u.ils.ListFines(ctx, patron)
	if err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}

	selected := selectFines(fines, req.FineIDs, policy.SelectFines)
	if len(selected) == 0 {
		return nil, payment.ErrNothingPayable
	}

	tx := &models.Transaction{
		ID:             uuid.New(),
		UserID:         userID,
		CardUsername:   user.CardUsername,
		TransactionFee: u.cfg.Gateway.TransactionFee,
		Currency:       u.cfg.Payment.Currency,
		Status:         models.StatusProgress,
	}

	var fees []*models.Fee
	for _, fine := range selected {
		tx.Amount += fine.Amount
		if fine.Currency != "" {
			tx.Currency = fine.Currency
		}
		if policy.SelectFines {
			tx.FineIDs = append(tx.FineIDs, fine.FineID)
		}

		fee := &models.Fee{
			TransactionID: tx.ID,
			Title:         fine.Title,
			Type:          fine.Type,
			Description:   fine.Description,
			Amount:        fine.Amount,
			Currency:      fine.Currency,
		}
		if fine.FineID != "" {
			fineID := fine.FineID
			fee.FineID = &fineID
		}
		if fine.OrganizationID != "" {
			orgID := fine.OrganizationID
			fee.OrganizationID = &orgID
		}
		fees = append(fees, fee)
	}

	if err := u.txRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := u.txRepo.CreateFees(ctx, fees); err != nil {
		return nil, fmt.Errorf("failed to create fees: %w", err)
	}

	u.appendEvent(ctx, tx.ID, "Payment initiated", map[string]interface{}{
		"amount":   tx.Amount,
		"currency": tx.Currency,
		"fees":     len(fees),
	})

	return tx, nil
}

// selectFines filters the payable fines, restricted to requested fine ids
// when the policy allows selecting them
func selectFines(fines []*models.Fine, fineIDs []string, selectable bool) []*models.Fine {
	requested := map[string]bool{}
	if selectable {
		for _, id := range fineIDs {
			requested[id] = true
		}
	}

	var selected []*models.Fine
	for _, fine := range fines {
		if !fine.Payable {
			continue
		}
		if len(requested) > 0 && !requested[fine.FineID] {
			continue
		}
		selected = append(selected, fine)
	}

	return selected
}

// GetPayment returns a transaction with its fee lines and audit trail.
// Only the owner may read it.
func (u *PaymentUseCase) GetPayment(ctx context.Context, userID, id uuid.UUID) (*models.TransactionDetail, error) {
	tx, err := u.txRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, payment.ErrTransactionNotFound
	}

	fees, err := u.txRepo.GetFees(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := u.txRepo.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.TransactionDetail{
		Transaction: tx,
		Fees:        fees,
		Events:      events,
	}, nil
}

// CancelPayment cancels a transaction the patron abandoned before paying
func (u *PaymentUseCase) CancelPayment(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := u.txRepo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if tx.UserID != userID {
		return payment.ErrTransactionNotFound
	}

	if err := u.txRepo.UpdateStatus(ctx, id, tx.Status, models.StatusCanceled, "canceled by user"); err != nil {
		return err
	}

	u.appendEvent(ctx, id, "Payment canceled by user", nil)
	return nil
}

// HandleGatewayCallback processes the gateway's asynchronous payment
// confirmation: verify the HMAC signature, mark the transaction paid, then
// attempt registration with the ILS. A duplicate callback is harmless; the
// registration lock absorbs it.
func (u *PaymentUseCase) HandleGatewayCallback(ctx context.Context, notif *models.GatewayNotification) error {
	if !u.verifySignature(notif) {
		return payment.ErrInvalidSignature
	}

	id, err := uuid.Parse(notif.TransactionID)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q: %w", notif.TransactionID, err)
	}

	tx, err := u.txRepo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if !strings.EqualFold(notif.Status, "paid") {
		detail := fmt.Sprintf("gateway reported status %q", notif.Status)
		u.appendEvent(ctx, tx.ID, "Payment failed at the gateway", map[string]interface{}{
			"gateway_status": notif.Status,
		})
		if err := u.txRepo.UpdateStatus(ctx, tx.ID, tx.Status, models.StatusPaymentFailed, detail); err != nil {
			return err
		}
		return nil
	}

	// The gateway signs what it collected; a notification whose amount does
	// not match the transaction is refused outright.
	if notif.Amount != tx.Amount {
		u.appendEvent(ctx, tx.ID, "Gateway amount mismatch", map[string]interface{}{
			"expected_amount": tx.Amount,
			"reported_amount": notif.Amount,
		})
		return fmt.Errorf("%w: expected %d, gateway reported %d",
			payment.ErrAmountMismatch, tx.Amount, notif.Amount)
	}

	switch {
	case tx.Status == models.StatusProgress:
		if err := u.txRepo.MarkPaid(ctx, tx.ID, notif.GatewayTransactionID, notif.TransactionFee); err != nil {
			return err
		}
		tx.Status = models.StatusPaid
		tx.TransactionID = notif.GatewayTransactionID
		u.appendEvent(ctx, tx.ID, "Payment confirmed by gateway", map[string]interface{}{
			"gateway_transaction_id": notif.GatewayTransactionID,
			"amount":                 notif.Amount,
		})
	case tx.NeedsRegistration():
		// Duplicate callback for a transaction already marked paid; fall
		// through and let the registration lock sort out concurrency.
		logger.Debug("Duplicate gateway callback",
			logger.String("transaction_id", tx.ID.String()))
	default:
		// Already complete or parked; nothing to do.
		return nil
	}

	patron, err := u.ResolvePatron(ctx, tx)
	if err != nil {
		logger.Warn("Could not resolve patron for registration; leaving for the sweep",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return nil
	}

	u.Reconcile(ctx, patron, tx)
	return nil
}

// HandleGatewayReturn processes the browser's return from the gateway. The
// patron always sees "payment received, processing" semantics; correctness
// is restored asynchronously by the sweep when registration cannot complete
// here.
func (u *PaymentUseCase) HandleGatewayReturn(ctx context.Context, transactionID string) (*models.PaymentStatusResponse, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", transactionID, err)
	}

	tx, err := u.txRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.NeedsRegistration() {
		if patron, err := u.ResolvePatron(ctx, tx); err != nil {
			logger.Warn("Could not resolve patron on gateway return",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
		} else {
			u.Reconcile(ctx, patron, tx)
		}
	}

	return &models.PaymentStatusResponse{
		TransactionID: tx.ID,
		Status:        tx.Status,
		Display:       displayStatus(tx.Status),
	}, nil
}

// displayStatus maps internal statuses to what the patron should see.
// Registration trouble is never surfaced as an error; the payment was
// received and processing continues in the background.
func displayStatus(status models.TransactionStatus) string {
	switch status {
	case models.StatusComplete:
		return "complete"
	case models.StatusCanceled:
		return "canceled"
	case models.StatusPaymentFailed:
		return "failed"
	case models.StatusProgress:
		return "pending"
	default:
		return "processing"
	}
}

// verifySignature checks the HMAC-SHA256 signature the gateway computed
// over the notification with the shared secret
func (u *PaymentUseCase) verifySignature(notif *models.GatewayNotification) bool {
	payload := fmt.Sprintf("%s|%s|%d|%s",
		notif.TransactionID, notif.GatewayTransactionID, notif.Amount, notif.Status)

	mac := hmac.New(sha256.New, []byte(u.cfg.Gateway.Secret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	signature, err := hex.DecodeString(notif.Signature)
	if err != nil {
		return false
	}

	expectedBytes, _ := hex.DecodeString(expected)
	return hmac.Equal(signature, expectedBytes)
}
