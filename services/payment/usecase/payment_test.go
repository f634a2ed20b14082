package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

func signNotification(secret string, notif *models.GatewayNotification) {
	payload := fmt.Sprintf("%s|%s|%d|%s",
		notif.TransactionID, notif.GatewayTransactionID, notif.Amount, notif.Status)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	notif.Signature = hex.EncodeToString(mac.Sum(nil))
}

func TestCreatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	userID := uuid.New()

	encrypted, err := m.cipher.Encrypt("hunter2")
	require.NoError(t, err)

	user := &models.User{
		ID:           userID,
		CardUsername: "12345678",
		CardPassword: encrypted,
	}
	patron := testPatron()
	fines := []*models.Fine{
		{FineID: "fine-1", Title: "Overdue loan", Amount: 300, Currency: "EUR", Payable: true},
		{FineID: "fine-2", Title: "Lost item", Amount: 1200, Currency: "EUR", Payable: true},
		{FineID: "fine-3", Title: "Waived", Amount: 100, Currency: "EUR", Payable: false},
	}

	m.txRepo.EXPECT().
		IsPaymentInProgress(gomock.Any(), userID).
		Return(false, nil)
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), user.CardUsername, "hunter2").
		Return(patron, nil)
	m.policyCache.EXPECT().
		GetPolicy(gomock.Any(), patron.CatUsername).
		Return(&models.PaymentPolicy{}, nil)
	m.ils.EXPECT().
		ListFines(gomock.Any(), patron).
		Return(fines, nil)

	var created *models.Transaction
	m.txRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx *models.Transaction) error {
			created = tx
			return nil
		})
	m.txRepo.EXPECT().
		CreateFees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fees []*models.Fee) error {
			assert.Len(t, fees, 2)
			return nil
		})
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	tx, err := uc.CreatePayment(context.Background(), userID, &models.CreatePaymentRequest{})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, tx)
	assert.Equal(t, int64(1500), tx.Amount)
	assert.Equal(t, int64(50), tx.TransactionFee)
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, models.StatusProgress, tx.Status)
	assert.Equal(t, user.CardUsername, tx.CardUsername)
}

func TestCreatePayment_AlreadyInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	userID := uuid.New()

	m.txRepo.EXPECT().
		IsPaymentInProgress(gomock.Any(), userID).
		Return(true, nil)

	tx, err := uc.CreatePayment(context.Background(), userID, &models.CreatePaymentRequest{})

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payment.ErrPaymentInProgress)
}

func TestCreatePayment_NothingPayable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	userID := uuid.New()

	encrypted, err := m.cipher.Encrypt("hunter2")
	require.NoError(t, err)

	user := &models.User{ID: userID, CardUsername: "12345678", CardPassword: encrypted}
	patron := testPatron()

	m.txRepo.EXPECT().
		IsPaymentInProgress(gomock.Any(), userID).
		Return(false, nil)
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), user.CardUsername, "hunter2").
		Return(patron, nil)
	m.policyCache.EXPECT().
		GetPolicy(gomock.Any(), patron.CatUsername).
		Return(&models.PaymentPolicy{}, nil)
	m.ils.EXPECT().
		ListFines(gomock.Any(), patron).
		Return([]*models.Fine{
			{FineID: "fine-1", Amount: 300, Payable: false},
		}, nil)

	tx, err := uc.CreatePayment(context.Background(), userID, &models.CreatePaymentRequest{})

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payment.ErrNothingPayable)
}

func TestCreatePayment_SelectedFines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	userID := uuid.New()

	encrypted, err := m.cipher.Encrypt("hunter2")
	require.NoError(t, err)

	user := &models.User{ID: userID, CardUsername: "12345678", CardPassword: encrypted}
	patron := testPatron()

	m.txRepo.EXPECT().
		IsPaymentInProgress(gomock.Any(), userID).
		Return(false, nil)
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), user.CardUsername, "hunter2").
		Return(patron, nil)
	m.policyCache.EXPECT().
		GetPolicy(gomock.Any(), patron.CatUsername).
		Return(&models.PaymentPolicy{SelectFines: true}, nil)
	m.ils.EXPECT().
		ListFines(gomock.Any(), patron).
		Return([]*models.Fine{
			{FineID: "fine-1", Amount: 300, Currency: "EUR", Payable: true},
			{FineID: "fine-2", Amount: 1200, Currency: "EUR", Payable: true},
		}, nil)
	m.txRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	m.txRepo.EXPECT().
		CreateFees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fees []*models.Fee) error {
			assert.Len(t, fees, 1)
			return nil
		})
	m.txRepo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.CreatePayment(context.Background(), userID, &models.CreatePaymentRequest{
		FineIDs: []string{"fine-2"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1200), tx.Amount)
	assert.Equal(t, []string{"fine-2"}, []string(tx.FineIDs))
}

func TestGetPayment_OwnershipEnforced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)

	// A different user must not be able to read the transaction.
	detail, err := uc.GetPayment(context.Background(), uuid.New(), tx.ID)

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
}

func TestHandleGatewayCallback_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(t, ctrl)

	notif := &models.GatewayNotification{
		TransactionID:        uuid.New().String(),
		GatewayTransactionID: "gw-1234",
		Amount:               1500,
		Status:               "paid",
	}
	signNotification("wrong-secret", notif)

	err := uc.HandleGatewayCallback(context.Background(), notif)

	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestHandleGatewayCallback_PaymentFailedAtGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusProgress

	notif := &models.GatewayNotification{
		TransactionID:        tx.ID.String(),
		GatewayTransactionID: "gw-1234",
		Amount:               1500,
		Status:               "failed",
	}
	signNotification("gateway-secret", notif)

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), tx.ID, models.StatusProgress, models.StatusPaymentFailed, gomock.Any()).
		Return(nil)

	err := uc.HandleGatewayCallback(context.Background(), notif)

	assert.NoError(t, err)
}

func TestHandleGatewayCallback_AmountMismatchRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusProgress

	notif := &models.GatewayNotification{
		TransactionID:        tx.ID.String(),
		GatewayTransactionID: "gw-1234",
		Amount:               1400,
		Status:               "paid",
	}
	signNotification("gateway-secret", notif)

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.TransactionEvent) error {
			assert.Equal(t, "Gateway amount mismatch", ev.Message)
			return nil
		})

	err := uc.HandleGatewayCallback(context.Background(), notif)

	assert.ErrorIs(t, err, payment.ErrAmountMismatch)
}

func TestHandleGatewayCallback_MarksPaidAndLeavesForSweepWhenResolverFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusProgress
	tx.TransactionID = ""

	notif := &models.GatewayNotification{
		TransactionID:        tx.ID.String(),
		GatewayTransactionID: "gw-1234",
		Amount:               1500,
		TransactionFee:       50,
		Status:               "paid",
	}
	signNotification("gateway-secret", notif)

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	m.txRepo.EXPECT().
		MarkPaid(gomock.Any(), tx.ID, "gw-1234", int64(50)).
		Return(nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil)
	// Patron resolution fails; the transaction stays PAID for the sweep and
	// the webhook is still acknowledged.
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(nil, errors.New("connection refused"))

	err := uc.HandleGatewayCallback(context.Background(), notif)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPaid, tx.Status)
	assert.Equal(t, "gw-1234", tx.TransactionID)
}

func TestHandleGatewayCallback_DuplicateAfterCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusComplete

	notif := &models.GatewayNotification{
		TransactionID:        tx.ID.String(),
		GatewayTransactionID: "gw-1234",
		Amount:               1500,
		Status:               "paid",
	}
	signNotification("gateway-secret", notif)

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)

	// No MarkPaid, no registration: the transaction is already settled.
	err := uc.HandleGatewayCallback(context.Background(), notif)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusComplete, tx.Status)
}

func TestHandleGatewayReturn_RegistrationTroubleShowsProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusRegistrationFailed

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	// Resolution fails here; the patron must still see a calm answer.
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(nil, errors.New("connection refused"))

	resp, err := uc.HandleGatewayReturn(context.Background(), tx.ID.String())

	require.NoError(t, err)
	assert.Equal(t, tx.ID, resp.TransactionID)
	assert.Equal(t, "processing", resp.Display)
}

func TestHandleGatewayReturn_CompleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusComplete

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)

	resp, err := uc.HandleGatewayReturn(context.Background(), tx.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "complete", resp.Display)
}

func TestCancelPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()
	tx.Status = models.StatusProgress

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), tx.ID, models.StatusProgress, models.StatusCanceled, gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, uc.CancelPayment(context.Background(), tx.UserID, tx.ID))
}

func TestCancelPayment_AlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	m.txRepo.EXPECT().
		GetTransaction(gomock.Any(), tx.ID).
		Return(tx, nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), tx.ID, models.StatusPaid, models.StatusCanceled, gomock.Any()).
		Return(payment.ErrInvalidTransition)

	err := uc.CancelPayment(context.Background(), tx.UserID, tx.ID)

	assert.ErrorIs(t, err, payment.ErrInvalidTransition)
}
