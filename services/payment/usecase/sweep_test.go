package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

func TestRetryFailedTransactions_ExpiresOldTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	paidAt := time.Now().Add(-100 * time.Hour)
	tx := paidTransaction()
	tx.Status = models.StatusRegistrationFailed
	tx.PaidAt = &paidAt

	m.txRepo.EXPECT().
		GetFailedTransactions(gomock.Any(), 120*time.Second).
		Return([]*models.Transaction{tx}, nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), tx.ID, models.StatusRegistrationFailed, models.StatusRegistrationExpired, gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		MarkReported(gomock.Any(), tx.ID).
		Return(nil)
	m.gw.EXPECT().
		PublishPaymentEvent(gomock.Any(), "payments.unresolved", gomock.Any()).
		Return(nil)

	err := uc.RetryFailedTransactions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusRegistrationExpired, tx.Status)
}

func TestRetryFailedTransactions_RegistersRecoverableTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	paidAt := time.Now().Add(-10 * time.Minute)
	tx := paidTransaction()
	tx.Status = models.StatusRegistrationFailed
	tx.PaidAt = &paidAt

	encrypted, err := m.cipher.Encrypt("hunter2")
	require.NoError(t, err)

	user := &models.User{
		ID:           tx.UserID,
		CardUsername: tx.CardUsername,
		CardPassword: encrypted,
	}
	patron := testPatron()

	m.txRepo.EXPECT().
		GetFailedTransactions(gomock.Any(), 120*time.Second).
		Return([]*models.Transaction{tx}, nil)
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "hunter2").
		Return(patron, nil)
	m.txRepo.EXPECT().
		TryStartRegistration(gomock.Any(), tx.ID, gomock.Any()).
		Return(true, nil)
	m.policyCache.EXPECT().
		GetPolicy(gomock.Any(), patron.CatUsername).
		Return(&models.PaymentPolicy{}, nil)
	m.ils.EXPECT().
		ClearFees(gomock.Any(), patron, gomock.Any()).
		Return(&payment.ClearResult{Outcome: payment.ClearOK}, nil)
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), tx.ID, models.StatusRegistrationFailed, models.StatusComplete, "").
		Return(nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	m.gw.EXPECT().
		PublishPaymentEvent(gomock.Any(), "payments.registered", gomock.Any()).
		Return(nil)

	assert.NoError(t, uc.RetryFailedTransactions(context.Background()))
	assert.Equal(t, models.StatusComplete, tx.Status)
}

func TestRetryFailedTransactions_SkipsUnresolvablePatron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	paidAt := time.Now().Add(-10 * time.Minute)
	tx := paidTransaction()
	tx.PaidAt = &paidAt

	m.txRepo.EXPECT().
		GetFailedTransactions(gomock.Any(), 120*time.Second).
		Return([]*models.Transaction{tx}, nil)
	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(nil, errors.New("connection refused"))

	// The sweep keeps going; the transaction is picked up again next run.
	assert.NoError(t, uc.RetryFailedTransactions(context.Background()))
	assert.Equal(t, models.StatusPaid, tx.Status)
}

func TestRetryFailedTransactions_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	m.txRepo.EXPECT().
		GetFailedTransactions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := uc.RetryFailedTransactions(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list failed transactions")
}

func TestReportUnresolvedTransactions_PublishesAndStamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	first := paidTransaction()
	first.Status = models.StatusFinesUpdated
	second := paidTransaction()
	second.Status = models.StatusRegistrationExpired

	m.txRepo.EXPECT().
		GetUnresolvedTransactions(gomock.Any(), 24*time.Hour).
		Return([]*models.Transaction{first, second}, nil)
	m.gw.EXPECT().
		PublishPaymentEvent(gomock.Any(), "payments.unresolved", gomock.Any()).
		Return(nil).Times(2)
	m.txRepo.EXPECT().MarkReported(gomock.Any(), first.ID).Return(nil)
	m.txRepo.EXPECT().MarkReported(gomock.Any(), second.ID).Return(nil)
	m.txRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.TransactionEvent) error {
			assert.Equal(t, "Unresolved transaction reported", event.Message)
			return nil
		}).Times(2)

	assert.NoError(t, uc.ReportUnresolvedTransactions(context.Background()))
}

func TestReportUnresolvedTransactions_StampFailureSkipsAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	tx := paidTransaction()
	tx.Status = models.StatusFinesUpdated

	m.txRepo.EXPECT().
		GetUnresolvedTransactions(gomock.Any(), 24*time.Hour).
		Return([]*models.Transaction{tx}, nil)
	m.gw.EXPECT().
		PublishPaymentEvent(gomock.Any(), "payments.unresolved", gomock.Any()).
		Return(nil)
	m.txRepo.EXPECT().
		MarkReported(gomock.Any(), tx.ID).
		Return(errors.New("connection refused"))

	assert.NoError(t, uc.ReportUnresolvedTransactions(context.Background()))
}
