package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

func TestResolvePatron_CurrentCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	encrypted, err := m.cipher.Encrypt("hunter2")
	require.NoError(t, err)

	user := &models.User{
		ID:           tx.UserID,
		CardUsername: tx.CardUsername,
		CardPassword: encrypted,
	}
	patron := testPatron()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "hunter2").
		Return(patron, nil)

	resolved, err := uc.ResolvePatron(context.Background(), tx)

	assert.NoError(t, err)
	assert.Equal(t, patron, resolved)
}

func TestResolvePatron_FallsBackToStoredCards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	staleEncrypted, err := m.cipher.Encrypt("old-password")
	require.NoError(t, err)
	goodEncrypted, err := m.cipher.Encrypt("new-password")
	require.NoError(t, err)

	// The account's current card no longer matches what the transaction
	// recorded; only the stored card history can produce valid credentials.
	user := &models.User{
		ID:           tx.UserID,
		CardUsername: "relinked-card",
		CardPassword: staleEncrypted,
	}
	cards := []*models.LibraryCard{
		{ID: uuid.New(), UserID: tx.UserID, Username: tx.CardUsername, EncryptedPassword: staleEncrypted},
		{ID: uuid.New(), UserID: tx.UserID, Username: tx.CardUsername, EncryptedPassword: goodEncrypted},
	}
	patron := testPatron()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(user, nil)
	m.userRepo.EXPECT().
		GetCardsByUsername(gomock.Any(), tx.UserID, tx.CardUsername).
		Return(cards, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "old-password").
		Return(nil, errors.New("authentication failed"))
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "new-password").
		Return(patron, nil)

	resolved, err := uc.ResolvePatron(context.Background(), tx)

	assert.NoError(t, err)
	assert.Equal(t, patron, resolved)
}

func TestResolvePatron_RotatedPasswordTriesCardsAfterCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	staleEncrypted, err := m.cipher.Encrypt("rotated-away")
	require.NoError(t, err)
	goodEncrypted, err := m.cipher.Encrypt("current-password")
	require.NoError(t, err)

	user := &models.User{
		ID:           tx.UserID,
		CardUsername: tx.CardUsername,
		CardPassword: staleEncrypted,
	}
	cards := []*models.LibraryCard{
		{ID: uuid.New(), UserID: tx.UserID, Username: tx.CardUsername, EncryptedPassword: goodEncrypted},
	}
	patron := testPatron()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "rotated-away").
		Return(nil, errors.New("authentication failed"))
	m.userRepo.EXPECT().
		GetCardsByUsername(gomock.Any(), tx.UserID, tx.CardUsername).
		Return(cards, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "current-password").
		Return(patron, nil)

	resolved, err := uc.ResolvePatron(context.Background(), tx)

	assert.NoError(t, err)
	assert.Equal(t, patron, resolved)
}

func TestResolvePatron_AllCredentialsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	encrypted, err := m.cipher.Encrypt("wrong-everywhere")
	require.NoError(t, err)

	user := &models.User{
		ID:           tx.UserID,
		CardUsername: tx.CardUsername,
		CardPassword: encrypted,
	}
	cards := []*models.LibraryCard{
		{ID: uuid.New(), UserID: tx.UserID, Username: tx.CardUsername, EncryptedPassword: encrypted},
	}

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(user, nil)
	m.ils.EXPECT().
		Login(gomock.Any(), tx.CardUsername, "wrong-everywhere").
		Return(nil, errors.New("authentication failed")).
		Times(2)
	m.userRepo.EXPECT().
		GetCardsByUsername(gomock.Any(), tx.UserID, tx.CardUsername).
		Return(cards, nil)

	resolved, err := uc.ResolvePatron(context.Background(), tx)

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, payment.ErrAuthenticationFailure)
}

func TestResolvePatron_OwnerLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)
	tx := paidTransaction()

	m.userRepo.EXPECT().
		GetUserByID(gomock.Any(), tx.UserID).
		Return(nil, errors.New("connection refused"))

	resolved, err := uc.ResolvePatron(context.Background(), tx)

	assert.Nil(t, resolved)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve transaction owner")
}
