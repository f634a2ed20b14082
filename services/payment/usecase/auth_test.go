package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtpkg "github.com/tkoskela/libpay/internal/pkg/jwt"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	user := &models.User{
		ID:           uuid.New(),
		CardUsername: "12345678",
	}

	m.ils.EXPECT().
		Login(gomock.Any(), "12345678", "hunter2").
		Return(testPatron(), nil)
	m.userRepo.EXPECT().
		GetUserByCardUsername(gomock.Any(), "12345678").
		Return(user, nil)

	resp, err := uc.Login(context.Background(), "12345678", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.NotEmpty(t, resp.Token)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), (*claims)["user_id"])
	assert.Equal(t, "12345678", (*claims)["card_username"])
}

func TestLogin_ILSRejectsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestUC(t, ctrl)

	m.ils.EXPECT().
		Login(gomock.Any(), "12345678", "wrong").
		Return(nil, errors.New("authentication failed"))

	resp, err := uc.Login(context.Background(), "12345678", "wrong")

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestLogin_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUC(t, ctrl)

	resp, err := uc.Login(context.Background(), "", "")

	assert.Nil(t, resp)
	assert.Error(t, err)
}
