package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkoskela/libpay/internal/pkg/database"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

func setupPolicyCacheTest(t *testing.T) (*RedisPolicyCache, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisPolicyCache(&database.RedisClient{Client: db})
	return cache, mock
}

func TestGetPolicy_Hit(t *testing.T) {
	cache, mock := setupPolicyCacheTest(t)

	want := &models.PaymentPolicy{ExactBalanceRequired: true, SelectFines: true}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("libpay:policy:12345678").SetVal(string(data))

	got, err := cache.GetPolicy(context.Background(), "12345678")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ExactBalanceRequired)
	assert.True(t, got.SelectFines)
	assert.False(t, got.CreditUnsupported)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPolicy_MissReturnsNil(t *testing.T) {
	cache, mock := setupPolicyCacheTest(t)

	mock.ExpectGet("libpay:policy:12345678").RedisNil()

	got, err := cache.GetPolicy(context.Background(), "12345678")

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPolicy_Error(t *testing.T) {
	cache, mock := setupPolicyCacheTest(t)

	mock.ExpectGet("libpay:policy:12345678").SetErr(errors.New("connection refused"))

	got, err := cache.GetPolicy(context.Background(), "12345678")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestGetPolicy_CorruptPayload(t *testing.T) {
	cache, mock := setupPolicyCacheTest(t)

	mock.ExpectGet("libpay:policy:12345678").SetVal("{not json")

	got, err := cache.GetPolicy(context.Background(), "12345678")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestSetPolicy(t *testing.T) {
	cache, mock := setupPolicyCacheTest(t)

	policy := &models.PaymentPolicy{CreditUnsupported: true}
	data, err := json.Marshal(policy)
	require.NoError(t, err)

	mock.ExpectSet("libpay:policy:12345678", data, 5*time.Minute).SetVal("OK")

	assert.NoError(t, cache.SetPolicy(context.Background(), "12345678", policy))
	assert.NoError(t, mock.ExpectationsWereMet())
}
