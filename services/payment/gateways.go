package payment

import (
	"context"

	"github.com/tkoskela/libpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tkoskela/libpay/services/payment PaymentGW

// PaymentGW publishes payment lifecycle events for downstream consumers
// (receipt mailer, operator notifications)
type PaymentGW interface {
	PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error
}
