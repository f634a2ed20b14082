package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	natspkg "github.com/tkoskela/libpay/internal/pkg/nats"
)

// NATSGateway publishes payment lifecycle events for downstream consumers
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPaymentEvent publishes a payment event to the given subject
func (g *NATSGateway) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	if err := g.client.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	logger.Debug("Published payment event",
		logger.String("subject", subject),
		logger.String("transaction_id", event.TransactionID),
		logger.String("status", string(event.Status)))

	return nil
}
