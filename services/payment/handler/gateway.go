package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/internal/utils"
	"github.com/tkoskela/libpay/services/payment"
)

// GatewayCallback handles the asynchronous server-to-server confirmation
// from the payment gateway. The gateway retries on non-2xx, so anything
// already handled answers 200.
func (h *PaymentHandler) GatewayCallback(c echo.Context) error {
	var notif models.GatewayNotification
	if err := c.Bind(&notif); err != nil {
		return utils.BadRequestResponse(c, "Invalid notification payload")
	}

	err := h.paymentUC.HandleGatewayCallback(c.Request().Context(), &notif)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			return utils.ForbiddenResponse(c, "Invalid signature")
		case errors.Is(err, payment.ErrTransactionNotFound):
			return utils.NotFoundResponse(c, "Unknown transaction")
		case errors.Is(err, payment.ErrAmountMismatch):
			return utils.BadRequestResponse(c, "Amount does not match transaction")
		default:
			logger.Error("gateway callback failed",
				logger.String("transaction_id", notif.TransactionID),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to process notification")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification processed", nil)
}

// GatewayReturn handles the patron's browser returning from the gateway.
// Registration trouble is reported as "processing" so the patron never
// sees an error for money already collected.
func (h *PaymentHandler) GatewayReturn(c echo.Context) error {
	transactionID := c.QueryParam("transaction_id")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "transaction_id is required")
	}

	status, err := h.paymentUC.HandleGatewayReturn(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Unknown transaction")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved", status)
}
