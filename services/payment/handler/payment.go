package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tkoskela/libpay/internal/pkg/middleware"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/internal/utils"
	"github.com/tkoskela/libpay/services/payment"
)

// CreatePayment starts an online payment for the authenticated patron's
// payable fines
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	var request models.CreatePaymentRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.paymentUC.CreatePayment(c.Request().Context(), userID, &request)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrPaymentInProgress):
			return utils.ConflictResponse(c, "A payment is already in progress for this account")
		case errors.Is(err, payment.ErrNothingPayable):
			return utils.BadRequestResponse(c, "No payable fines for this account")
		case errors.Is(err, payment.ErrAuthenticationFailure):
			return utils.UnauthorizedResponse(c, "Library card credentials are no longer valid")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to create payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created", tx)
}

// GetPayment returns one of the authenticated patron's transactions with
// its fee lines and audit trail
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	detail, err := h.paymentUC.GetPayment(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to load transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", detail)
}

// CancelPayment cancels a transaction that has not been paid yet
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing user context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	if err := h.paymentUC.CancelPayment(c.Request().Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, payment.ErrTransactionNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		case errors.Is(err, payment.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Transaction can no longer be canceled")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to cancel transaction")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction canceled", nil)
}
