package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/internal/utils"
)

// Login authenticates a patron with their library card credentials and
// issues a JWT for the payment API
func (h *PaymentHandler) Login(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Username == "" || request.Password == "" {
		return utils.BadRequestResponse(c, "Username and password are required")
	}

	response, err := h.paymentUC.Login(c.Request().Context(), request.Username, request.Password)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid library card credentials")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}
