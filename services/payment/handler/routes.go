package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tkoskela/libpay/internal/pkg/middleware"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	jwtConfig models.JWTConfig
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC, jwtConfig models.JWTConfig) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		jwtConfig: jwtConfig,
	}
}

// RegisterRoutes registers the payment API routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.POST("/api/v1/auth/login", h.Login)

	// Gateway routes (signature authentication, no JWT: the gateway and
	// the returning browser carry no bearer token)
	e.POST("/api/v1/payments/gateway/callback", h.GatewayCallback)
	e.GET("/api/v1/payments/gateway/return", h.GatewayReturn)

	// Patron routes (JWT authentication)
	g := e.Group("/api/v1/payments")
	g.Use(middleware.JWTAuthMiddleware(h.jwtConfig))
	g.POST("", h.CreatePayment)
	g.GET("/:id", h.GetPayment)
	g.POST("/:id/cancel", h.CancelPayment)
}
