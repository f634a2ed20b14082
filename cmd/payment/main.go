package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/tkoskela/libpay/internal/pkg/config"
	"github.com/tkoskela/libpay/internal/pkg/crypto"
	"github.com/tkoskela/libpay/internal/pkg/database"
	"github.com/tkoskela/libpay/internal/pkg/health"
	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/middleware"
	natspkg "github.com/tkoskela/libpay/internal/pkg/nats"
	"github.com/tkoskela/libpay/internal/pkg/requestcontext"
	"github.com/tkoskela/libpay/internal/pkg/server"
	"github.com/tkoskela/libpay/services/payment/gateway"
	"github.com/tkoskela/libpay/services/payment/handler"
	"github.com/tkoskela/libpay/services/payment/repository"
	"github.com/tkoskela/libpay/services/payment/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "payment-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Card-password cipher
	cipher, err := crypto.NewCipher(configs.Crypto)
	if err != nil {
		zapLogger.Fatal("Failed to initialize cipher", zap.Error(err))
	}

	// Initialize repositories
	txRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	policyCache := repository.NewRedisPolicyCache(redisClient)

	// Initialize gateways
	ilsGW := gateway.NewILSGateway(configs.ILS)
	paymentGW := gateway.NewNATSGateway(natsClient)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, txRepo, userRepo, policyCache, ilsGW, paymentGW, cipher)

	// Initialize handlers
	paymentHandler := handler.NewPaymentHandler(paymentUC, configs.JWT)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(requestcontext.Middleware(appName))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	paymentHandler.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
