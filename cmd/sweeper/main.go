package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tkoskela/libpay/internal/pkg/config"
	"github.com/tkoskela/libpay/internal/pkg/crypto"
	"github.com/tkoskela/libpay/internal/pkg/database"
	"github.com/tkoskela/libpay/internal/pkg/logger"
	natspkg "github.com/tkoskela/libpay/internal/pkg/nats"
	"github.com/tkoskela/libpay/internal/pkg/retry"
	"github.com/tkoskela/libpay/services/payment/gateway"
	"github.com/tkoskela/libpay/services/payment/repository"
	"github.com/tkoskela/libpay/services/payment/usecase"
)

// The sweeper is the cron-driven companion to the payment service. It
// picks up transactions whose money was collected but whose fees never
// reached the ILS, and retries or reports them.
func main() {
	job := flag.String("job", "retry", "sweep job to run: retry or report")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall job timeout")
	flag.Parse()

	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NATS")
	}
	defer natsClient.Close()

	cipher, err := crypto.NewCipher(configs.Crypto)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize cipher")
	}

	txRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB())
	policyCache := repository.NewRedisPolicyCache(redisClient)
	ilsGW := gateway.NewILSGateway(configs.ILS)
	paymentGW := gateway.NewNATSGateway(natsClient)

	paymentUC := usecase.NewPaymentUC(configs, txRepo, userRepo, policyCache, ilsGW, paymentGW, cipher)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	retrier := retry.New(retry.Config{
		MaxRetries: configs.Sweeper.MaxRetries,
		BaseDelay:  time.Second,
		MaxDelay:   time.Minute,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}, appLogger)

	appLogger.WithFields(logrus.Fields{"job": *job}).Info("Starting sweep")

	switch *job {
	case "retry":
		err = retrier.Execute(ctx, paymentUC.RetryFailedTransactions)
	case "report":
		err = retrier.Execute(ctx, paymentUC.ReportUnresolvedTransactions)
	default:
		appLogger.WithFields(logrus.Fields{"job": *job}).Fatal("Unknown sweep job")
	}

	if err != nil {
		appLogger.WithError(err).WithFields(logrus.Fields{"job": *job}).Error("Sweep failed")
		os.Exit(1)
	}

	appLogger.WithFields(logrus.Fields{"job": *job}).Info("Sweep finished")
}
