package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/IBM/sarama"

	"partner-trx-api/internal/config"
	"partner-trx-api/internal/kafka"
	"partner-trx-api/internal/partner"
	"partner-trx-api/internal/ports"
	"partner-trx-api/internal/service"
	"partner-trx-api/pkg/logger"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Components struct {
	HttpServer *ports.Server
	Publisher  *kafka.Publisher
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	registry := partner.NewRegistry(cfg.PartnerMap())
	log.Info("partner registry loaded", slog.Int("partners", registry.Len()))

	var publisher *kafka.Publisher
	if len(cfg.Kafka.BrokerList) > 0 {
		saramaConfig := sarama.NewConfig()
		saramaConfig.Producer.Return.Successes = true
		saramaConfig.Producer.Return.Errors = true

		producer, err := sarama.NewAsyncProducer(cfg.Kafka.BrokerList, saramaConfig)
		if err != nil {
			log.Error("kafka producer error", "error", err.Error())
			return nil, fmt.Errorf("components.init.InitComponents.producer failed: %w", err)
		}
		publisher = kafka.NewPublisher(cfg.Kafka, log, producer)
	}

	// avoid a typed-nil publisher behind the interface
	var outcomes service.OutcomePublisher
	if publisher != nil {
		outcomes = publisher
	}

	clock := service.RealClock()
	paymentService := service.NewPaymentService(log, clock, cfg.Validation.FreshnessWindow, outcomes)
	transactionService := service.NewTransactionService(log, clock, cfg.Validation.FreshnessWindow, registry, outcomes)

	httpServer := ports.NewServer(ctx, cfg, log, paymentService, transactionService)

	return &Components{
		HttpServer: httpServer,
		Publisher:  publisher,
	}, nil
}

func (c *Components) Shutdown() error {
	var errs []error
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka publisher: %w", err))
		}
	}

	if err := c.HttpServer.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close Http Server: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

func SetupLogger(cfg config.Config) *slog.Logger {
	log := &slog.Logger{}

	switch cfg.Env {
	case envLocal:
		log = logger.SetupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
