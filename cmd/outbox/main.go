// One-shot outbox relay for manual draining when the in-service loop is
// down.
package main

import (
	"context"
	"fmt"

	"github.com/marcheferme/marketplace_service/internal/config"
	"github.com/marcheferme/marketplace_service/internal/repository/outbox"
	outboxSendService "github.com/marcheferme/marketplace_service/internal/services/outbox/send"
	kafkaProducer "github.com/marcheferme/marketplace_service/pkg/brokers/kafka/producer"
	"github.com/marcheferme/marketplace_service/pkg/databases/postgres"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		panic(fmt.Sprintf("failed to connect to db: %v", err))
	}
	defer db.Close()

	producer, err := kafkaProducer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		panic(fmt.Sprintf("failed to create kafka producer: %v", err))
	}

	outboxRepo := outbox.New(log, db.GetDB())
	sendSvc := outboxSendService.New(log, cfg.Kafka, producer, outboxRepo, outboxRepo)

	if err = sendSvc.Send(ctx); err != nil {
		panic(fmt.Sprintf("outbox relay error: %v", err))
	}

	log.Info("outbox drained")
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}
