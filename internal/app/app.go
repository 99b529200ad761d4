package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	httpapp "github.com/marcheferme/marketplace_service/internal/app/http"
	"github.com/marcheferme/marketplace_service/internal/cache"
	"github.com/marcheferme/marketplace_service/internal/config"
	marketplacehttp "github.com/marcheferme/marketplace_service/internal/delivery/http"
	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/internal/metrics"
	"github.com/marcheferme/marketplace_service/internal/repository"
	cartService "github.com/marcheferme/marketplace_service/internal/services/cart"
	orderCancellationService "github.com/marcheferme/marketplace_service/internal/services/order/cancel"
	orderCreationService "github.com/marcheferme/marketplace_service/internal/services/order/create"
	orderRetrievalService "github.com/marcheferme/marketplace_service/internal/services/order/get"
	lineStatusService "github.com/marcheferme/marketplace_service/internal/services/order/status"
	stockAdjustmentService "github.com/marcheferme/marketplace_service/internal/services/product/adjust"
	outboxSendService "github.com/marcheferme/marketplace_service/internal/services/outbox/send"
	kafkaProducer "github.com/marcheferme/marketplace_service/pkg/brokers/kafka/producer"
	"github.com/marcheferme/marketplace_service/pkg/databases/postgres"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

const (
	orderCacheSize = 128
	orderCacheTTL  = 10 * time.Minute
)

type App struct {
	log logger.Logger
	cfg *config.Config

	db         *postgres.PgDB
	httpServer *httpapp.App
	outboxSvc  *outboxSendService.Service
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, postgresDSN(&cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	repo := repository.NewRepository(log, db.GetDB())

	orderCache := setupCache(log)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	cartSvc := cartService.New(log, repo.Product, repo.Cart)
	orderCreationSvc := orderCreationService.New(log, orderCache, m, repo.Cart, repo.Order)
	orderRetrievalSvc := orderRetrievalService.New(log, orderCache, repo.Order)
	lineStatusSvc := lineStatusService.New(log, orderCache, m, repo.Order, repo.Order)
	orderCancellationSvc := orderCancellationService.New(log, orderCache, m, repo.Order, repo.Order)
	stockAdjustmentSvc := stockAdjustmentService.New(log, m, repo.Product, repo.Product)

	producer, err := kafkaProducer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	outboxSvc := outboxSendService.New(log, cfg.Kafka, producer, repo.Outbox, repo.Outbox)

	handler := marketplacehttp.NewHandler(
		log,
		cartSvc,
		orderCreationSvc,
		orderRetrievalSvc,
		lineStatusSvc,
		orderCancellationSvc,
		stockAdjustmentSvc,
		registry,
	)

	httpServer := httpapp.NewApp(log, handler.InitRoutes(), cfg.HTTP.Port)

	return &App{
		log:        log,
		cfg:        cfg,
		db:         db,
		httpServer: httpServer,
		outboxSvc:  outboxSvc,
	}, nil
}

// Run serves HTTP and relays the outbox until ctx is cancelled, then
// shuts both down.
func (a *App) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.httpServer.Run()
	})

	group.Go(func() error {
		return a.relayOutbox(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return a.httpServer.Shutdown(shutdownCtx)
	})

	err := group.Wait()

	if closeErr := a.db.Close(); closeErr != nil {
		a.log.Error("failed to close postgres", logger.Err(closeErr))
	}

	return err
}

// relayOutbox ships committed events to Kafka. Failures are logged and
// retried next tick; they never affect the state changes that produced
// the events.
func (a *App) relayOutbox(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.Outbox.RelayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.outboxSvc.Send(ctx); err != nil {
				a.log.Warn("outbox relay failed", logger.Err(err))
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func postgresDSN(psqlCfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		psqlCfg.Host, psqlCfg.Port, psqlCfg.User, psqlCfg.DbName, psqlCfg.Pwd, psqlCfg.SslMode)
}

func setupCache(log logger.Logger) *cache.OrderCache {
	lru := expirable.NewLRU[uuid.UUID, *models.Order](orderCacheSize, nil, orderCacheTTL)

	return cache.NewOrderCache(lru, log)
}
