package routes

import (
	"context"
	"fmt"

	"tender_service/internal/adapter/persistence/memory"
	"tender_service/internal/adapter/persistence/repository"
	"tender_service/internal/infrastructure/cache"
	"tender_service/internal/infrastructure/config"
	"tender_service/internal/infrastructure/database"
	"tender_service/internal/infrastructure/events"
	"tender_service/internal/infrastructure/metrics"
	"tender_service/internal/infrastructure/notification"
	"tender_service/internal/usecase"
	"tender_service/internal/usecase/interfaces"
	"tender_service/internal/usecase/readview"

	log "github.com/sirupsen/logrus"
)

// application is everything the HTTP layer needs, wired from one Config.
type application struct {
	workflow usecase.ITenderWorkflowUseCase
	summary  readview.IWorkSummaryService
	metrics  *metrics.Metrics
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	summaryCache, err := newReadViewCache(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	m := metrics.New()
	workflow := usecase.NewTenderWorkflowUseCase(repo, bus, usecase.WithMetrics(m))
	summary := readview.NewWorkSummaryService(workflow, summaryCache, cfg.Redis.ReadViewTTL)
	dispatcher := usecase.NewNotificationDispatcher(notification.LogNotifier{})

	bus.Subscribe("metrics", m.RecordEvent)
	bus.Subscribe("work-summary", summary.Invalidate)
	bus.Subscribe("notifications", dispatcher.Handle, usecase.NotifiedEvents()...)

	return &application{workflow: workflow, summary: summary, metrics: m}, nil
}

func newRepository(ctx context.Context, cfg *config.Config) (interfaces.ITenderRepository, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("[tender][wiring] using the in-memory store, records are lost on restart")
		return memory.NewTenderMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return repository.NewTenderDynamoRepository(ddb, cfg.DynamoDB.Tables, cfg.DynamoDB.TxTimeout), nil
}

func newReadViewCache(ctx context.Context, cfg config.RedisConfig) (readview.Cache, error) {
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return cache.NewMemoryCache(), nil
	}
	log.Info("[tender][wiring] read views cached in redis")
	return cache.NewRedisCache(client), nil
}
