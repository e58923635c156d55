package routes

import (
	"context"
	"fmt"

	"web_estimate/internal/adapter/http/handlers"
	"web_estimate/internal/adapter/persistence/repository"
	"web_estimate/internal/clock"
	"web_estimate/internal/config"
	"web_estimate/internal/domain/catalog"
	"web_estimate/internal/domain/estimate"
	"web_estimate/internal/domain/pricing"
	"web_estimate/internal/infrastructure/database"
	"web_estimate/internal/infrastructure/metrics"
	"web_estimate/internal/infrastructure/pdf"
	"web_estimate/internal/infrastructure/render"
	"web_estimate/internal/infrastructure/session"
	"web_estimate/internal/infrastructure/storage"
	"web_estimate/internal/usecase"
	"web_estimate/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// ServiceName labels logs and metrics.
const ServiceName = "web-estimate"

type application struct {
	registry         *prometheus.Registry
	catalogHandler   *handlers.CatalogHandler
	selectionHandler *handlers.SelectionHandler
	estimateHandler  *handlers.EstimateHandler
	handoffHandler   *handlers.HandoffHandler
}

// newApplication assembles stores, renderers and use cases from cfg. The
// returned cleanup closes backend connections.
func newApplication(ctx context.Context, cfg *config.Config, log *zap.Logger) (*application, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	clk := clock.RealClock{}
	cat := catalog.Default()
	calc := pricing.NewCalculator(cat)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	estimateMetrics := metrics.New(registry, ServiceName)

	stateStore, err := newStateStore(ctx, cfg, clk, log)
	if err != nil {
		return nil, cleanup, err
	}
	sessionStore, closeSessions, err := newSessionStore(ctx, cfg, clk, log)
	if err != nil {
		return nil, cleanup, err
	}
	closers = append(closers, closeSessions)

	persistence := usecase.NewStatePersistence(stateStore, log, estimateMetrics)
	cache := usecase.NewSelectionCache(cfg.State.IdleTTL, clk)
	selectionUseCase := usecase.NewSelectionUseCase(cat, calc, cache, persistence, sessionStore, log)
	handoffUseCase := usecase.NewHandoffUseCase(sessionStore, log, estimateMetrics)
	estimateUseCase := usecase.NewEstimateUseCase(
		selectionUseCase,
		sessionStore,
		estimate.NewBuilder(clk, nil, cat.EstimateConfig(), cfg.Location()),
		cat,
		render.NewHTMLRenderer(),
		newPDFRenderer(cfg, log),
		handoffUseCase,
		estimateMetrics,
		log,
	)

	return &application{
		registry:         registry,
		catalogHandler:   handlers.NewCatalogHandler(cat),
		selectionHandler: handlers.NewSelectionHandler(selectionUseCase),
		estimateHandler:  handlers.NewEstimateHandler(estimateUseCase),
		handoffHandler:   handlers.NewHandoffHandler(handoffUseCase),
	}, cleanup, nil
}

func newStateStore(ctx context.Context, cfg *config.Config, clk clock.Clock, log *zap.Logger) (interfaces.IKeyValueStore, error) {
	switch cfg.State.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("[state][wiring] using dynamodb", zap.String("table", cfg.DynamoDB.Table), zap.String("region", cfg.DynamoDB.Region))
		return repository.NewStateDynamoRepository(ddb, cfg.DynamoDB.Table, clk), nil
	default:
		log.Info("[state][wiring] using in-memory store")
		return storage.NewMemoryStore(0, clk), nil
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config, clk clock.Clock, log *zap.Logger) (interfaces.ISessionStore, func(), error) {
	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("[session][wiring] using redis", zap.String("addr", cfg.Redis.Addr))
		return session.NewRedisStore(client, cfg.Session.TTL), func() {
			if err := client.Close(); err != nil {
				log.Warn("[session][wiring] redis close failed", zap.Error(err))
			}
		}, nil
	default:
		log.Info("[session][wiring] using in-memory store")
		return storage.NewMemoryStore(cfg.Session.TTL, clk), func() {}, nil
	}
}

func newPDFRenderer(cfg *config.Config, log *zap.Logger) interfaces.IPDFRenderer {
	if cfg.PDF.Renderer == config.RendererChromedp {
		log.Info("[pdf][wiring] using headless chrome", zap.String("chrome_path", cfg.PDF.ChromePath))
		return pdf.NewChromedpRenderer(cfg.PDF.ChromePath, cfg.PDF.Timeout)
	}
	log.Info("[pdf][wiring] using maroto", zap.Bool("custom_font", cfg.PDF.FontPath != ""))
	return pdf.NewMarotoRenderer(cfg.PDF.FontPath)
}
