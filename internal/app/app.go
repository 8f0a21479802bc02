package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/topup-storefront/internal/config"
	"github.com/avc/topup-storefront/internal/repository/postgres"
	"github.com/avc/topup-storefront/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxDBConns = 20

// App представляет приложение
type App struct {
	config    *config.Config
	logger    *zap.Logger
	db        *pgxpool.Pool
	scheduler *worker.Scheduler
	server    *http.Server
}

// NewApp создает новое приложение
func NewApp(ctx context.Context) (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, dbPool, logger)
	router := setupRouter(deps, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        dbPool,
		scheduler: deps.scheduler,
		server:    createServer(cfg.RunAddress, router),
	}, nil
}

// initDatabase создает пул соединений с базой данных и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbPool, err := postgres.NewPool(ctx, databaseURI, maxDBConns)
	if err != nil {
		return nil, err
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("connected to database")

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return dbPool, nil
}

// Run запускает HTTP сервер и планировщик сверки до отмены ctx.
// Ошибка любого из них останавливает оба.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.serve(ctx)
	})
	g.Go(func() error {
		return a.scheduler.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("application stopped with error", zap.Error(err))
		return err
	}
	a.logger.Info("server stopped gracefully")
	return nil
}

func (a *App) close() {
	a.db.Close()
	a.logger.Info("database connection closed")
	_ = a.logger.Sync()
}
