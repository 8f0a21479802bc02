package app

import (
	"github.com/avc/topup-storefront/internal/config"
	"github.com/avc/topup-storefront/internal/domain"
	"github.com/avc/topup-storefront/internal/handlers"
	"github.com/avc/topup-storefront/internal/provider/vipreseller"
	"github.com/avc/topup-storefront/internal/repository/postgres"
	"github.com/avc/topup-storefront/internal/service"
	"github.com/avc/topup-storefront/internal/utils/jwt"
	"github.com/avc/topup-storefront/internal/utils/password"
	"github.com/avc/topup-storefront/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	tx           domain.Transactor
	user         domain.UserRepository
	product      domain.ProductRepository
	stockHistory domain.StockHistoryRepository
	order        domain.OrderRepository
	payment      domain.PaymentRepository
	callbackLog  domain.CallbackLogRepository
	transaction  domain.TransactionRepository
	syncState    domain.SyncStateRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      domain.AuthService
	catalog   domain.CatalogService
	order     domain.OrderService
	balance   domain.BalanceService
	payment   domain.PaymentService
	reconcile domain.ReconcileService
	admin     domain.AdminService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	catalog  *handlers.CatalogHandler
	orders   *handlers.OrdersHandler
	balance  *handlers.BalanceHandler
	webhooks *handlers.WebhookHandler
	admin    *handlers.AdminHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	cronToken  string
	scheduler  *worker.Scheduler
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	repos := &repositories{
		tx:           postgres.NewTransactor(dbPool),
		user:         postgres.NewUserRepository(dbPool),
		product:      postgres.NewProductRepository(dbPool),
		stockHistory: postgres.NewStockHistoryRepository(dbPool),
		order:        postgres.NewOrderRepository(dbPool),
		payment:      postgres.NewPaymentRepository(dbPool),
		callbackLog:  postgres.NewCallbackLogRepository(dbPool),
		transaction:  postgres.NewTransactionRepository(dbPool),
		syncState:    postgres.NewSyncStateRepository(dbPool),
	}

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	provider := vipreseller.NewClient(vipreseller.Config{
		BaseURL:       cfg.ProviderBaseURL,
		APIID:         cfg.ProviderAPIID,
		APIKey:        cfg.ProviderAPIKey,
		Timeout:       cfg.ProviderTimeout,
		StatusRetries: cfg.ProviderStatusRetries,
	}, logger.Named("vipreseller"))

	// Ядро жизненного цикла заказа общее для всех сервисов
	stock := service.NewStockLedger(repos.tx, repos.product, repos.stockHistory, logger)
	lifecycle := service.NewLifecycleService(repos.tx, repos.order, repos.payment, stock, logger)
	fulfiller := service.NewFulfiller(repos.order, provider, lifecycle, cfg.ProviderTimeout, logger)

	reconcile := service.NewReconcileService(
		repos.tx,
		repos.order,
		repos.payment,
		repos.callbackLog,
		repos.syncState,
		provider,
		lifecycle,
		service.ReconcileConfig{
			WebhookSecret:   cfg.ProviderWebhookSecret,
			CallTimeout:     cfg.SyncCallTimeout,
			Delay:           cfg.SyncDelay,
			Retention:       cfg.CallbackRetention,
			CleanupInterval: cfg.CleanupInterval,
			StaleAfter:      cfg.StaleOrderAge,
			PaymentExpiry:   cfg.PaymentExpiry,
		},
		logger,
	)

	svcs := &services{
		auth:    service.NewAuthService(repos.user, passwordHasher, jwtManager),
		catalog: service.NewCatalogService(repos.product),
		order: service.NewOrderService(
			repos.tx, repos.product, repos.order, repos.payment, repos.transaction,
			stock, lifecycle, fulfiller, logger,
		),
		balance:   service.NewBalanceService(repos.transaction),
		payment:   service.NewPaymentService(repos.tx, repos.order, repos.payment, repos.callbackLog, lifecycle, fulfiller, cfg.PaymentWebhookSecret, logger),
		reconcile: reconcile,
		admin:     service.NewAdminService(repos.tx, repos.order, repos.payment, repos.transaction, lifecycle, stock, logger),
	}

	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		catalog:  handlers.NewCatalogHandler(svcs.catalog, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		balance:  handlers.NewBalanceHandler(svcs.balance, logger),
		webhooks: handlers.NewWebhookHandler(svcs.reconcile, svcs.payment, logger),
		admin:    handlers.NewAdminHandler(svcs.admin, svcs.reconcile, svcs.order, logger),
		health:   handlers.NewHealthHandler(dbPool, provider, repos.syncState, cfg.SyncInterval, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		cronToken:  cfg.CronToken,
		scheduler:  worker.NewScheduler(svcs.reconcile, cfg.SyncInterval, logger.Named("scheduler")),
	}
}
