package app

import (
	"github.com/avc/topup-storefront/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	h := deps.handlers
	jwtManager := deps.jwtManager

	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/user/register", h.auth.Register)
	r.Post("/api/user/login", h.auth.Login)
	r.Get("/api/products", h.catalog.ListProducts)
	r.Get("/api/orders/{number}", h.orders.GetOrderStatus)

	// Уведомления проверяются подписью, а не токеном
	r.Post("/api/webhooks/provider", h.webhooks.Provider)
	r.Post("/api/webhooks/payment", h.webhooks.Payment)

	// Гостевой заказ разрешен
	r.With(handlers.OptionalAuthMiddleware(jwtManager)).Post("/api/orders", h.orders.PlaceOrder)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Get("/api/user/orders", h.orders.GetUserOrders)
		r.Get("/api/user/balance", h.balance.GetBalance)
		r.Get("/api/user/transactions", h.balance.GetTransactions)
	})

	r.Route("/api/admin", func(r chi.Router) {
		// Внешний планировщик вызывает сверку по X-Cron-Token
		r.With(handlers.CronOrAdminMiddleware(jwtManager, deps.cronToken)).Post("/reconcile", h.admin.Reconcile)

		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(jwtManager))
			r.Use(handlers.AdminOnlyMiddleware())
			r.Get("/orders/{number}", h.admin.GetOrder)
			r.Post("/orders/{number}/refund", h.admin.Refund)
			r.Post("/orders/{number}/status", h.admin.OverrideStatus)
			r.Post("/products/{id}/stock", h.admin.AdjustStock)
			r.Get("/products/{id}/stock-history", h.admin.StockHistory)
		})
	})
}
