package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Провайдер VIP-Reseller
	ProviderBaseURL       string
	ProviderAPIID         string
	ProviderAPIKey        string
	ProviderTimeout       time.Duration // Таймаут одного запроса к провайдеру
	ProviderStatusRetries int           // Повторы запроса статуса
	ProviderWebhookSecret string        // Пустой секрет отключает проверку подписи

	PaymentWebhookSecret string
	CronToken            string // Токен для POST /api/admin/reconcile от внешнего планировщика

	// Сверка
	SyncInterval      time.Duration // 0 отключает встроенный планировщик
	SyncDelay         time.Duration // Пауза между заказами при массовом опросе
	SyncCallTimeout   time.Duration
	CallbackRetention time.Duration
	CleanupInterval   time.Duration
	StaleOrderAge     time.Duration // Через сколько прерванная отправка провайдеру переводит заказ в FAILED
	PaymentExpiry     time.Duration // Сколько заказ ждет оплаты шлюзом до отмены

	ShutdownTimeout time.Duration
}

func defaults() *Config {
	return &Config{
		RunAddress:            ":8080",
		JWTTokenTTL:           24 * time.Hour,
		LogLevel:              "info",
		ProviderBaseURL:       "https://vip-reseller.co.id/api",
		ProviderTimeout:       15 * time.Second,
		ProviderStatusRetries: 2,
		SyncInterval:          5 * time.Minute,
		SyncDelay:             200 * time.Millisecond,
		SyncCallTimeout:       10 * time.Second,
		CallbackRetention:     30 * 24 * time.Hour,
		CleanupInterval:       24 * time.Hour,
		StaleOrderAge:         15 * time.Minute,
		PaymentExpiry:         24 * time.Hour,
		ShutdownTimeout:       10 * time.Second,
	}
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.ProviderBaseURL, "p", cfg.ProviderBaseURL, "provider API base URL")
	fs.DurationVar(&cfg.SyncInterval, "sync-interval", cfg.SyncInterval, "background reconcile interval, 0 disables")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	stringVars := map[string]*string{
		"RUN_ADDRESS":             &cfg.RunAddress,
		"DATABASE_URI":            &cfg.DatabaseURI,
		"JWT_SECRET":              &cfg.JWTSecret,
		"LOG_LEVEL":               &cfg.LogLevel,
		"PROVIDER_BASE_URL":       &cfg.ProviderBaseURL,
		"PROVIDER_API_ID":         &cfg.ProviderAPIID,
		"PROVIDER_API_KEY":        &cfg.ProviderAPIKey,
		"PROVIDER_WEBHOOK_SECRET": &cfg.ProviderWebhookSecret,
		"PAYMENT_WEBHOOK_SECRET":  &cfg.PaymentWebhookSecret,
		"CRON_TOKEN":              &cfg.CronToken,
	}
	for key, dst := range stringVars {
		if value, ok := lookupEnv(key); ok {
			*dst = value
		}
	}

	durationVars := map[string]*time.Duration{
		"JWT_TOKEN_TTL":      &cfg.JWTTokenTTL,
		"PROVIDER_TIMEOUT":   &cfg.ProviderTimeout,
		"SYNC_INTERVAL":      &cfg.SyncInterval,
		"SYNC_DELAY":         &cfg.SyncDelay,
		"SYNC_CALL_TIMEOUT":  &cfg.SyncCallTimeout,
		"CALLBACK_RETENTION": &cfg.CallbackRetention,
		"CLEANUP_INTERVAL":   &cfg.CleanupInterval,
		"STALE_ORDER_AGE":    &cfg.StaleOrderAge,
		"PAYMENT_EXPIRY":     &cfg.PaymentExpiry,
		"SHUTDOWN_TIMEOUT":   &cfg.ShutdownTimeout,
	}
	for key, dst := range durationVars {
		value, ok := lookupEnv(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("config: invalid duration %s=%q", key, value)
		}
		*dst = d
	}

	if value, ok := lookupEnv("PROVIDER_STATUS_RETRIES"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("config: invalid PROVIDER_STATUS_RETRIES=%q", value)
		}
		cfg.ProviderStatusRetries = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate проверяет обязательные параметры
func (c *Config) validate() error {
	var errs []error
	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("database URI is required (use -d flag or DATABASE_URI env)"))
	}
	// JWT секрет только из env, не из флагов
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET env is required"))
	}
	if c.ProviderAPIID == "" || c.ProviderAPIKey == "" {
		errs = append(errs, errors.New("PROVIDER_API_ID and PROVIDER_API_KEY env are required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
