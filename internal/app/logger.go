package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер: debug дает development логгер,
// остальные уровни production логгер с заданным уровнем
func initLogger(logLevel string) (*zap.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(logLevel))

	if level == "debug" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewProductionConfig()
	if level != "" && level != "production" {
		atomic, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		cfg.Level = atomic
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return logger, nil
}
