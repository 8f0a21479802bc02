package vipreseller

import (
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// leveledLogger адаптирует zap к retryablehttp.LeveledLogger
type leveledLogger struct {
	s *zap.SugaredLogger
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func newLeveledLogger(logger *zap.Logger) *leveledLogger {
	return &leveledLogger{s: logger.Named("vipreseller").Sugar()}
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}
