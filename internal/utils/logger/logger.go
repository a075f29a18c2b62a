package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init configures the process-wide logger. Mode "debug" enables the
// development encoder and debug level, anything else logs JSON at info.
func Init(mode string) error {
	var cfg zap.Config
	switch mode {
	case "debug", "dev":
		cfg = zap.NewDevelopmentConfig()
	case "prod", "production", "release":
		cfg = zap.NewProductionConfig()
	default:
		return fmt.Errorf("unknown log mode: %q", mode)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	log = built
	return nil
}

// InitTestLogger installs a no-op logger for tests.
func InitTestLogger() {
	log = zap.NewNop()
}

func Sync() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}
