package bootstrap

import (
	"log/slog"
	"os"

	"github.com/osse101/GrimArmory_Go/internal/config"
	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// SetupLogger initializes the application logger with stdout and session file output.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDev(),
	)

	logFile, err := logger.InitSessionLogger(logCfg, cfg.LogDir)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	slog.Info(LogMsgStartingGrimArmory,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_path", cfg.DBPath,
		"catalog_path", cfg.CatalogPath,
		"http_port", cfg.HTTPPort,
		"payout_schedule", cfg.PayoutSchedule,
		"payout_timezone", cfg.PayoutTimezone)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}

	return logFile, nil
}
