package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the process-wide logger renders records
type Config struct {
	Level       string // debug, info, warn or error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from the application settings. Empty identity
// fields fall back to the package defaults.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	cfg := Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}
	return cfg
}

// LogLevel maps Level onto slog; unknown values log at info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are stamped on every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
