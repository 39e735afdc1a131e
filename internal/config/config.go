package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `envconfig:"ENV_SCHEMA_VERSION" default:"1.0"`
	Environment      string `envconfig:"ENVIRONMENT" default:"dev"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"grim-armory"`
	Version          string `envconfig:"VERSION" default:"dev"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	LogDir    string `envconfig:"LOG_DIR" default:"logs"`

	HTTPPort       int      `envconfig:"HTTP_PORT" default:"8080" validate:"gte=0,lte=65535"`
	APIKey         string   `envconfig:"API_KEY"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	// Store and data files
	DBPath                string `envconfig:"DB_PATH" default:"data/grim_armory.db" validate:"required"`
	CatalogPath           string `envconfig:"CATALOG_PATH" default:"data/armory.json"`
	ExportPath            string `envconfig:"EXPORT_PATH" default:"data/export/users.json"`
	ImportAccountsOnStart bool   `envconfig:"IMPORT_ACCOUNTS_ON_START" default:"false"`

	// Chat binding
	DiscordToken string   `envconfig:"DISCORD_TOKEN"`
	GuildID      string   `envconfig:"GUILD_ID" validate:"omitempty,numeric"`
	Prefix       string   `envconfig:"PREFIX" default:"!" validate:"required"`
	AdminRoles   []string `envconfig:"ADMIN_ROLES"`
	AdminBypass  bool     `envconfig:"ADMIN_BYPASS" default:"true"`

	// Perk payout
	PayoutTimezone string `envconfig:"PAYOUT_TIMEZONE" default:"CET" validate:"required"`
	PayoutSchedule string `envconfig:"PAYOUT_SCHEDULE" default:"0 0 * * *" validate:"required"`

	// InteractionTimeout bounds every wait for further user input.
	InteractionTimeout time.Duration `envconfig:"INTERACTION_TIMEOUT" default:"5m" validate:"gt=0"`

	WorkerCount     int `envconfig:"WORKER_COUNT" default:"4" validate:"gte=1"`
	WorkerQueueSize int `envconfig:"WORKER_QUEUE_SIZE" default:"256" validate:"gte=1"`

	CatalogCacheSize int           `envconfig:"CATALOG_CACHE_SIZE" default:"512" validate:"gte=1"`
	CatalogCacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints that apply to every binary
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	if _, err := c.PayoutLocation(); err != nil {
		return err
	}
	return nil
}

// PayoutLocation resolves the timezone that anchors the daily perk payout
func (c *Config) PayoutLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.PayoutTimezone)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidTimezone, c.PayoutTimezone, err)
	}
	return loc, nil
}

// AdminRoleIDs returns the configured administrator roles without blanks
func (c *Config) AdminRoleIDs() []string {
	out := make([]string, 0, len(c.AdminRoles))
	for _, r := range c.AdminRoles {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// IsDev reports whether the application runs in a development environment
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
