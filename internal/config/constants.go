package config

// EnvPrefix is prepended to every environment variable read by Load (GRIM_DB_PATH, ...).
const EnvPrefix = "GRIM"

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)

// Insecure or placeholder values copied from .env.example
const (
	PlaceholderDiscordToken = "your_discord_bot_token"
)

// Error messages
const (
	ErrMsgParseConfig        = "parsing config: %w"
	ErrMsgInvalidConfig      = "invalid config: %w"
	ErrMsgInvalidTimezone    = "invalid GRIM_PAYOUT_TIMEZONE %q: %w"
	ErrMsgMissingRequiredFmt = "missing required environment variables: %s"
)
