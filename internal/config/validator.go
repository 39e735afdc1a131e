package config

import (
	"fmt"
	"strings"
)

// ValidateForBot checks the settings the chat bot cannot run without
// and that the schema version matches expectations
func (c *Config) ValidateForBot() error {
	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("GRIM_ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}

	var missing []string
	if c.DiscordToken == "" {
		missing = append(missing, EnvPrefix+"_DISCORD_TOKEN")
	}
	if c.GuildID == "" {
		missing = append(missing, EnvPrefix+"_GUILD_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingRequiredFmt, strings.Join(missing, ", "))
	}

	return nil
}

// Warnings returns non-critical issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DiscordToken == PlaceholderDiscordToken {
		warnings = append(warnings, "GRIM_DISCORD_TOKEN appears to be using the example value")
	}

	if len(c.AdminRoleIDs()) == 0 && !c.AdminBypass {
		warnings = append(warnings, "no GRIM_ADMIN_ROLES configured and GRIM_ADMIN_BYPASS is off - nobody can run admin commands")
	}

	if c.APIKey == "" && !c.IsDev() {
		warnings = append(warnings, "GRIM_API_KEY is empty - the /api/v1 endpoints are unauthenticated")
	}

	return warnings
}
