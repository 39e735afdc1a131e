package bootstrap

import "time"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGrimArmory  = "Starting Grim Armory"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Startup Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog       = "Syncing catalog from JSON file..."
	LogMsgCatalogSynced        = "Catalog synced"
	LogMsgCatalogMissing       = "Catalog file not found, keeping current catalog"
	LogMsgCatalogEntryRejected = "Catalog entry rejected"
	LogMsgImportingAccounts    = "Importing accounts from export file..."
	LogMsgAccountsImported     = "Accounts imported"

	ErrMsgFailedSyncCatalog    = "failed to sync catalog"
	ErrMsgFailedImportAccounts = "failed to import accounts"
)

// =============================================================================
// Shutdown
// =============================================================================

// ShutdownTimeout bounds the whole graceful shutdown
const ShutdownTimeout = 30 * time.Second

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgBotStopFailed        = "Chat bot shutdown failed"
	LogMsgPayoutStopFailed     = "Payout worker shutdown failed"
	LogMsgDatabaseCloseFailed  = "Database close failed"
	LogMsgShutdownComplete     = "Shutdown complete"
)
